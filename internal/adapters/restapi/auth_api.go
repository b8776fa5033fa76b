package restapi

import (
	"context"
	"errors"
	"net/http"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
	"github.com/eduportal/eduportal-mobile/internal/ports"
)

// Compile-time conformance to the auth port.
var _ ports.AuthAPI = (*Client)(nil)

const (
	pathProfessorLogin = "/api/professores/login"
	pathProfessorMe    = "/api/professores/me"
	pathStudentLogin   = "/api/alunos/login"
	pathStudentMe      = "/api/alunos/me"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginProfessor exchanges professor credentials for a token.
func (c *Client) LoginProfessor(ctx context.Context, email, password string) (domainauth.LoginResult, error) {
	data, err := c.do(ctx, http.MethodPost, pathProfessorLogin, credentials{Email: email, Password: password})
	if err != nil {
		return domainauth.LoginResult{}, authError("login professor", err)
	}
	return domainauth.DecodeProfessorLogin(pathProfessorLogin, data)
}

// LoginStudent exchanges student credentials for a token.
func (c *Client) LoginStudent(ctx context.Context, email, password string) (domainauth.LoginResult, error) {
	data, err := c.do(ctx, http.MethodPost, pathStudentLogin, credentials{Email: email, Password: password})
	if err != nil {
		return domainauth.LoginResult{}, authError("login aluno", err)
	}
	return domainauth.DecodeStudentLogin(pathStudentLogin, data)
}

// ProbeProfessor resolves the applied token as a professor identity.
func (c *Client) ProbeProfessor(ctx context.Context) (domainauth.ProfessorIdentity, error) {
	data, err := c.do(ctx, http.MethodGet, pathProfessorMe, nil)
	if err != nil {
		return domainauth.ProfessorIdentity{}, authError("probe professor", err)
	}
	return domainauth.DecodeProfessor(pathProfessorMe, data)
}

// ProbeStudent resolves the applied token as a student identity.
func (c *Client) ProbeStudent(ctx context.Context) (domainauth.StudentIdentity, error) {
	data, err := c.do(ctx, http.MethodGet, pathStudentMe, nil)
	if err != nil {
		return domainauth.StudentIdentity{}, authError("probe aluno", err)
	}
	return domainauth.DecodeStudent(pathStudentMe, data)
}

// authError normalizes transport and status failures into a user-surfaceable
// AuthError, keeping the backend's message when one was provided.
func authError(op string, err error) error {
	var se *StatusError
	if errors.As(err, &se) {
		return &domainauth.AuthError{Op: op, Message: se.Message, StatusCode: se.StatusCode, Err: err}
	}
	return &domainauth.AuthError{Op: op, Message: "could not reach the server", Err: err}
}
