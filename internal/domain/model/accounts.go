package model

import (
	"errors"
	"strings"
)

// Professor is an account row as listed by the admin endpoints.
type Professor struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Subjects []string `json:"disciplinas"`
}

// Student is an account row as listed by the admin endpoints.
type Student struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Subjects []string `json:"disciplinas"`
}

// ProfessorInput is the create/update payload for professor accounts.
// Password is only sent on create; the backend expects it as "password".
type ProfessorInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Subjects []string `json:"disciplinas"`
}

// StudentInput is the create/update payload for student accounts.
// The student endpoints expect the password field as "senha".
type StudentInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"senha,omitempty"`
	Subjects []string `json:"disciplinas"`
}

// Validate checks the fields every account payload needs.
func (in ProfessorInput) Validate(creating bool) error {
	if err := validateAccount(in.Name, in.Email); err != nil {
		return err
	}
	if creating && in.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// Validate checks the fields every account payload needs.
func (in StudentInput) Validate(creating bool) error {
	if err := validateAccount(in.Name, in.Email); err != nil {
		return err
	}
	if creating && in.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func validateAccount(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email is invalid")
	}
	return nil
}
