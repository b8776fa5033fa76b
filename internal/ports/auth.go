package ports

// Package ports defines interfaces (hexagonal ports) for the client's
// outward-facing behavior. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
)

// TokenStore persists the single opaque bearer token across launches.
// It is single-writer (the session manager) and read-after-write consistent.
type TokenStore interface {
	// Save stores the token under the store's one key.
	Save(ctx context.Context, token string) error

	// Load returns the persisted token, or ErrNoToken when none is held.
	Load(ctx context.Context) (string, error)

	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// ErrNoToken is returned by TokenStore.Load when no token is persisted.
type noTokenError struct{}

func (noTokenError) Error() string { return "no persisted token" }

var ErrNoToken error = noTokenError{}

// AuthAPI is the authentication slice of the portal backend.
//
// The identity probes rely on the bearer default installed via ApplyToken;
// they answer "who am I" for the currently applied credential.
type AuthAPI interface {
	// LoginProfessor exchanges professor credentials for a token, and the
	// identity when the backend embeds it in the response.
	LoginProfessor(ctx context.Context, email, password string) (domainauth.LoginResult, error)

	// LoginStudent exchanges student credentials for a token.
	LoginStudent(ctx context.Context, email, password string) (domainauth.LoginResult, error)

	// ProbeProfessor resolves the applied token as a professor identity.
	ProbeProfessor(ctx context.Context) (domainauth.ProfessorIdentity, error)

	// ProbeStudent resolves the applied token as a student identity.
	ProbeStudent(ctx context.Context) (domainauth.StudentIdentity, error)

	// ApplyToken installs token as the outbound-request bearer default for
	// every subsequent call; an empty token removes the default.
	ApplyToken(token string)
}
