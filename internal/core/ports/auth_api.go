package ports

import (
	"context"

	"github.com/erplite/backoffice-client/internal/core/domain"
)

// RegisterInput carries the data for a self-service account registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Profile  domain.Role
}

// AuthAPI is the authentication surface of the ERP API that the session
// layer consumes.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (token string, err error)
	// Me fetches the profile of the token's owner.
	Me(ctx context.Context, token string) (*domain.User, error)
	// Logout notifies the server that the session ends. Best effort:
	// callers treat any error as non-fatal.
	Logout(ctx context.Context, token string) error
	// Register creates a new account without authenticating.
	Register(ctx context.Context, input RegisterInput) error
}

// TokenStore persists the bearer token across client restarts. The token
// is the only durable session artifact; the profile set is always
// re-fetched.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
