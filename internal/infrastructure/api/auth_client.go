package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// AuthClient implements ports.AuthAPI. Login and Register run
// unauthenticated; Me and Logout act on an explicitly passed token so
// the session layer can probe tokens that are not (or no longer) the
// active session's.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

func (a *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	anonymous := ""
	var out loginResponse
	err := a.c.do(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/jwt/login",
		body:     loginRequest{Username: username, Password: password},
		out:      &out,
		token:    &anonymous,
	})
	if err != nil {
		// A 401 here means the credentials were wrong, not that a
		// session expired.
		if errors.Is(err, domain.ErrSessionExpired) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return out.Access, nil
}

func (a *AuthClient) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := a.c.do(ctx, call{
		resource: "auth",
		method:   http.MethodGet,
		path:     "/auth/me",
		out:      &user,
		token:    &token,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthClient) Logout(ctx context.Context, token string) error {
	return a.c.do(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/session/logout",
		token:    &token,
	})
}

func (a *AuthClient) Register(ctx context.Context, input ports.RegisterInput) error {
	anonymous := ""
	return a.c.do(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/register",
		body: registerRequest{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Profile:  string(input.Profile),
		},
		token: &anonymous,
	})
}
