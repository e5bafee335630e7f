package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// UserClient implements ports.UserAPI against the account-administration
// endpoints. The list endpoint returns a bare array, not the paginated
// envelope the other resources use.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (u *UserClient) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := u.c.do(ctx, call{
		resource: "users",
		method:   http.MethodGet,
		path:     "/auth/users",
		out:      &users,
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UserClient) Create(ctx context.Context, input ports.ManagedUserInput) (*domain.User, error) {
	profile := string(domain.RoleViewer)
	if input.Profile != nil {
		profile = string(*input.Profile)
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	var user domain.User
	err := u.c.do(ctx, call{
		resource: "users",
		method:   http.MethodPost,
		path:     "/auth/users",
		body: createUserRequest{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Profile:  profile,
			IsActive: active,
		},
		out: &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserClient) Update(ctx context.Context, id int, input ports.ManagedUserInput) (*domain.User, error) {
	body := updateUserRequest{IsActive: input.IsActive}
	if input.Profile != nil {
		p := string(*input.Profile)
		body.Profile = &p
	}

	var user domain.User
	err := u.c.do(ctx, call{
		resource: "users",
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/auth/users/%d", id),
		body:     body,
		out:      &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
