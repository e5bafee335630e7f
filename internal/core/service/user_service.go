package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// UserService exposes account administration. Every operation requires
// the user_manage capability.
type UserService struct {
	api  ports.UserAPI
	auth *SessionAuthority
	log  zerolog.Logger
}

func NewUserService(api ports.UserAPI, auth *SessionAuthority, log zerolog.Logger) *UserService {
	return &UserService{api: api, auth: auth, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	if err := authorize(s.auth, domain.ActionUserManage); err != nil {
		return nil, err
	}
	return s.api.List(ctx)
}

func (s *UserService) Create(ctx context.Context, input ports.ManagedUserInput) (*domain.User, error) {
	if err := authorize(s.auth, domain.ActionUserManage); err != nil {
		return nil, err
	}
	user, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", user.Username).Int("id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int, input ports.ManagedUserInput) (*domain.User, error) {
	if err := authorize(s.auth, domain.ActionUserManage); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, input)
}
