package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

type stubUserAPI struct {
	listCalls int
}

func (s *stubUserAPI) List(_ context.Context) ([]domain.User, error) {
	s.listCalls++
	return []domain.User{{ID: 1, Username: "root"}}, nil
}

func (s *stubUserAPI) Create(_ context.Context, input ports.ManagedUserInput) (*domain.User, error) {
	return &domain.User{ID: 2, Username: input.Username}, nil
}

func (s *stubUserAPI) Update(_ context.Context, id int, _ ports.ManagedUserInput) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func TestUserService_EveryOperationRequiresUserManage(t *testing.T) {
	api := &stubUserAPI{}
	viewer := NewUserService(api, loggedInAuthority(t, domain.RoleViewer), zerolog.Nop())

	if _, err := viewer.List(context.Background()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer list: expected ErrForbidden, got %v", err)
	}
	if _, err := viewer.Create(context.Background(), ports.ManagedUserInput{Username: "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer create: expected ErrForbidden, got %v", err)
	}
	if _, err := viewer.Update(context.Background(), 1, ports.ManagedUserInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer update: expected ErrForbidden, got %v", err)
	}
	if api.listCalls != 0 {
		t.Fatalf("forbidden calls reached the API")
	}

	manager := NewUserService(api, loggedInAuthority(t, domain.RoleManager), zerolog.Nop())
	users, err := manager.List(context.Background())
	if err != nil || len(users) != 1 {
		t.Fatalf("manager list: %v, %v", users, err)
	}
}
