package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

type stubOrderAPI struct {
	lastCreate  ports.CreateOrderInput
	createCalls int
	statusCalls int
	cancelCalls int
}

func (s *stubOrderAPI) List(_ context.Context, _ ports.Page) (*ports.OrderList, error) {
	return &ports.OrderList{}, nil
}

func (s *stubOrderAPI) Get(_ context.Context, id int) (*domain.Order, error) {
	return &domain.Order{ID: id, Status: domain.OrderPending}, nil
}

func (s *stubOrderAPI) Create(_ context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	s.createCalls++
	s.lastCreate = input
	return &domain.Order{ID: 1, Number: "PED-0001", Status: domain.OrderPending}, nil
}

func (s *stubOrderAPI) UpdateStatus(_ context.Context, _ int, _ domain.OrderStatus, _ string) error {
	s.statusCalls++
	return nil
}

func (s *stubOrderAPI) Cancel(_ context.Context, _ int, _ string) error {
	s.cancelCalls++
	return nil
}

func loggedInAuthority(t *testing.T, roles ...domain.Role) *SessionAuthority {
	t.Helper()
	api := operatorAPI()
	api.user.Profiles = roles
	auth := newTestAuthority(api, &memTokenStore{})
	if err := auth.Login(context.Background(), "op", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return auth
}

func TestOrderService_CreateRequiresCapability(t *testing.T) {
	api := &stubOrderAPI{}
	svc := NewOrderService(api, loggedInAuthority(t, domain.RoleViewer), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		CustomerID: 1,
		Items:      []ports.OrderItemInput{{ProductID: 2, Qty: 1}},
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if api.createCalls != 0 {
		t.Fatalf("forbidden create still reached the API")
	}
}

func TestOrderService_CreateRequiresSession(t *testing.T) {
	svc := NewOrderService(&stubOrderAPI{}, newTestAuthority(operatorAPI(), &memTokenStore{}), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		CustomerID: 1,
		Items:      []ports.OrderItemInput{{ProductID: 2, Qty: 1}},
	})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestOrderService_CreateGeneratesIdempotencyKey(t *testing.T) {
	api := &stubOrderAPI{}
	svc := NewOrderService(api, loggedInAuthority(t, domain.RoleOperator), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		CustomerID: 1,
		Items:      []ports.OrderItemInput{{ProductID: 2, Qty: 3}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasPrefix(api.lastCreate.IdempotencyKey, "order_") {
		t.Fatalf("missing generated idempotency key, got %q", api.lastCreate.IdempotencyKey)
	}

	_, err = svc.Create(context.Background(), ports.CreateOrderInput{
		CustomerID:     1,
		IdempotencyKey: "order_retry_1",
		Items:          []ports.OrderItemInput{{ProductID: 2, Qty: 3}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if api.lastCreate.IdempotencyKey != "order_retry_1" {
		t.Fatalf("caller-supplied key replaced: %q", api.lastCreate.IdempotencyKey)
	}
}

func TestOrderService_CreateRejectsEmptyOrder(t *testing.T) {
	api := &stubOrderAPI{}
	svc := NewOrderService(api, loggedInAuthority(t, domain.RoleOperator), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{CustomerID: 1}); err == nil {
		t.Fatalf("expected error for order without items")
	}
	if api.createCalls != 0 {
		t.Fatalf("empty order reached the API")
	}
}

func TestOrderService_UpdateStatusChecksTransition(t *testing.T) {
	api := &stubOrderAPI{}
	svc := NewOrderService(api, loggedInAuthority(t, domain.RoleOperator), zerolog.Nop())

	err := svc.UpdateStatus(context.Background(), 1, domain.OrderPicked, domain.OrderCancelled, "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if api.statusCalls != 0 {
		t.Fatalf("invalid transition reached the API")
	}

	if err := svc.UpdateStatus(context.Background(), 1, domain.OrderPending, domain.OrderConfirmed, "ok"); err != nil {
		t.Fatalf("valid transition failed: %v", err)
	}
	// Unknown current status defers entirely to the server.
	if err := svc.UpdateStatus(context.Background(), 1, "", domain.OrderCancelled, ""); err != nil {
		t.Fatalf("server-side-only check failed: %v", err)
	}
	if api.statusCalls != 2 {
		t.Fatalf("expected 2 API calls, got %d", api.statusCalls)
	}
}

func TestOrderService_CancelRequiresManagerTier(t *testing.T) {
	api := &stubOrderAPI{}
	operator := NewOrderService(api, loggedInAuthority(t, domain.RoleOperator), zerolog.Nop())
	if err := operator.Cancel(context.Background(), 1, "n"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for operator, got %v", err)
	}

	manager := NewOrderService(api, loggedInAuthority(t, domain.RoleManager), zerolog.Nop())
	if err := manager.Cancel(context.Background(), 1, "n"); err != nil {
		t.Fatalf("manager cancel failed: %v", err)
	}
	if api.cancelCalls != 1 {
		t.Fatalf("expected 1 cancel call, got %d", api.cancelCalls)
	}
}
