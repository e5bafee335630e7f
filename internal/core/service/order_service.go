package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// OrderService exposes capability-gated order operations, with the order
// status state machine applied client-side before status round-trips.
type OrderService struct {
	api  ports.OrderAPI
	auth *SessionAuthority
	log  zerolog.Logger
}

func NewOrderService(api ports.OrderAPI, auth *SessionAuthority, log zerolog.Logger) *OrderService {
	return &OrderService{api: api, auth: auth, log: log}
}

func (s *OrderService) List(ctx context.Context, page ports.Page) (*ports.OrderList, error) {
	if err := authorize(s.auth, domain.ActionViewData); err != nil {
		return nil, err
	}
	return s.api.List(ctx, page)
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	if err := authorize(s.auth, domain.ActionViewData); err != nil {
		return nil, err
	}
	return s.api.Get(ctx, id)
}

// Create places a new order. When the caller supplies no idempotency key
// one is generated, so a manual retry of a timed-out create resolves to
// the same order server-side.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if err := authorize(s.auth, domain.ActionOrderCreate); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order needs at least one item")
	}
	if input.IdempotencyKey == "" {
		input.IdempotencyKey = newIdempotencyKey()
	}
	order, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("number", order.Number).Int("id", order.ID).Msg("order created")
	return order, nil
}

// UpdateStatus moves an order to a new status. When the caller knows the
// current status the transition is checked locally first; pass "" to
// skip the check and let the server decide alone.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, current, next domain.OrderStatus, note string) error {
	if err := authorize(s.auth, domain.ActionOrderStatusUpdate); err != nil {
		return err
	}
	if current != "" && !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, next)
	}
	if err := s.api.UpdateStatus(ctx, id, next, note); err != nil {
		return err
	}
	s.log.Info().Int("id", id).Str("status", string(next)).Msg("order status updated")
	return nil
}

func (s *OrderService) Cancel(ctx context.Context, id int, note string) error {
	if err := authorize(s.auth, domain.ActionOrderCancel); err != nil {
		return err
	}
	if err := s.api.Cancel(ctx, id, note); err != nil {
		return err
	}
	s.log.Info().Int("id", id).Msg("order cancelled")
	return nil
}

func newIdempotencyKey() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
