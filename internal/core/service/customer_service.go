package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// CustomerService exposes capability-gated customer operations.
type CustomerService struct {
	api  ports.CustomerAPI
	auth *SessionAuthority
	log  zerolog.Logger
}

func NewCustomerService(api ports.CustomerAPI, auth *SessionAuthority, log zerolog.Logger) *CustomerService {
	return &CustomerService{api: api, auth: auth, log: log}
}

func (s *CustomerService) List(ctx context.Context, page ports.Page) (*ports.CustomerList, error) {
	if err := authorize(s.auth, domain.ActionViewData); err != nil {
		return nil, err
	}
	return s.api.List(ctx, page)
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	if err := authorize(s.auth, domain.ActionCustomerDetail); err != nil {
		return nil, err
	}
	return s.api.Get(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	if err := authorize(s.auth, domain.ActionCustomerCreate); err != nil {
		return nil, err
	}
	customer, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int, input ports.CustomerInput) (*domain.Customer, error) {
	if err := authorize(s.auth, domain.ActionCustomerCreate); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, input)
}
