package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// ProductService exposes capability-gated catalogue operations.
type ProductService struct {
	api  ports.ProductAPI
	auth *SessionAuthority
	log  zerolog.Logger
}

func NewProductService(api ports.ProductAPI, auth *SessionAuthority, log zerolog.Logger) *ProductService {
	return &ProductService{api: api, auth: auth, log: log}
}

func (s *ProductService) List(ctx context.Context, page ports.Page) (*ports.ProductList, error) {
	if err := authorize(s.auth, domain.ActionViewData); err != nil {
		return nil, err
	}
	return s.api.List(ctx, page)
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	if err := authorize(s.auth, domain.ActionViewData); err != nil {
		return nil, err
	}
	return s.api.Get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if err := authorize(s.auth, domain.ActionProductCreate); err != nil {
		return nil, err
	}
	product, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("sku", product.SKU).Int("id", product.ID).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int, input ports.ProductInput) (*domain.Product, error) {
	if err := authorize(s.auth, domain.ActionProductCreate); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, input)
}

func (s *ProductService) UpdateStock(ctx context.Context, id, qty int) error {
	if err := authorize(s.auth, domain.ActionProductStockUpdate); err != nil {
		return err
	}
	if err := s.api.UpdateStock(ctx, id, qty); err != nil {
		return err
	}
	s.log.Info().Int("id", id).Int("stock_qty", qty).Msg("stock updated")
	return nil
}
