package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// ProductClient implements ports.ProductAPI.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

func (p *ProductClient) List(ctx context.Context, page ports.Page) (*ports.ProductList, error) {
	var out productListResponse
	err := p.c.do(ctx, call{
		resource: "products",
		method:   http.MethodGet,
		path:     "/products",
		query:    pageQuery(page),
		out:      &out,
	})
	if err != nil {
		return nil, err
	}
	return &ports.ProductList{Count: out.Count, Results: out.Results}, nil
}

func (p *ProductClient) Get(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	err := p.c.do(ctx, call{
		resource: "products",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/products/%d", id),
		out:      &product,
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	err := p.c.do(ctx, call{
		resource: "products",
		method:   http.MethodPost,
		path:     "/products",
		body:     productBody(input),
		out:      &product,
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) Update(ctx context.Context, id int, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	err := p.c.do(ctx, call{
		resource: "products",
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/products/%d", id),
		body:     productBody(input),
		out:      &product,
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) UpdateStock(ctx context.Context, id, qty int) error {
	return p.c.do(ctx, call{
		resource: "products",
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/products/%d/stock", id),
		body:     stockRequest{StockQty: qty},
	})
}

func productBody(input ports.ProductInput) productRequest {
	return productRequest{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		StockQty:    input.StockQty,
		IsActive:    input.IsActive,
	}
}
