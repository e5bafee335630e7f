package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// CustomerClient implements ports.CustomerAPI.
type CustomerClient struct {
	c *Client
}

func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{c: c}
}

func (cc *CustomerClient) List(ctx context.Context, page ports.Page) (*ports.CustomerList, error) {
	var out customerListResponse
	err := cc.c.do(ctx, call{
		resource: "customers",
		method:   http.MethodGet,
		path:     "/customers",
		query:    pageQuery(page),
		out:      &out,
	})
	if err != nil {
		return nil, err
	}
	return &ports.CustomerList{Count: out.Count, Results: out.Results}, nil
}

func (cc *CustomerClient) Get(ctx context.Context, id int) (*domain.Customer, error) {
	var customer domain.Customer
	err := cc.c.do(ctx, call{
		resource: "customers",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/customers/%d", id),
		out:      &customer,
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (cc *CustomerClient) Create(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	err := cc.c.do(ctx, call{
		resource: "customers",
		method:   http.MethodPost,
		path:     "/customers",
		body:     customerBody(input),
		out:      &customer,
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (cc *CustomerClient) Update(ctx context.Context, id int, input ports.CustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	err := cc.c.do(ctx, call{
		resource: "customers",
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/customers/%d", id),
		body:     customerBody(input),
		out:      &customer,
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func customerBody(input ports.CustomerInput) customerRequest {
	return customerRequest{
		Name:     input.Name,
		CpfCnpj:  input.CpfCnpj,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		IsActive: input.IsActive,
	}
}
