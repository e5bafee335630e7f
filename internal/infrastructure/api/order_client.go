package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

// OrderClient implements ports.OrderAPI.
type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

func (o *OrderClient) List(ctx context.Context, page ports.Page) (*ports.OrderList, error) {
	var out orderListResponse
	err := o.c.do(ctx, call{
		resource: "orders",
		method:   http.MethodGet,
		path:     "/orders",
		query:    pageQuery(page),
		out:      &out,
	})
	if err != nil {
		return nil, err
	}
	return &ports.OrderList{Count: out.Count, Results: out.Results}, nil
}

func (o *OrderClient) Get(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := o.c.do(ctx, call{
		resource: "orders",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/orders/%d", id),
		out:      &order,
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *OrderClient) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	items := make([]orderItemRequest, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, orderItemRequest{ProductID: item.ProductID, Qty: item.Qty})
	}

	var order domain.Order
	err := o.c.do(ctx, call{
		resource: "orders",
		method:   http.MethodPost,
		path:     "/orders",
		body: createOrderRequest{
			CustomerID:     input.CustomerID,
			IdempotencyKey: input.IdempotencyKey,
			Observations:   input.Observations,
			Items:          items,
		},
		out: &order,
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *OrderClient) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus, note string) error {
	return o.c.do(ctx, call{
		resource: "orders",
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/orders/%d/status", id),
		body:     orderStatusRequest{Status: string(status), Note: note},
	})
}

// Cancel sends DELETE with a JSON note body; unusual for DELETE but it
// is the wire contract of the API.
func (o *OrderClient) Cancel(ctx context.Context, id int, note string) error {
	return o.c.do(ctx, call{
		resource: "orders",
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/orders/%d", id),
		body:     cancelOrderRequest{Note: note},
	})
}
