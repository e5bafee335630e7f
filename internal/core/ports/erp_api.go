package ports

import (
	"context"

	"github.com/erplite/backoffice-client/internal/core/domain"
)

// Page carries limit/offset pagination for list endpoints.
type Page struct {
	Limit  int
	Offset int
}

// ProductList is a paginated products response.
type ProductList struct {
	Count   int64
	Results []domain.Product
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	SKU         string
	Name        string
	Description string
	Price       string
	StockQty    int
	IsActive    bool
}

// ProductAPI is the catalogue surface of the ERP API.
type ProductAPI interface {
	List(ctx context.Context, page Page) (*ProductList, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, input ProductInput) (*domain.Product, error)
	UpdateStock(ctx context.Context, id, qty int) error
}

// CustomerList is a paginated customers response.
type CustomerList struct {
	Count   int64
	Results []domain.Customer
}

// CustomerInput carries the writable fields of a customer.
type CustomerInput struct {
	Name     string
	CpfCnpj  string
	Email    string
	Phone    string
	Address  string
	IsActive bool
}

// CustomerAPI is the customers surface of the ERP API.
type CustomerAPI interface {
	List(ctx context.Context, page Page) (*CustomerList, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int, input CustomerInput) (*domain.Customer, error)
}

// OrderList is a paginated orders response.
type OrderList struct {
	Count   int64
	Results []domain.Order
}

// OrderItemInput is a single order line at creation time.
type OrderItemInput struct {
	ProductID int
	Qty       int
}

// CreateOrderInput carries everything needed to place an order.
// IdempotencyKey lets a retried create resolve to the same order.
type CreateOrderInput struct {
	CustomerID     int
	Observations   string
	IdempotencyKey string
	Items          []OrderItemInput
}

// OrderAPI is the orders surface of the ERP API.
type OrderAPI interface {
	List(ctx context.Context, page Page) (*OrderList, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus, note string) error
	Cancel(ctx context.Context, id int, note string) error
}

// ManagedUserInput carries the writable fields of a managed account.
// Pointer fields distinguish "leave unchanged" from zero values on updates.
type ManagedUserInput struct {
	Username string
	Email    string
	Password string
	Profile  *domain.Role
	IsActive *bool
}

// UserAPI is the account-administration surface of the ERP API.
type UserAPI interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input ManagedUserInput) (*domain.User, error)
	Update(ctx context.Context, id int, input ManagedUserInput) (*domain.User, error)
}
