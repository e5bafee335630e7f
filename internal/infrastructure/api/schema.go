package api

import "github.com/erplite/backoffice-client/internal/core/domain"

// Request/response wire types. Requests carry validate tags and are
// checked before sending; responses decode straight into domain types
// where the wire shape matches.

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Access string `json:"access"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Profile  string `json:"profile"  validate:"required,oneof=admin manager operator viewer"`
}

type productRequest struct {
	SKU         string `json:"sku"         validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price"       validate:"required"`
	StockQty    int    `json:"stock_qty"   validate:"gte=0"`
	IsActive    bool   `json:"is_active"`
}

type stockRequest struct {
	StockQty int `json:"stock_qty" validate:"gte=0"`
}

type customerRequest struct {
	Name     string `json:"name"     validate:"required"`
	CpfCnpj  string `json:"cpf_cnpj" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

type orderItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Qty       int `json:"qty"        validate:"required,gte=1"`
}

type createOrderRequest struct {
	CustomerID     int                `json:"customer_id"     validate:"required"`
	IdempotencyKey string             `json:"idempotency_key" validate:"required"`
	Observations   string             `json:"observations"`
	Items          []orderItemRequest `json:"items"           validate:"required,min=1,dive"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDENTE CONFIRMADO SEPARADO ENVIADO ENTREGUE CANCELADO"`
	Note   string `json:"note"`
}

type cancelOrderRequest struct {
	Note string `json:"note"`
}

type createUserRequest struct {
	Username string `json:"username"  validate:"required"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Password string `json:"password"  validate:"required"`
	Profile  string `json:"profile"   validate:"required,oneof=admin manager operator viewer"`
	IsActive bool   `json:"is_active"`
}

type updateUserRequest struct {
	Profile  *string `json:"profile,omitempty"   validate:"omitempty,oneof=admin manager operator viewer"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type productListResponse struct {
	Count   int64            `json:"count"`
	Results []domain.Product `json:"results"`
}

type customerListResponse struct {
	Count   int64             `json:"count"`
	Results []domain.Customer `json:"results"`
}

type orderListResponse struct {
	Count   int64          `json:"count"`
	Results []domain.Order `json:"results"`
}
