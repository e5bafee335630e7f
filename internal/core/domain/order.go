package domain

// OrderStatus represents the lifecycle state of an order. The values are
// the wire constants of the ERP API.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDENTE"
	OrderConfirmed OrderStatus = "CONFIRMADO"
	OrderPicked    OrderStatus = "SEPARADO"
	OrderShipped   OrderStatus = "ENVIADO"
	OrderDelivered OrderStatus = "ENTREGUE"
	OrderCancelled OrderStatus = "CANCELADO"
)

// validOrderTransitions defines the allowed state machine transitions.
// Delivered and cancelled are terminal.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPicked, OrderCancelled},
	OrderPicked:    {OrderShipped},
	OrderShipped:   {OrderDelivered},
}

// CanTransitionTo reports whether a transition from the current status
// to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID int    `json:"product_id"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unit_price,omitempty"`
	Subtotal  string `json:"subtotal,omitempty"`
}

// Order is an ERP sales order. Monetary values stay as the API's decimal
// strings; the client displays them, it never does arithmetic on them.
type Order struct {
	ID           int         `json:"id"`
	Number       string      `json:"number"`
	CustomerID   int         `json:"customer_id"`
	Status       OrderStatus `json:"status"`
	Total        string      `json:"total"`
	Observations string      `json:"observations,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
}
