package domain

// Product is a catalogue entry as served by the ERP API.
type Product struct {
	ID          int    `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	StockQty    int    `json:"stock_qty"`
	IsActive    bool   `json:"is_active"`
}
