package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para POST /products.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	SupplierID string          `json:"supplierId"`
}

// UpdateProductRequest entrada para PUT /products/{id}. Name no viaja: es inmutable.
type UpdateProductRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// BulkOrderRequest entrada para POST /bulk-orders y PUT /bulk-orders/{id}.
// Los campos vacíos no viajan: un PUT sin supplierName/pincode conserva los del lote.
type BulkOrderRequest struct {
	SupplierName string          `json:"supplierName,omitempty"`
	Pincode      string          `json:"pincode,omitempty"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SupplierID   string          `json:"supplierId,omitempty"`
}

// PlaceOrderRequest entrada para POST /orders.
type PlaceOrderRequest struct {
	ProductID   string          `json:"productId"`
	Quantity    decimal.Decimal `json:"quantity"`
	SupplierID  string          `json:"supplierId"`
	PaymentMode string          `json:"paymentMode"`
}
