package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode forma de pago elegida por el vendor. El cobro en sí queda fuera del sistema.
type PaymentMode string

// Formas de pago aceptadas (valores tal cual viajan por la red).
const (
	PaymentCashOnDelivery PaymentMode = "Cash on Delivery"
	PaymentUPI            PaymentMode = "UPI Payment"
)

// Valid indica si la forma de pago es conocida.
func (m PaymentMode) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentUPI
}

// Order pedido de un vendor sobre un producto existente. Inmutable una vez creado.
type Order struct {
	ID          string          `json:"_id"`
	ProductID   string          `json:"productId"`
	SupplierID  string          `json:"supplierId"`
	Quantity    decimal.Decimal `json:"quantity"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductRef referencia embebida al producto en el listado de pedidos del proveedor.
type ProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// SupplierOrder pedido recibido por un proveedor ("My Orders"), con el nombre del producto.
type SupplierOrder struct {
	ID          string          `json:"_id"`
	Product     *ProductRef     `json:"productId"`
	SupplierID  string          `json:"supplierId"`
	Quantity    decimal.Decimal `json:"quantity"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductName nombre del producto o "N/A" si el servicio no lo embebió.
func (o SupplierOrder) ProductName() string {
	if o.Product == nil || o.Product.Name == "" {
		return "N/A"
	}
	return o.Product.Name
}
