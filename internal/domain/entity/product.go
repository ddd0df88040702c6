package entity

import "github.com/shopspring/decimal"

// Product producto listado por un proveedor. Quantity en kg.
// Solo el proveedor SupplierID puede modificarlo o borrarlo; Name no se edita tras crearlo.
type Product struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	SupplierID string          `json:"supplierId"`
}

// OwnedBy indica si el producto pertenece al proveedor.
func (p Product) OwnedBy(supplierID string) bool {
	return supplierID != "" && p.SupplierID == supplierID
}

// SupplierStorefront vista pública de los productos de un proveedor.
type SupplierStorefront struct {
	SupplierName string    `json:"supplierName"`
	Products     []Product `json:"products"`
}
