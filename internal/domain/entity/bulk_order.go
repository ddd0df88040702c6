package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinBulkOrderQuantity mínimo en kg de un lote de compra agrupada (inclusive).
const MinBulkOrderQuantity = 50

// BulkOrder lote publicado por un proveedor para compra agrupada.
// Invariante: Quantity >= MinBulkOrderQuantity.
type BulkOrder struct {
	ID           string          `json:"_id"`
	SupplierName string          `json:"supplierName"`
	Pincode      string          `json:"pincode"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"` // por kg
	SupplierID   string          `json:"supplierId"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OwnedBy indica si el lote pertenece al proveedor.
func (b BulkOrder) OwnedBy(supplierID string) bool {
	return supplierID != "" && b.SupplierID == supplierID
}
