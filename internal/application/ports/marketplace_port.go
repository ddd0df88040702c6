package ports

import (
	"context"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

// Puertos de salida hacia el servicio remoto del marketplace. Cada componente depende
// solo de la parte que usa; el adaptador HTTP (infrastructure/remote) implementa todas.
// Errores: *domain.RemoteError para respuestas no exitosas, *domain.TransportError para fallos de red.

// AuthAPI login y registro.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)
	SignupVendor(ctx context.Context, in dto.VendorSignupRequest) (*dto.AuthResponse, error)
	SignupSupplier(ctx context.Context, in dto.SupplierSignupRequest) (*dto.AuthResponse, error)
}

// ProductAPI catálogo de productos.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	SupplierProducts(ctx context.Context, supplierID string) (*entity.SupplierStorefront, error)
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// BulkOrderAPI lotes de compra agrupada.
type BulkOrderAPI interface {
	ListBulkOrders(ctx context.Context) ([]entity.BulkOrder, error)
	ListSupplierBulkOrders(ctx context.Context, supplierID string) ([]entity.BulkOrder, error)
	CreateBulkOrder(ctx context.Context, in dto.BulkOrderRequest) (*entity.BulkOrder, error)
	UpdateBulkOrder(ctx context.Context, id string, in dto.BulkOrderRequest) (*entity.BulkOrder, error)
	DeleteBulkOrder(ctx context.Context, id string) error
}

// OrderAPI pedidos.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*entity.Order, error)
	SupplierOrders(ctx context.Context, supplierID string) ([]entity.SupplierOrder, error)
}

// SupplierAPI descubrimiento de proveedores y panel del vendor.
type SupplierAPI interface {
	SearchSuppliers(ctx context.Context, pincode string) ([]entity.Supplier, error)
	VendorDashboard(ctx context.Context) (*entity.VendorDashboard, error)
}

// MarketplaceAPI el servicio remoto completo.
type MarketplaceAPI interface {
	AuthAPI
	ProductAPI
	BulkOrderAPI
	OrderAPI
	SupplierAPI
}
