// Package portstest fakes de los puertos para tests de los casos de uso.
package portstest

import (
	"context"
	"sync"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

var _ ports.MarketplaceAPI = (*FakeMarketplace)(nil)

// Call una invocación registrada: operación, id de ruta (si aplica) y cuerpo.
type Call struct {
	Op   string
	ID   string
	Body any
}

// FakeMarketplace registra cada llamada y delega en la función configurada.
// Una función sin configurar devuelve el valor cero sin error.
type FakeMarketplace struct {
	mu    sync.Mutex
	calls []Call

	LoginFn                  func(dto.LoginRequest) (*dto.AuthResponse, error)
	SignupVendorFn           func(dto.VendorSignupRequest) (*dto.AuthResponse, error)
	SignupSupplierFn         func(dto.SupplierSignupRequest) (*dto.AuthResponse, error)
	ListProductsFn           func() ([]entity.Product, error)
	SupplierProductsFn       func(supplierID string) (*entity.SupplierStorefront, error)
	CreateProductFn          func(dto.CreateProductRequest) (*entity.Product, error)
	UpdateProductFn          func(id string, in dto.UpdateProductRequest) (*entity.Product, error)
	DeleteProductFn          func(id string) error
	ListBulkOrdersFn         func() ([]entity.BulkOrder, error)
	ListSupplierBulkOrdersFn func(supplierID string) ([]entity.BulkOrder, error)
	CreateBulkOrderFn        func(dto.BulkOrderRequest) (*entity.BulkOrder, error)
	UpdateBulkOrderFn        func(id string, in dto.BulkOrderRequest) (*entity.BulkOrder, error)
	DeleteBulkOrderFn        func(id string) error
	PlaceOrderFn             func(dto.PlaceOrderRequest) (*entity.Order, error)
	SupplierOrdersFn         func(supplierID string) ([]entity.SupplierOrder, error)
	SearchSuppliersFn        func(pincode string) ([]entity.Supplier, error)
	VendorDashboardFn        func() (*entity.VendorDashboard, error)
}

func (f *FakeMarketplace) record(op, id string, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: op, ID: id, Body: body})
}

// Calls copia de las llamadas registradas.
func (f *FakeMarketplace) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount número de llamadas registradas.
func (f *FakeMarketplace) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *FakeMarketplace) Login(_ context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	f.record("Login", "", in)
	if f.LoginFn == nil {
		return &dto.AuthResponse{}, nil
	}
	return f.LoginFn(in)
}

func (f *FakeMarketplace) SignupVendor(_ context.Context, in dto.VendorSignupRequest) (*dto.AuthResponse, error) {
	f.record("SignupVendor", "", in)
	if f.SignupVendorFn == nil {
		return &dto.AuthResponse{}, nil
	}
	return f.SignupVendorFn(in)
}

func (f *FakeMarketplace) SignupSupplier(_ context.Context, in dto.SupplierSignupRequest) (*dto.AuthResponse, error) {
	f.record("SignupSupplier", "", in)
	if f.SignupSupplierFn == nil {
		return &dto.AuthResponse{}, nil
	}
	return f.SignupSupplierFn(in)
}

func (f *FakeMarketplace) ListProducts(_ context.Context) ([]entity.Product, error) {
	f.record("ListProducts", "", nil)
	if f.ListProductsFn == nil {
		return nil, nil
	}
	return f.ListProductsFn()
}

func (f *FakeMarketplace) SupplierProducts(_ context.Context, supplierID string) (*entity.SupplierStorefront, error) {
	f.record("SupplierProducts", supplierID, nil)
	if f.SupplierProductsFn == nil {
		return &entity.SupplierStorefront{}, nil
	}
	return f.SupplierProductsFn(supplierID)
}

func (f *FakeMarketplace) CreateProduct(_ context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	f.record("CreateProduct", "", in)
	if f.CreateProductFn == nil {
		return &entity.Product{}, nil
	}
	return f.CreateProductFn(in)
}

func (f *FakeMarketplace) UpdateProduct(_ context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	f.record("UpdateProduct", id, in)
	if f.UpdateProductFn == nil {
		return &entity.Product{ID: id}, nil
	}
	return f.UpdateProductFn(id, in)
}

func (f *FakeMarketplace) DeleteProduct(_ context.Context, id string) error {
	f.record("DeleteProduct", id, nil)
	if f.DeleteProductFn == nil {
		return nil
	}
	return f.DeleteProductFn(id)
}

func (f *FakeMarketplace) ListBulkOrders(_ context.Context) ([]entity.BulkOrder, error) {
	f.record("ListBulkOrders", "", nil)
	if f.ListBulkOrdersFn == nil {
		return nil, nil
	}
	return f.ListBulkOrdersFn()
}

func (f *FakeMarketplace) ListSupplierBulkOrders(_ context.Context, supplierID string) ([]entity.BulkOrder, error) {
	f.record("ListSupplierBulkOrders", supplierID, nil)
	if f.ListSupplierBulkOrdersFn == nil {
		return nil, nil
	}
	return f.ListSupplierBulkOrdersFn(supplierID)
}

func (f *FakeMarketplace) CreateBulkOrder(_ context.Context, in dto.BulkOrderRequest) (*entity.BulkOrder, error) {
	f.record("CreateBulkOrder", "", in)
	if f.CreateBulkOrderFn == nil {
		return &entity.BulkOrder{}, nil
	}
	return f.CreateBulkOrderFn(in)
}

func (f *FakeMarketplace) UpdateBulkOrder(_ context.Context, id string, in dto.BulkOrderRequest) (*entity.BulkOrder, error) {
	f.record("UpdateBulkOrder", id, in)
	if f.UpdateBulkOrderFn == nil {
		return &entity.BulkOrder{ID: id}, nil
	}
	return f.UpdateBulkOrderFn(id, in)
}

func (f *FakeMarketplace) DeleteBulkOrder(_ context.Context, id string) error {
	f.record("DeleteBulkOrder", id, nil)
	if f.DeleteBulkOrderFn == nil {
		return nil
	}
	return f.DeleteBulkOrderFn(id)
}

func (f *FakeMarketplace) PlaceOrder(_ context.Context, in dto.PlaceOrderRequest) (*entity.Order, error) {
	f.record("PlaceOrder", "", in)
	if f.PlaceOrderFn == nil {
		return &entity.Order{}, nil
	}
	return f.PlaceOrderFn(in)
}

func (f *FakeMarketplace) SupplierOrders(_ context.Context, supplierID string) ([]entity.SupplierOrder, error) {
	f.record("SupplierOrders", supplierID, nil)
	if f.SupplierOrdersFn == nil {
		return nil, nil
	}
	return f.SupplierOrdersFn(supplierID)
}

func (f *FakeMarketplace) SearchSuppliers(_ context.Context, pincode string) ([]entity.Supplier, error) {
	f.record("SearchSuppliers", pincode, nil)
	if f.SearchSuppliersFn == nil {
		return nil, nil
	}
	return f.SearchSuppliersFn(pincode)
}

func (f *FakeMarketplace) VendorDashboard(_ context.Context) (*entity.VendorDashboard, error) {
	f.record("VendorDashboard", "", nil)
	if f.VendorDashboardFn == nil {
		return &entity.VendorDashboard{}, nil
	}
	return f.VendorDashboardFn()
}
