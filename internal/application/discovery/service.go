// Package discovery busca proveedores y expone las vistas de lectura del vendor.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

const (
	MsgNotFound     = "No suppliers found for this pincode."
	MsgSearchFailed = "An error occurred while searching."
	MsgPincode      = "Please enter a pincode."
)

// SearchResult resultado de una búsqueda que respondió. NotFound distingue "sin coincidencias"
// de un fallo, que llega como error.
type SearchResult struct {
	Pincode   string
	Suppliers []entity.Supplier
	NotFound  bool
	Message   string
}

// Service operaciones de descubrimiento.
type Service struct {
	suppliers ports.SupplierAPI
	products  ports.ProductAPI
	log       *logger.Logger
}

// NewService construye el servicio.
func NewService(suppliers ports.SupplierAPI, products ports.ProductAPI, log *logger.Logger) *Service {
	return &Service{suppliers: suppliers, products: products, log: log.Component("discovery")}
}

// SearchByPincode busca proveedores por pincode exacto.
func (s *Service) SearchByPincode(ctx context.Context, pincode string) (*SearchResult, error) {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return nil, domain.FieldError(domain.FieldPincode, MsgPincode)
	}
	list, err := s.suppliers.SearchSuppliers(ctx, pincode)
	if err != nil {
		s.log.Warn().Err(err).Str("pincode", pincode).Msg("búsqueda fallida")
		return nil, fmt.Errorf("discovery: buscar %s: %w", pincode, err)
	}
	res := &SearchResult{Pincode: pincode, Suppliers: list}
	if len(list) == 0 {
		res.NotFound = true
		res.Message = MsgNotFound
	}
	return res, nil
}

// SearchFailureMessage texto para el usuario cuando la búsqueda falla.
func SearchFailureMessage(err error) string {
	var fe domain.FieldErrors
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return MsgSearchFailed
}

// SupplierProducts vitrina pública de un proveedor.
func (s *Service) SupplierProducts(ctx context.Context, supplierID string) (*entity.SupplierStorefront, error) {
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return nil, domain.FieldError(domain.FieldSupplier, "Supplier is required.")
	}
	store, err := s.products.SupplierProducts(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("discovery: productos de %s: %w", supplierID, err)
	}
	return store, nil
}

// Dashboard datos del panel del vendor autenticado.
func (s *Service) Dashboard(ctx context.Context) (*entity.VendorDashboard, error) {
	d, err := s.suppliers.VendorDashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovery: panel del vendor: %w", err)
	}
	return d, nil
}
