// Package catalog gestiona los productos propios de un proveedor.
//
// El servicio remoto es quien decide la propiedad: el listado se pide ya filtrado
// por proveedor y el filtro local por SupplierID es solo una segunda barrera.
// Ediciones concurrentes desde otra sesión no se reconcilian (gana la última escritura).
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// MsgNameImmutable el nombre se fija al crear el producto.
const MsgNameImmutable = "Product name cannot be changed."

// ProductFields valores del formulario tal como los escribe el proveedor.
type ProductFields struct {
	Name     string
	Quantity string // kg
	Price    string
}

// Manager estado local del catálogo de un proveedor.
type Manager struct {
	api ports.ProductAPI
	log *logger.Logger

	mu       sync.Mutex
	products []entity.Product
}

// NewManager construye el gestor con el catálogo vacío.
func NewManager(api ports.ProductAPI, log *logger.Logger) *Manager {
	return &Manager{api: api, log: log.Component("catalog")}
}

// Products copia del estado local, en el orden del servicio.
func (m *Manager) Products() []entity.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.Product(nil), m.products...)
}

// List carga los productos del proveedor. Una lista vacía es un resultado válido.
func (m *Manager) List(ctx context.Context, supplierID string) ([]entity.Product, error) {
	if supplierID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	store, err := m.api.SupplierProducts(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar: %w", err)
	}
	own := make([]entity.Product, 0, len(store.Products))
	for _, p := range store.Products {
		if p.OwnedBy(supplierID) {
			own = append(own, p)
			continue
		}
		m.log.Warn().Str("product_id", p.ID).Str("supplier_id", p.SupplierID).Msg("producto ajeno descartado del listado")
	}
	m.mu.Lock()
	m.products = own
	m.mu.Unlock()
	return append([]entity.Product(nil), own...), nil
}

// Create valida y crea el producto; si el servicio lo acepta se agrega al final del estado local.
func (m *Manager) Create(ctx context.Context, fields ProductFields, supplierID string) (*entity.Product, error) {
	if supplierID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	name := strings.TrimSpace(fields.Name)
	errs := domain.FieldErrors{}
	if name == "" {
		errs.Add(domain.FieldName, "Product name is required.")
	}
	qty, price := parseAmounts(fields, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	created, err := m.api.CreateProduct(ctx, dto.CreateProductRequest{
		Name:       name,
		Quantity:   qty,
		Price:      price,
		SupplierID: supplierID,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: crear: %w", err)
	}
	m.mu.Lock()
	m.products = append(m.products, *created)
	m.mu.Unlock()
	m.log.Info().Str("product_id", created.ID).Msg("producto creado")
	return created, nil
}

// Update cambia cantidad y precio. El nombre no se puede cambiar; si viene con otro
// valor se rechaza antes de llamar al servicio.
func (m *Manager) Update(ctx context.Context, id string, fields ProductFields) (*entity.Product, error) {
	errs := domain.FieldErrors{}
	if name := strings.TrimSpace(fields.Name); name != "" {
		// sin el producto en memoria no hay con qué comparar
		if current, ok := m.find(id); !ok || current.Name != name {
			errs.Add(domain.FieldName, MsgNameImmutable)
		}
	}
	qty, price := parseAmounts(fields, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	updated, err := m.api.UpdateProduct(ctx, id, dto.UpdateProductRequest{Quantity: qty, Price: price})
	if err != nil {
		return nil, fmt.Errorf("catalog: actualizar %s: %w", id, err)
	}
	m.mu.Lock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i] = *updated
			break
		}
	}
	m.mu.Unlock()
	return updated, nil
}

// Delete borra el producto; el estado local solo cambia si el servicio confirma.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("catalog: borrar %s: %w", id, err)
	}
	m.mu.Lock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

func (m *Manager) find(id string) (entity.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func parseAmounts(fields ProductFields, errs domain.FieldErrors) (qty, price decimal.Decimal) {
	qty, err := domain.ParsePositive(domain.FieldQuantity, fields.Quantity)
	errs.Merge(err)
	price, err = domain.ParsePositive(domain.FieldPrice, fields.Price)
	errs.Merge(err)
	return qty, price
}
