// Package bulkorder gestiona los lotes de compra agrupada de un proveedor.
// Todo lote tiene al menos entity.MinBulkOrderQuantity kg: crear y editar pasan por
// la misma validación y, si falla, no se llama al servicio.
package bulkorder

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// Mensajes mostrados al usuario.
const (
	MsgMinQuantity   = "Minimum quantity must be 50 kg."
	MsgDeletePrompt  = "Are you sure you want to delete this bulk order?"
	MsgProductNeeded = "Product name is required."
)

// Confirmer pide una confirmación explícita al usuario antes de una acción destructiva.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) { return f(ctx, prompt) }

// Fields valores del formulario del lote tal como los escribe el proveedor.
type Fields struct {
	SupplierName string
	Pincode      string
	ProductName  string
	Quantity     string // kg, entero
	Price        string // por kg
}

// Manager estado local de los lotes de un proveedor.
type Manager struct {
	api ports.BulkOrderAPI
	log *logger.Logger

	mu     sync.Mutex
	orders []entity.BulkOrder
}

// NewManager construye el gestor.
func NewManager(api ports.BulkOrderAPI, log *logger.Logger) *Manager {
	return &Manager{api: api, log: log.Component("bulkorder")}
}

// Orders copia del estado local.
func (m *Manager) Orders() []entity.BulkOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.BulkOrder(nil), m.orders...)
}

// List carga los lotes del proveedor (acotados por el servicio; el filtro local es redundante).
func (m *Manager) List(ctx context.Context, supplierID string) ([]entity.BulkOrder, error) {
	if supplierID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	list, err := m.api.ListSupplierBulkOrders(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("bulkorder: listar: %w", err)
	}
	own := make([]entity.BulkOrder, 0, len(list))
	for _, b := range list {
		if b.OwnedBy(supplierID) {
			own = append(own, b)
		}
	}
	m.mu.Lock()
	m.orders = own
	m.mu.Unlock()
	return append([]entity.BulkOrder(nil), own...), nil
}

// Browse todos los lotes publicados (vista del vendor). No toca el estado local.
func (m *Manager) Browse(ctx context.Context) ([]entity.BulkOrder, error) {
	list, err := m.api.ListBulkOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("bulkorder: explorar: %w", err)
	}
	return list, nil
}

// Create publica un lote nuevo. Nombre de proveedor y pincode se toman del perfil si vienen vacíos.
func (m *Manager) Create(ctx context.Context, fields Fields, supplier entity.User) (*entity.BulkOrder, error) {
	if supplier.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(fields.SupplierName) == "" {
		fields.SupplierName = supplier.DisplayName()
	}
	if strings.TrimSpace(fields.Pincode) == "" {
		fields.Pincode = supplier.Pincode
	}
	req, err := validate(fields)
	if err != nil {
		return nil, err
	}
	req.SupplierID = supplier.ID

	created, err := m.api.CreateBulkOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("bulkorder: crear: %w", err)
	}
	m.mu.Lock()
	m.orders = append(m.orders, *created)
	m.mu.Unlock()
	m.log.Info().Str("bulk_order_id", created.ID).Int("quantity", created.Quantity).Msg("lote creado")
	return created, nil
}

// Update edita un lote con la misma validación que Create.
func (m *Manager) Update(ctx context.Context, id string, fields Fields) (*entity.BulkOrder, error) {
	req, err := validate(fields)
	if err != nil {
		return nil, err
	}
	updated, err := m.api.UpdateBulkOrder(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("bulkorder: actualizar %s: %w", id, err)
	}
	m.mu.Lock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i] = *updated
			break
		}
	}
	m.mu.Unlock()
	return updated, nil
}

// Delete borra el lote tras la confirmación del usuario. Si no confirma: ErrCancelled y ninguna llamada.
func (m *Manager) Delete(ctx context.Context, id string, confirmer Confirmer) error {
	ok, err := confirmer.Confirm(ctx, MsgDeletePrompt)
	if err != nil {
		return fmt.Errorf("bulkorder: confirmar: %w", err)
	}
	if !ok {
		return domain.ErrCancelled
	}
	if err := m.api.DeleteBulkOrder(ctx, id); err != nil {
		return fmt.Errorf("bulkorder: borrar %s: %w", id, err)
	}
	m.mu.Lock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

// validate única validación de crear y editar.
func validate(fields Fields) (dto.BulkOrderRequest, error) {
	errs := domain.FieldErrors{}
	name := strings.TrimSpace(fields.ProductName)
	if name == "" {
		errs.Add(domain.FieldName, MsgProductNeeded)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields.Quantity))
	if err != nil || qty < entity.MinBulkOrderQuantity {
		errs.Add(domain.FieldQuantity, MsgMinQuantity)
	}
	price, err := domain.ParsePositive(domain.FieldPrice, fields.Price)
	errs.Merge(err)
	if err := errs.Err(); err != nil {
		return dto.BulkOrderRequest{}, err
	}
	return dto.BulkOrderRequest{
		SupplierName: strings.TrimSpace(fields.SupplierName),
		Pincode:      strings.TrimSpace(fields.Pincode),
		ProductName:  name,
		Quantity:     qty,
		Price:        price,
	}, nil
}
