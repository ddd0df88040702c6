package http

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

type userRecord struct {
	user         entity.User
	passwordHash []byte
}

type orderRecord struct {
	order    entity.Order
	vendorID string
}

// MemoryMarketplace estado del marketplace de pruebas. Todo vive en memoria y se pierde al reiniciar.
type MemoryMarketplace struct {
	bcryptCost int
	now        func() time.Time

	mu         sync.RWMutex
	users      map[string]*userRecord
	products   []entity.Product
	bulkOrders []entity.BulkOrder
	orders     []orderRecord
}

// NewMemoryMarketplace construye el estado vacío. bcryptCost 0 usa bcrypt.DefaultCost.
func NewMemoryMarketplace(bcryptCost int) *MemoryMarketplace {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &MemoryMarketplace{
		bcryptCost: bcryptCost,
		now:        time.Now,
		users:      make(map[string]*userRecord),
	}
}

// Register alta de usuario. El teléfono es único por rol; el email también entre proveedores.
func (m *MemoryMarketplace) Register(u entity.User, password string) (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return entity.User{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.users {
		if rec.user.Role != u.Role {
			continue
		}
		if rec.user.Phone == u.Phone || (u.Email != "" && strings.EqualFold(rec.user.Email, u.Email)) {
			return entity.User{}, domain.ErrDuplicate
		}
	}
	u.ID = uuid.New().String()
	m.users[u.ID] = &userRecord{user: u, passwordHash: hash}
	return u, nil
}

// Authenticate busca por teléfono (o email para proveedores) dentro del rol y compara la contraseña.
func (m *MemoryMarketplace) Authenticate(role entity.Role, identifier, password string) (entity.User, error) {
	m.mu.RLock()
	var found *userRecord
	for _, rec := range m.users {
		if rec.user.Role != role {
			continue
		}
		if rec.user.Phone == identifier || (role == entity.RoleSupplier && strings.EqualFold(rec.user.Email, identifier)) {
			found = rec
			break
		}
	}
	m.mu.RUnlock()
	if found == nil {
		return entity.User{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(found.passwordHash, []byte(password)); err != nil {
		return entity.User{}, domain.ErrUnauthorized
	}
	return found.user, nil
}

// User busca un usuario por id.
func (m *MemoryMarketplace) User(id string) (entity.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.users[id]
	if !ok {
		return entity.User{}, false
	}
	return rec.user, true
}

// SuppliersByPincode proveedores con el pincode exacto, ordenados por nombre.
func (m *MemoryMarketplace) SuppliersByPincode(pincode string) []entity.Supplier {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []entity.Supplier{}
	for _, rec := range m.users {
		u := rec.user
		if u.Role != entity.RoleSupplier || u.Pincode != pincode {
			continue
		}
		out = append(out, entity.Supplier{
			ID: u.ID, Name: u.DisplayName(), BusinessName: u.BusinessName,
			Pincode: u.Pincode, Phone: u.Phone, Email: u.Email,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Products copia de los productos; supplierID vacío = todos.
func (m *MemoryMarketplace) Products(supplierID string) []entity.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []entity.Product{}
	for _, p := range m.products {
		if supplierID == "" || p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct alta de producto.
func (m *MemoryMarketplace) AddProduct(p entity.Product) entity.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.New().String()
	m.products = append(m.products, p)
	return p
}

// UpdateProduct aplica fn al producto si pertenece a ownerID.
func (m *MemoryMarketplace) UpdateProduct(id, ownerID string, fn func(*entity.Product)) (entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		if !m.products[i].OwnedBy(ownerID) {
			return entity.Product{}, domain.ErrForbidden
		}
		fn(&m.products[i])
		return m.products[i], nil
	}
	return entity.Product{}, domain.ErrNotFound
}

// DeleteProduct borra el producto si pertenece a ownerID.
func (m *MemoryMarketplace) DeleteProduct(id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.ID != id {
			continue
		}
		if !p.OwnedBy(ownerID) {
			return domain.ErrForbidden
		}
		m.products = append(m.products[:i], m.products[i+1:]...)
		return nil
	}
	return domain.ErrNotFound
}

// Product busca un producto por id.
func (m *MemoryMarketplace) Product(id string) (entity.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// BulkOrders copia de los lotes; supplierID vacío = todos.
func (m *MemoryMarketplace) BulkOrders(supplierID string) []entity.BulkOrder {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []entity.BulkOrder{}
	for _, b := range m.bulkOrders {
		if supplierID == "" || b.SupplierID == supplierID {
			out = append(out, b)
		}
	}
	return out
}

// AddBulkOrder alta de lote.
func (m *MemoryMarketplace) AddBulkOrder(b entity.BulkOrder) entity.BulkOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = uuid.New().String()
	b.CreatedAt = m.now().UTC()
	m.bulkOrders = append(m.bulkOrders, b)
	return b
}

// UpdateBulkOrder aplica fn al lote si pertenece a ownerID.
func (m *MemoryMarketplace) UpdateBulkOrder(id, ownerID string, fn func(*entity.BulkOrder)) (entity.BulkOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bulkOrders {
		if m.bulkOrders[i].ID != id {
			continue
		}
		if !m.bulkOrders[i].OwnedBy(ownerID) {
			return entity.BulkOrder{}, domain.ErrForbidden
		}
		fn(&m.bulkOrders[i])
		return m.bulkOrders[i], nil
	}
	return entity.BulkOrder{}, domain.ErrNotFound
}

// DeleteBulkOrder borra el lote si pertenece a ownerID.
func (m *MemoryMarketplace) DeleteBulkOrder(id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.bulkOrders {
		if b.ID != id {
			continue
		}
		if !b.OwnedBy(ownerID) {
			return domain.ErrForbidden
		}
		m.bulkOrders = append(m.bulkOrders[:i], m.bulkOrders[i+1:]...)
		return nil
	}
	return domain.ErrNotFound
}

// AddOrder registra el pedido de un vendor.
func (m *MemoryMarketplace) AddOrder(o entity.Order, vendorID string) entity.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = uuid.New().String()
	o.CreatedAt = m.now().UTC()
	m.orders = append(m.orders, orderRecord{order: o, vendorID: vendorID})
	return o
}

// OrdersForSupplier pedidos recibidos, con el producto embebido si aún existe.
func (m *MemoryMarketplace) OrdersForSupplier(supplierID string) []entity.SupplierOrder {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make(map[string]string, len(m.products))
	for _, p := range m.products {
		names[p.ID] = p.Name
	}
	out := []entity.SupplierOrder{}
	for _, rec := range m.orders {
		o := rec.order
		if o.SupplierID != supplierID {
			continue
		}
		so := entity.SupplierOrder{
			ID: o.ID, SupplierID: o.SupplierID, Quantity: o.Quantity,
			PaymentMode: o.PaymentMode, CreatedAt: o.CreatedAt,
		}
		if name, ok := names[o.ProductID]; ok {
			so.Product = &entity.ProductRef{ID: o.ProductID, Name: name}
		}
		out = append(out, so)
	}
	return out
}

// OrderCountForVendor número de pedidos colocados por el vendor.
func (m *MemoryMarketplace) OrderCountForVendor(vendorID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, rec := range m.orders {
		if rec.vendorID == vendorID {
			n++
		}
	}
	return n
}
