package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// OrderHandler pedidos, búsqueda de proveedores y panel del vendor.
type OrderHandler struct {
	state *MemoryMarketplace
	log   *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(state *MemoryMarketplace, log *logger.Logger) *OrderHandler {
	return &OrderHandler{state: state, log: log}
}

// Place POST /api/orders (vendor)
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	mode := entity.PaymentMode(in.PaymentMode)
	if !in.Quantity.IsPositive() || !mode.Valid() {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "quantity > 0 and a valid paymentMode are required")
	}
	p, ok := h.state.Product(in.ProductID)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Product not found")
	}
	if in.SupplierID != p.SupplierID {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "Product does not belong to this supplier")
	}
	o := h.state.AddOrder(entity.Order{
		ProductID:   p.ID,
		SupplierID:  p.SupplierID,
		Quantity:    in.Quantity,
		PaymentMode: mode,
	}, GetUserID(c))
	h.log.Info().Str("order_id", o.ID).Str("product_id", p.ID).Msg("pedido registrado")
	return c.Status(fiber.StatusCreated).JSON(o)
}

// ForSupplier GET /api/orders/supplier/:supplierId (solo el propio proveedor)
func (h *OrderHandler) ForSupplier(c *fiber.Ctx) error {
	id := c.Params("supplierId")
	if id != GetUserID(c) {
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "You can only view your own orders")
	}
	return c.JSON(h.state.OrdersForSupplier(id))
}

// SearchSuppliers GET /api/suppliers/search?pincode=
func (h *OrderHandler) SearchSuppliers(c *fiber.Ctx) error {
	pincode := c.Query("pincode")
	if pincode == "" {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "pincode is required")
	}
	return c.JSON(h.state.SuppliersByPincode(pincode))
}

// VendorDashboard GET /api/vendor/dashboard (vendor)
func (h *OrderHandler) VendorDashboard(c *fiber.Ctx) error {
	userID := GetUserID(c)
	u, ok := h.state.User(userID)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Vendor not found")
	}
	return c.JSON(entity.VendorDashboard{
		VendorName:  u.DisplayName(),
		Phone:       u.Phone,
		TotalOrders: h.state.OrderCountForVendor(userID),
	})
}
