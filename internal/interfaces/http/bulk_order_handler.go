package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// BulkOrderHandler lotes de compra agrupada.
type BulkOrderHandler struct {
	state *MemoryMarketplace
	log   *logger.Logger
}

// NewBulkOrderHandler construye el handler.
func NewBulkOrderHandler(state *MemoryMarketplace, log *logger.Logger) *BulkOrderHandler {
	return &BulkOrderHandler{state: state, log: log}
}

// List GET /api/bulk-orders
func (h *BulkOrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.state.BulkOrders(""))
}

// BySupplier GET /api/bulk-orders/:supplierId
func (h *BulkOrderHandler) BySupplier(c *fiber.Ctx) error {
	return c.JSON(h.state.BulkOrders(c.Params("supplierId")))
}

// Create POST /api/bulk-orders (supplier)
func (h *BulkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.BulkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	userID := GetUserID(c)
	if in.SupplierID != "" && in.SupplierID != userID {
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "You can only publish your own bulk orders")
	}
	if msg := checkBulk(in); msg != "" {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", msg)
	}
	b := h.state.AddBulkOrder(entity.BulkOrder{
		SupplierName: strings.TrimSpace(in.SupplierName),
		Pincode:      strings.TrimSpace(in.Pincode),
		ProductName:  strings.TrimSpace(in.ProductName),
		Quantity:     in.Quantity,
		Price:        in.Price,
		SupplierID:   userID,
	})
	h.log.Info().Str("bulk_order_id", b.ID).Int("quantity", b.Quantity).Msg("lote creado")
	return c.Status(fiber.StatusCreated).JSON(b)
}

// Update PUT /api/bulk-orders/:id (dueño)
func (h *BulkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.BulkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if msg := checkBulk(in); msg != "" {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", msg)
	}
	b, err := h.state.UpdateBulkOrder(c.Params("id"), GetUserID(c), func(b *entity.BulkOrder) {
		if s := strings.TrimSpace(in.SupplierName); s != "" {
			b.SupplierName = s
		}
		if s := strings.TrimSpace(in.Pincode); s != "" {
			b.Pincode = s
		}
		b.ProductName = strings.TrimSpace(in.ProductName)
		b.Quantity = in.Quantity
		b.Price = in.Price
	})
	if err != nil {
		return ownershipFailed(c, err, "bulk order")
	}
	return c.JSON(b)
}

// Delete DELETE /api/bulk-orders/:id (dueño)
func (h *BulkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.state.DeleteBulkOrder(c.Params("id"), GetUserID(c)); err != nil {
		return ownershipFailed(c, err, "bulk order")
	}
	return c.JSON(dto.StatusResponse{Message: "Bulk order deleted"})
}

func checkBulk(in dto.BulkOrderRequest) string {
	switch {
	case in.Quantity < entity.MinBulkOrderQuantity:
		return "Minimum quantity must be " + strconv.Itoa(entity.MinBulkOrderQuantity) + " kg"
	case strings.TrimSpace(in.ProductName) == "":
		return "productName is required"
	case !in.Price.IsPositive():
		return "price must be greater than 0"
	}
	return ""
}
