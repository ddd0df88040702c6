package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	state *MemoryMarketplace
	log   *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(state *MemoryMarketplace, log *logger.Logger) *ProductHandler {
	return &ProductHandler{state: state, log: log}
}

// List GET /api/products (público)
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.state.Products(""))
}

// BySupplier GET /api/supplier/:id/products (público)
func (h *ProductHandler) BySupplier(c *fiber.Ctx) error {
	id := c.Params("id")
	supplier, ok := h.state.User(id)
	if !ok || supplier.Role != entity.RoleSupplier {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Supplier not found")
	}
	return c.JSON(entity.SupplierStorefront{
		SupplierName: supplier.DisplayName(),
		Products:     h.state.Products(id),
	})
}

// Create POST /api/products (supplier)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	userID := GetUserID(c)
	if in.SupplierID != "" && in.SupplierID != userID {
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "You can only add products to your own catalog")
	}
	if strings.TrimSpace(in.Name) == "" || !in.Quantity.IsPositive() || !in.Price.IsPositive() {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "name, quantity > 0 and price > 0 are required")
	}
	p := h.state.AddProduct(entity.Product{
		Name:       strings.TrimSpace(in.Name),
		Quantity:   in.Quantity,
		Price:      in.Price,
		SupplierID: userID,
	})
	h.log.Info().Str("product_id", p.ID).Str("supplier_id", userID).Msg("producto creado")
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update PUT /api/products/:id (dueño)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if !in.Quantity.IsPositive() || !in.Price.IsPositive() {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "quantity and price must be greater than 0")
	}
	p, err := h.state.UpdateProduct(c.Params("id"), GetUserID(c), func(p *entity.Product) {
		p.Quantity = in.Quantity
		p.Price = in.Price
	})
	if err != nil {
		return ownershipFailed(c, err, "product")
	}
	return c.JSON(p)
}

// Delete DELETE /api/products/:id (dueño)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.state.DeleteProduct(c.Params("id"), GetUserID(c)); err != nil {
		return ownershipFailed(c, err, "product")
	}
	return c.JSON(dto.StatusResponse{Message: "Product deleted"})
}

// ownershipFailed traduce los errores de las operaciones sobre recursos con dueño.
func ownershipFailed(c *fiber.Ctx, err error, what string) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "Not authorized to modify this "+what)
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", strings.ToUpper(what[:1])+what[1:]+" not found")
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
