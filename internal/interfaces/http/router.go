package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	State *MemoryMarketplace
	JWT   JWTConfig
	Log   *logger.Logger
}

// Router registra las rutas del marketplace bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log.Component("stub")
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWT.Secret)
	vendorOnly := RequireRole(string(entity.RoleVendor))
	supplierOnly := RequireRole(string(entity.RoleSupplier))

	// Auth (público)
	authHandler := NewAuthHandler(deps.State, deps.JWT, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/vendor/signup", authHandler.SignupVendor)
	authGroup.Post("/supplier/signup", authHandler.SignupSupplier)

	// Products: lectura pública, escritura del proveedor dueño
	productHandler := NewProductHandler(deps.State, log)
	api.Get("/products", productHandler.List)
	api.Get("/supplier/:id/products", productHandler.BySupplier)
	api.Post("/products", protected, supplierOnly, productHandler.Create)
	api.Put("/products/:id", protected, supplierOnly, productHandler.Update)
	api.Delete("/products/:id", protected, supplierOnly, productHandler.Delete)

	// Bulk orders (protegido)
	bulkHandler := NewBulkOrderHandler(deps.State, log)
	api.Get("/bulk-orders", protected, bulkHandler.List)
	api.Get("/bulk-orders/:supplierId", protected, bulkHandler.BySupplier)
	api.Post("/bulk-orders", protected, supplierOnly, bulkHandler.Create)
	api.Put("/bulk-orders/:id", protected, supplierOnly, bulkHandler.Update)
	api.Delete("/bulk-orders/:id", protected, supplierOnly, bulkHandler.Delete)

	// Orders, búsqueda y panel del vendor
	orderHandler := NewOrderHandler(deps.State, log)
	api.Post("/orders", protected, vendorOnly, orderHandler.Place)
	api.Get("/orders/supplier/:supplierId", protected, supplierOnly, orderHandler.ForSupplier)
	api.Get("/suppliers/search", orderHandler.SearchSuppliers)
	api.Get("/vendor/dashboard", protected, vendorOnly, orderHandler.VendorDashboard)
}
