// Package ordering coloca pedidos de vendors y lista los pedidos recibidos por un proveedor.
package ordering

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// Mensajes mostrados al usuario.
const (
	MsgPlaced        = "Order placed successfully!"
	MsgPlaceFailed   = "Failed to place order."
	MsgPaymentMode   = "Please choose a valid payment mode."
	MsgProductNeeded = "Please choose a product."
)

// Request pedido tal como lo arma la vista de productos del proveedor.
// SupplierID vacío usa FallbackSupplierID (el proveedor de la ruta).
type Request struct {
	ProductID          string
	SupplierID         string
	FallbackSupplierID string
	Quantity           string
	PaymentMode        entity.PaymentMode
}

// Service caso de uso de pedidos.
type Service struct {
	api ports.OrderAPI
	log *logger.Logger
}

// NewService construye el servicio.
func NewService(api ports.OrderAPI, log *logger.Logger) *Service {
	return &Service{api: api, log: log.Component("ordering")}
}

// Place valida y envía una única petición; no reintenta.
func (s *Service) Place(ctx context.Context, req Request) (*entity.Order, error) {
	in, err := buildRequest(req)
	if err != nil {
		return nil, err
	}
	order, err := s.api.PlaceOrder(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", in.ProductID).Msg("pedido rechazado")
		return nil, fmt.Errorf("ordering: colocar pedido: %w", err)
	}
	s.log.Info().Str("order_id", order.ID).Str("product_id", in.ProductID).Msg("pedido colocado")
	return order, nil
}

// SupplierOrders pedidos recibidos por el proveedor.
func (s *Service) SupplierOrders(ctx context.Context, supplierID string) ([]entity.SupplierOrder, error) {
	if supplierID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	list, err := s.api.SupplierOrders(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("ordering: pedidos del proveedor: %w", err)
	}
	return list, nil
}

// FailureMessage texto para el usuario cuando Place falla.
func FailureMessage(err error) string {
	return domain.UserMessage(err, MsgPlaceFailed)
}

func buildRequest(req Request) (dto.PlaceOrderRequest, error) {
	errs := domain.FieldErrors{}
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		errs.Add(domain.FieldProduct, MsgProductNeeded)
	}
	supplierID := strings.TrimSpace(req.SupplierID)
	if supplierID == "" {
		supplierID = strings.TrimSpace(req.FallbackSupplierID)
	}
	if supplierID == "" {
		errs.Add(domain.FieldSupplier, "Supplier is required.")
	}
	qty, err := domain.ParsePositive(domain.FieldQuantity, req.Quantity)
	errs.Merge(err)

	mode := req.PaymentMode
	if mode == "" {
		mode = entity.PaymentCashOnDelivery
	}
	if !mode.Valid() {
		errs.Add(domain.FieldPaymentMode, MsgPaymentMode)
	}
	if err := errs.Err(); err != nil {
		return dto.PlaceOrderRequest{}, err
	}
	return dto.PlaceOrderRequest{
		ProductID:   productID,
		Quantity:    qty,
		SupplierID:  supplierID,
		PaymentMode: string(mode),
	}, nil
}
