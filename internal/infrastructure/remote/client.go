// Package remote adaptador HTTP hacia el servicio del marketplace.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa MarketplaceAPI.
var _ ports.MarketplaceAPI = (*Client)(nil)

// Límite de lectura de cuerpos de respuesta.
const maxBody = 4 << 20

// TokenSource origen del bearer token (el session.Store del proceso).
type TokenSource interface {
	Token() string
}

// Client implementa MarketplaceAPI con net/http. No reintenta ni aplica backoff.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el adaptador. baseURL incluye el prefijo /api.
// httpClient nil usa uno sin timeout; la cancelación llega por el contexto.
func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
		log:        log.Component("remote"),
	}
}

// errorBody cuerpo de error del servicio; algunos endpoints usan "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do ejecuta la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote: serializar %s: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("remote: crear request %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &domain.TransportError{Op: op, Err: ctx.Err()}
		}
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Int("bytes", len(raw)).Msg("respuesta remota")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		detail := eb.Detail
		if detail == "" {
			detail = eb.Message
		}
		return &domain.RemoteError{Status: resp.StatusCode, Detail: detail}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("remote: decodificar %s: %w: %v", op, domain.ErrRemote, err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignupVendor(ctx context.Context, in dto.VendorSignupRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/vendor/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignupSupplier(ctx context.Context, in dto.SupplierSignupRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/supplier/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SupplierProducts(ctx context.Context, supplierID string) (*entity.SupplierStorefront, error) {
	var out entity.SupplierStorefront
	if err := c.do(ctx, http.MethodGet, "/supplier/"+url.PathEscape(supplierID)+"/products", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListBulkOrders(ctx context.Context) ([]entity.BulkOrder, error) {
	var out []entity.BulkOrder
	if err := c.do(ctx, http.MethodGet, "/bulk-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSupplierBulkOrders(ctx context.Context, supplierID string) ([]entity.BulkOrder, error) {
	var out []entity.BulkOrder
	if err := c.do(ctx, http.MethodGet, "/bulk-orders/"+url.PathEscape(supplierID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBulkOrder(ctx context.Context, in dto.BulkOrderRequest) (*entity.BulkOrder, error) {
	var out entity.BulkOrder
	if err := c.do(ctx, http.MethodPost, "/bulk-orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBulkOrder(ctx context.Context, id string, in dto.BulkOrderRequest) (*entity.BulkOrder, error) {
	var out entity.BulkOrder
	if err := c.do(ctx, http.MethodPut, "/bulk-orders/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBulkOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bulk-orders/"+url.PathEscape(id), nil, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := c.do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SupplierOrders(ctx context.Context, supplierID string) ([]entity.SupplierOrder, error) {
	var out []entity.SupplierOrder
	if err := c.do(ctx, http.MethodGet, "/orders/supplier/"+url.PathEscape(supplierID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchSuppliers(ctx context.Context, pincode string) ([]entity.Supplier, error) {
	var out []entity.Supplier
	q := url.Values{"pincode": {pincode}}
	if err := c.do(ctx, http.MethodGet, "/suppliers/search?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VendorDashboard(ctx context.Context) (*entity.VendorDashboard, error) {
	var out entity.VendorDashboard
	if err := c.do(ctx, http.MethodGet, "/vendor/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
