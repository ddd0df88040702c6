package remote_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/internal/infrastructure/remote"
	apphttp "github.com/jhoicas/bulkbuy/internal/interfaces/http"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

type tokenHolder struct{ tok string }

func (h *tokenHolder) Token() string { return h.tok }

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// newStubClient levanta el marketplace en memoria y devuelve un constructor de clientes
// que comparten ese estado, cada uno con su propio token.
func newStubClient(t *testing.T) func() (*remote.Client, *tokenHolder) {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		State: apphttp.NewMemoryMarketplace(bcrypt.MinCost),
		JWT:   apphttp.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
		Log:   logger.Nop(),
	})
	httpClient := &http.Client{Transport: apphttp.NewTransport(app)}
	return func() (*remote.Client, *tokenHolder) {
		tokens := &tokenHolder{}
		return remote.NewClient("http://stub.local/api", tokens, httpClient, logger.Nop()), tokens
	}
}

func signupSupplier(t *testing.T, c *remote.Client, tokens *tokenHolder, phone, pincode string) entity.User {
	t.Helper()
	resp, err := c.SignupSupplier(context.Background(), dto.SupplierSignupRequest{
		BusinessName: "Farm " + phone[len(phone)-2:], Email: phone + "@example.com",
		Phone: phone, Pincode: pincode, Password: "Abc123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	tokens.tok = resp.AccessToken
	return resp.User
}

func signupVendor(t *testing.T, c *remote.Client, tokens *tokenHolder, phone string) entity.User {
	t.Helper()
	resp, err := c.SignupVendor(context.Background(), dto.VendorSignupRequest{Name: "Ravi", Phone: phone, Password: "Abc123"})
	require.NoError(t, err)
	tokens.tok = resp.AccessToken
	return resp.User
}

func TestFlujoCompleto_ProveedorYVendor(t *testing.T) {
	ctx := context.Background()
	newClient := newStubClient(t)

	sc, st := newClient()
	supplier := signupSupplier(t, sc, st, "9000000001", "560001")
	assert.Equal(t, entity.RoleSupplier, supplier.Role)

	p, err := sc.CreateProduct(ctx, dto.CreateProductRequest{
		Name: "Potato", Quantity: decimal.NewFromInt(100), Price: decimal.RequireFromString("22.5"), SupplierID: supplier.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, supplier.ID, p.SupplierID)

	updated, err := sc.UpdateProduct(ctx, p.ID, dto.UpdateProductRequest{Quantity: decimal.NewFromInt(80), Price: decimal.NewFromInt(25)})
	require.NoError(t, err)
	assert.Equal(t, "Potato", updated.Name, "el nombre no cambia")
	assert.True(t, decimal.NewFromInt(80).Equal(updated.Quantity))

	store, err := sc.SupplierProducts(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, supplier.DisplayName(), store.SupplierName)
	require.Len(t, store.Products, 1)

	vc, vt := newClient()
	signupVendor(t, vc, vt, "9000000009")

	found, err := vc.SearchSuppliers(ctx, "560001")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, supplier.ID, found[0].ID)

	none, err := vc.SearchSuppliers(ctx, "110001")
	require.NoError(t, err)
	assert.Empty(t, none)

	order, err := vc.PlaceOrder(ctx, dto.PlaceOrderRequest{
		ProductID: p.ID, Quantity: decimal.NewFromInt(10), SupplierID: supplier.ID, PaymentMode: string(entity.PaymentUPI),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentUPI, order.PaymentMode)

	dash, err := vc.VendorDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", dash.VendorName)
	assert.Equal(t, 1, dash.TotalOrders)

	received, err := sc.SupplierOrders(ctx, supplier.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "Potato", received[0].ProductName())

	all, err := vc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, sc.DeleteProduct(ctx, p.ID))
	received, err = sc.SupplierOrders(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "N/A", received[0].ProductName(), "producto borrado")
}

func TestPropiedad_OtroProveedorRecibe403(t *testing.T) {
	ctx := context.Background()
	newClient := newStubClient(t)

	a, at := newClient()
	owner := signupSupplier(t, a, at, "9000000001", "560001")
	p, err := a.CreateProduct(ctx, dto.CreateProductRequest{Name: "Rice", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromInt(40), SupplierID: owner.ID})
	require.NoError(t, err)

	b, bt := newClient()
	intruder := signupSupplier(t, b, bt, "9000000002", "560001")

	_, err = b.UpdateProduct(ctx, p.ID, dto.UpdateProductRequest{Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Not authorized to modify this product", domain.UserMessage(err, "x"))

	assert.ErrorIs(t, b.DeleteProduct(ctx, p.ID), domain.ErrForbidden)

	_, err = b.SupplierOrders(ctx, owner.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = b.CreateProduct(ctx, dto.CreateProductRequest{Name: "X", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1), SupplierID: owner.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden, "no se publica a nombre de otro")

	list, err := b.SupplierProducts(ctx, intruder.ID)
	require.NoError(t, err)
	assert.Empty(t, list.Products)
}

func TestBulkOrders_MinimoTambienEnElServicio(t *testing.T) {
	ctx := context.Background()
	c, tok := newStubClient(t)()
	s := signupSupplier(t, c, tok, "9000000001", "560001")

	_, err := c.CreateBulkOrder(ctx, dto.BulkOrderRequest{ProductName: "Rice", Quantity: 49, Price: decimal.NewFromInt(30), SupplierID: s.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)

	b, err := c.CreateBulkOrder(ctx, dto.BulkOrderRequest{
		SupplierName: "Farm 01", Pincode: "560001", ProductName: "Rice", Quantity: 50, Price: decimal.NewFromInt(30), SupplierID: s.ID,
	})
	require.NoError(t, err)
	assert.False(t, b.CreatedAt.IsZero())

	b2, err := c.UpdateBulkOrder(ctx, b.ID, dto.BulkOrderRequest{ProductName: "Rice", Quantity: 70, Price: decimal.NewFromInt(28)})
	require.NoError(t, err)
	assert.Equal(t, 70, b2.Quantity)
	assert.Equal(t, "Farm 01", b2.SupplierName, "los campos vacíos se conservan")

	mine, err := c.ListSupplierBulkOrders(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := c.ListBulkOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, c.DeleteBulkOrder(ctx, b.ID))
	_, err = c.UpdateBulkOrder(ctx, b.ID, dto.BulkOrderRequest{ProductName: "Rice", Quantity: 70, Price: decimal.NewFromInt(28)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_YErroresDeAutenticacion(t *testing.T) {
	ctx := context.Background()
	newClient := newStubClient(t)
	c, tok := newClient()
	signupVendor(t, c, tok, "9000000009")

	resp, err := c.Login(ctx, dto.LoginRequest{Identifier: "9000000009", Password: "Abc123", Role: entity.RoleVendor})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = c.Login(ctx, dto.LoginRequest{Identifier: "9000000009", Password: "Wrong1", Role: entity.RoleVendor})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", domain.UserMessage(err, "Login failed"))

	_, err = c.Login(ctx, dto.LoginRequest{Identifier: "9000000009", Password: "Abc123", Role: entity.RoleSupplier})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el rol forma parte de la identidad")

	_, err = c.SignupVendor(ctx, dto.VendorSignupRequest{Name: "Otro", Phone: "9000000009", Password: "Abc123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	anon, _ := newClient()
	_, err = anon.VendorDashboard(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestErrores_TransporteYMensaje(t *testing.T) {
	ctx := context.Background()

	down := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	c := remote.NewClient("http://x/api", nil, down, logger.Nop())
	_, err := c.SearchSuppliers(ctx, "560001")
	assert.ErrorIs(t, err, domain.ErrTransport)
	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.Contains(t, te.Op, "/suppliers/search?pincode=560001")

	var gotAuth string
	legacy := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"message":"Quantity too low"}`)),
			Request:    r,
		}, nil
	})}
	c = remote.NewClient("http://x/api/", &tokenHolder{tok: "abc"}, legacy, logger.Nop())
	_, err = c.CreateBulkOrder(ctx, dto.BulkOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Quantity too low", domain.UserMessage(err, "x"))
	assert.Equal(t, "Bearer abc", gotAuth)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	c = remote.NewClient("http://x/api", nil, down, logger.Nop())
	_, err = c.ListProducts(cancelled)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
