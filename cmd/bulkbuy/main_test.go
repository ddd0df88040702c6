package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/bulkbuy/internal/interfaces/http"
	"github.com/jhoicas/bulkbuy/pkg/config"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// device simula una instalación de la CLI: cada run es un proceso nuevo que comparte
// el almacenamiento local y el marketplace.
type device struct {
	t   *testing.T
	kv  *storage.MemoryStore
	hc  *http.Client
	cfg *config.Config
}

func newMarketplace(t *testing.T) *http.Client {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		State: apphttp.NewMemoryMarketplace(bcrypt.MinCost),
		JWT:   apphttp.JWTConfig{Secret: "cli-secret", ExpMinutes: 60, Issuer: "test"},
		Log:   logger.Nop(),
	})
	return &http.Client{Transport: apphttp.NewTransport(app)}
}

func newDevice(t *testing.T, hc *http.Client) *device {
	return &device{
		t:   t,
		kv:  storage.NewMemoryStore(nil),
		hc:  hc,
		cfg: &config.Config{API: config.APIConfig{BackendURL: "http://stub.local"}},
	}
}

func (d *device) runWithInput(input string, args ...string) (string, error) {
	d.t.Helper()
	var out bytes.Buffer
	env := &environment{
		cfg:        d.cfg,
		log:        logger.Nop(),
		kv:         d.kv,
		httpClient: d.hc,
		in:         strings.NewReader(input),
		out:        &out,
	}
	cmd := newRootCmd(env)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (d *device) run(args ...string) (string, error) {
	d.t.Helper()
	return d.runWithInput("", args...)
}

func (d *device) mustRun(args ...string) string {
	d.t.Helper()
	out, err := d.run(args...)
	require.NoError(d.t, err, out)
	return out
}

var idPattern = regexp.MustCompile(`\(([0-9a-f-]{36})\)`)

func createdID(t *testing.T, out string) string {
	t.Helper()
	m := idPattern.FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	return m[1]
}

var whoamiPattern = regexp.MustCompile(`ID:\s+(\S+)`)

func whoamiID(t *testing.T, d *device) string {
	t.Helper()
	m := whoamiPattern.FindStringSubmatch(d.mustRun("whoami"))
	require.Len(t, m, 2)
	return m[1]
}

func signupSupplier(d *device, phone string) {
	d.t.Helper()
	d.mustRun("signup", "--role", "supplier", "--business-name", "Green Farms",
		"--email", phone+"@farm.in", "--phone", phone, "--pincode", "560001", "--password", "Abc123")
}

func TestCLI_ProveedorPublicaYListaProductos(t *testing.T) {
	d := newDevice(t, newMarketplace(t))
	signupSupplier(d, "9000000001")

	out := d.mustRun("products", "add", "--name", "Onion", "--quantity", "1200", "--price", "18.5")
	assert.Contains(t, out, "Product added: Onion")

	out = d.mustRun("products", "list")
	assert.Contains(t, out, "Onion")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "₹18.50")

	out = d.mustRun("whoami")
	assert.Contains(t, out, "Green Farms (supplier)")
}

func TestCLI_SinSesionRedirigeALogin(t *testing.T) {
	d := newDevice(t, newMarketplace(t))

	_, err := d.run("products", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Contains(t, err.Error(), "bulkbuy login")

	_, err = d.run("dashboard")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCLI_VendorNoVePedidosDeProveedor(t *testing.T) {
	d := newDevice(t, newMarketplace(t))
	d.mustRun("signup", "--role", "vendor", "--name", "Ravi", "--phone", "9876543210", "--password", "Abc123")

	_, err := d.run("orders")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = d.run("products", "add", "--name", "Onion", "--quantity", "1", "--price", "1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCLI_LoginConSesionActiva(t *testing.T) {
	d := newDevice(t, newMarketplace(t))
	d.mustRun("signup", "--role", "vendor", "--name", "Ravi", "--phone", "9876543210", "--password", "Abc123")

	_, err := d.run("login", "--id", "9876543210", "--password", "Abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already logged in as Ravi")

	d.mustRun("logout")
	out := d.mustRun("login", "--id", "9876543210", "--password", "Abc123")
	assert.Contains(t, out, "Welcome back, Ravi!")
}

func TestCLI_LoginFallidoMuestraDetalle(t *testing.T) {
	d := newDevice(t, newMarketplace(t))

	_, err := d.run("login", "--id", "9876543210", "--password", "Abc123")
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())

	out := d.mustRun("whoami")
	assert.Contains(t, out, "Not logged in.")
}

func TestCLI_BorrarBulkRequiereConfirmacion(t *testing.T) {
	d := newDevice(t, newMarketplace(t))
	signupSupplier(d, "9000000002")

	out := d.mustRun("bulk", "create", "--product", "Rice", "--quantity", "50", "--price", "40")
	id := createdID(t, out)

	out, err := d.runWithInput("n\n", "bulk", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, d.mustRun("bulk", "list"), "Rice")

	out = d.mustRun("bulk", "delete", id, "--yes")
	assert.Contains(t, out, "Bulk order deleted.")
	assert.Contains(t, d.mustRun("bulk", "list"), "No bulk orders yet.")
}

func TestCLI_BulkMinimoCincuentaKg(t *testing.T) {
	d := newDevice(t, newMarketplace(t))
	signupSupplier(d, "9000000003")

	_, err := d.run("bulk", "create", "--product", "Rice", "--quantity", "49", "--price", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Minimum quantity must be 50 kg.")
}

func TestCLI_VendorBuscaYPide_ProveedorGeneraExtracto(t *testing.T) {
	hc := newMarketplace(t)
	supplier := newDevice(t, hc)
	vendor := newDevice(t, hc)

	signupSupplier(supplier, "9000000004")
	productID := createdID(t, supplier.mustRun("products", "add", "--name", "Tomato", "--quantity", "500", "--price", "30"))
	supplierID := whoamiID(t, supplier)

	vendor.mustRun("signup", "--role", "vendor", "--name", "Ravi", "--phone", "9876543210", "--password", "Abc123")

	out := vendor.mustRun("suppliers", "search", "999999")
	assert.Contains(t, out, "No suppliers found for this pincode.")

	out = vendor.mustRun("suppliers", "products", supplierID)
	assert.Contains(t, out, "Tomato")

	out = vendor.mustRun("order", "place", "--supplier", supplierID, "--product", productID, "--quantity", "25", "--payment", "upi")
	assert.Contains(t, out, "Order placed successfully!")
	assert.Contains(t, out, "UPI Payment")

	_, err := vendor.run("order", "place", "--supplier", supplierID, "--product", productID, "--quantity", "5", "--payment", "card")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	out = vendor.mustRun("dashboard")
	assert.Contains(t, out, "Orders placed: 1")

	pdfPath := filepath.Join(t.TempDir(), "orders.pdf")
	out = supplier.mustRun("orders", "--pdf", pdfPath)
	assert.Contains(t, out, "Tomato")
	assert.Contains(t, out, "Statement written to")
	doc, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
