// Package pdf genera el extracto de pedidos recibidos por un proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre comercial + pincode │ Extracto + fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Tel / Email                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Cantidad | Forma de pago          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: pedidos / kg por forma de pago                     │
//	│  FOOTER: QR a la vitrina pública                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

var _ ports.OrderStatementRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa OrderStatementRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	storefrontURL func(supplierID string) string
	now           func() time.Time
	printer       *message.Printer
}

// NewMarotoPDFGenerator construye el generador. storefrontURL arma el enlace del QR;
// nil omite el QR.
func NewMarotoPDFGenerator(storefrontURL func(supplierID string) string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{
		storefrontURL: storefrontURL,
		now:           time.Now,
		printer:       message.NewPrinter(language.English),
	}
}

// RenderOrderStatement genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderOrderStatement(
	_ context.Context,
	supplier entity.User,
	orders []entity.SupplierOrder,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bulk Buy Buddy - Orders", true).
		WithAuthor(supplier.DisplayName(), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(supplier, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(orders) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No orders yet.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range g.tableDetailRows(orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(orders))

	if g.storefrontURL != nil && supplier.ID != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(footerRow(g.storefrontURL(supplier.ID)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre comercial + pincode (izq) y título + fecha (der).
func headerRow(supplier entity.User, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(supplier.DisplayName(), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pincode: "+nonEmpty(supplier.Pincode, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDER STATEMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Date: "+now.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func contactRow(supplier entity.User) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Phone: %s   |   Email: %s",
				nonEmpty(supplier.Phone, "-"),
				nonEmpty(supplier.Email, "-"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de pedidos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 3, align.Left),
		h("Product", 4, align.Left),
		h("Quantity (kg)", 2, align.Right),
		h("Payment", 3, align.Right),
	)
}

// tableDetailRows: una fila por pedido.
func (g *MarotoPDFGenerator) tableDetailRows(orders []entity.SupplierOrder) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		date := "-"
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Local().Format("02 Jan 2006 15:04")
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(o.ProductName(), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.kg(o.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(string(o.PaymentMode), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: pedidos y kg por forma de pago.
func (g *MarotoPDFGenerator) totalsRow(orders []entity.SupplierOrder) core.Row {
	t := Summarize(orders)
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Orders:"),
			label(string(entity.PaymentCashOnDelivery)+":"),
			label(string(entity.PaymentUPI)+":"),
		),
		col.New(3).Add(
			value(g.printer.Sprintf("%d", t.Orders)),
			value(g.kg(t.KgByMode[entity.PaymentCashOnDelivery])+" kg"),
			value(g.kg(t.KgByMode[entity.PaymentUPI])+" kg"),
		),
	)
}

// footerRow: QR con el enlace a la vitrina pública del proveedor.
func footerRow(url string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(url, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Scan to browse this supplier's products.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(url, props.Text{Size: 7, Top: 12, Left: 3, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// Totals resumen del extracto.
type Totals struct {
	Orders   int
	KgByMode map[entity.PaymentMode]decimal.Decimal
}

// Summarize cuenta pedidos y suma kg por forma de pago.
func Summarize(orders []entity.SupplierOrder) Totals {
	t := Totals{Orders: len(orders), KgByMode: map[entity.PaymentMode]decimal.Decimal{}}
	for _, o := range orders {
		t.KgByMode[o.PaymentMode] = t.KgByMode[o.PaymentMode].Add(o.Quantity)
	}
	return t
}

// kg formatea con separador de miles: "1250" → "1,250", "1250.5" → "1,250.50".
func (g *MarotoPDFGenerator) kg(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return g.printer.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("%.2f", f)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
