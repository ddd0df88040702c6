package main

import (
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// amount número con separador de miles; los enteros sin decimales.
func (e *environment) amount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return e.printer.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return e.printer.Sprintf("%.2f", f)
}

func (e *environment) rupees(d decimal.Decimal) string {
	return "₹" + e.amount(d)
}

func shortDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02 Jan 2006")
}
