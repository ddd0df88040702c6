package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePositive interpreta un valor numérico escrito por el usuario y exige que sea > 0.
// El error queda asociado al campo indicado.
func ParsePositive(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, FieldError(field, "Please enter a valid "+field+".")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, FieldError(field, "Please enter a valid "+field+".")
	}
	return d, nil
}
