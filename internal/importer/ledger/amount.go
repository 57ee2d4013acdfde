package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a decimal amount string into cents. Thousands
// separators and a leading currency symbol are tolerated:
// "$1,234.56" -> 123456, "-588.74" -> -58874.
func parseAmount(s string) (int64, error) {
	clean := strings.TrimPrefix(s, "$")
	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
