package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseStatementAmount parses a statement amount string into cents. Banks
// format amounts inconsistently, so currency symbols and thousands commas are
// stripped and a parenthesized value is treated as negative.
// Examples: "1,234.56" -> 123456, "₹500.00" -> 50000, "(250.00)" -> -25000.
func parseStatementAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}

	clean = strings.TrimPrefix(clean, "₹")
	clean = strings.TrimPrefix(clean, "Rs.")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if negative {
		cents = -cents
	}

	return cents, nil
}
