package catalogcsv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parsePrice parses an Indonesian-formatted price string into whole rupiah.
// Format examples: "2.500" -> 2500, "Rp 2.500" -> 2500, "3000" -> 3000.
// Dots group thousands; a comma starts a fractional part, which is rounded
// away since catalog prices are whole rupiah.
func parsePrice(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "Rp.")
	clean = strings.TrimPrefix(clean, "Rp")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	if clean == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Round(0).IntPart(), nil
}
