package view

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const opTimeout = 5 * time.Second

// FormatRupiah formats whole rupiah with thousands dots, e.g. 62500 -> "Rp 62.500".
func FormatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder

	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(c)
	}

	if negative {
		return "-Rp " + b.String()
	}

	return "Rp " + b.String()
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// OpCtx returns a context with a standard timeout for store operations.
func OpCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
