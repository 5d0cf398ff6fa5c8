// Package reports derives summaries from an appointment list and exports them.
package reports

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DeletedService labels appointments whose service no longer exists.
	DeletedService = "Service (deleted)"
	// UnknownCustomer labels appointments without a usable client name.
	UnknownCustomer = "Unknown"
)

// Table is the common export shape of every summary.
type Table struct {
	Title    string     `json:"title"`
	Filename string     `json:"filename"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	Footer   string     `json:"footer,omitempty"`
}

// FormatMoney renders an amount with a currency symbol and thousands
// separators, dropping a zero fraction.
func FormatMoney(symbol string, d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	if frac == "00" {
		frac = ""
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := symbol + b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
