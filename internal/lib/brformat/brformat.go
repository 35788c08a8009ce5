// Package brformat renders dates and amounts with the Brazilian Portuguese
// conventions used in reports: dd/MM/yyyy dates and #.##0,00 numbers. The
// rules are fixed and do not depend on the process locale.
package brformat

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout        = "02/01/2006"
	thousandSeparator = '.'
	decimalSeparator  = ','
	fractionDigits    = 2
)

// Date formats t as dd/MM/yyyy.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Money formats amount with period-grouped thousands, a comma decimal
// separator and exactly two fraction digits. The amount is rounded half-even
// to two places first.
func Money(amount decimal.Decimal) string {
	fixed := amount.RoundBank(fractionDigits).StringFixed(fractionDigits)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.Grow(len(fixed) + len(integer)/3 + 1)
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(thousandSeparator)
		}
		b.WriteRune(digit)
	}
	b.WriteByte(decimalSeparator)
	b.WriteString(fraction)

	return b.String()
}
