package projector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amounts are printed without currency symbol: 1,234,567.89
var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

// minorUnits rounds value to fraction digits and returns it in minor units.
// Rounding works on the exact binary value of the float, ties to even.
func minorUnits(value float64, fraction int) decimal.Decimal {
	rounded := strconv.FormatFloat(value, 'f', fraction, 64)
	return decimal.RequireFromString(rounded).Shift(int32(fraction))
}

// format formats value with f. Amounts too large for int64 minor units are
// grouped the same way from their decimal digits.
func format(f *money.Formatter, value float64) string {
	units := minorUnits(value, f.Fraction)
	if n := units.BigInt(); n.IsInt64() {
		return f.Format(n.Int64())
	}
	return formatLarge(f, units)
}

func formatLarge(f *money.Formatter, units decimal.Decimal) string {
	sa := units.Abs().BigInt().String()
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if units.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// nonFinite returns the representation of infinite or NaN amounts, which
// cannot be turned into minor units.
func nonFinite(value float64) (string, bool) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'f', -1, 64), true
	}
	return "", false
}

// FormatAmount formats value with thousands separators and 2 decimals.
func FormatAmount(value float64) string {
	if s, ok := nonFinite(value); ok {
		return s
	}
	return format(amountFormatter, value)
}

// FormatMoney formats value in the given ISO currency, using the currency's own
// symbol, separators and fraction digits. An empty or unknown code falls back
// to FormatAmount.
func FormatMoney(value float64, currency string) string {
	if currency == "" {
		return FormatAmount(value)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return FormatAmount(value)
	}
	if s, ok := nonFinite(value); ok {
		return s
	}
	return format(cur.Formatter(), value)
}

// FormatWorth returns a fixed width line: the label left justified in 20
// characters (truncated if longer) and the amount right justified in 15.
func FormatWorth(label string, value float64) string {
	return fmt.Sprintf("%-20.20s%15s", label, FormatAmount(value))
}
