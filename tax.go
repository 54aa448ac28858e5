package projector

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBrackets is returned when a tax table cannot be used.
var ErrInvalidBrackets = errors.New("invalid tax brackets")

// Bracket taxes the part of an income between Lower and Upper at Rate.
type Bracket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"` // math.Inf(1) for the top bracket
	Rate  float64 `json:"rate"`
}

// TaxBrackets is a progressive income tax table, in ascending order.
type TaxBrackets []Bracket

// DefaultBrackets is the reference federal table (single filer). Boundaries
// are kept verbatim, including the one dollar gap above 160725.
var DefaultBrackets = TaxBrackets{
	{0, 9700, 0.1},
	{9700, 39475, 0.12},
	{39475, 84200, 0.22},
	{84200, 160725, 0.24},
	{160726, 204100, 0.32},
	{204100, 306750, 0.35},
	{306750, math.Inf(1), 0.37},
}

// IncomeTax returns the tax owed on amount using DefaultBrackets.
func IncomeTax(amount float64) float64 { return DefaultBrackets.IncomeTax(amount) }

// IncomeTax returns the tax owed on a taxable amount: each bracket taxes the
// part of amount that falls between its bounds.
func (b TaxBrackets) IncomeTax(amount float64) float64 {
	tax := 0.0
	for _, br := range b {
		tax += math.Min(math.Max(amount-br.Lower, 0), br.Upper-br.Lower) * br.Rate
	}
	return tax
}

// MarginalRate returns the rate applied to the next dollar earned above
// amount. It is 0 in a gap between brackets, where income is not taxed, like
// the dollar above 160725 in DefaultBrackets.
func (b TaxBrackets) MarginalRate(amount float64) float64 {
	rate := 0.0
	for _, br := range b {
		if amount >= br.Lower && amount < br.Upper {
			rate = br.Rate
		}
	}
	return rate
}

// EffectiveRate returns the share of amount paid in tax, 0 for non positive
// amounts.
func (b TaxBrackets) EffectiveRate(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return b.IncomeTax(amount) / amount
}

// Validate checks that brackets are ascending, do not overlap and that the
// last one is unbounded. Gaps between brackets are allowed.
func (b TaxBrackets) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidBrackets)
	}
	var errs error
	for i, br := range b {
		if br.Upper < br.Lower {
			errs = errors.Join(errs, fmt.Errorf("%w: bracket %d upper %v below lower %v", ErrInvalidBrackets, i, br.Upper, br.Lower))
		}
		if br.Rate < 0 {
			errs = errors.Join(errs, fmt.Errorf("%w: bracket %d has a negative rate %v", ErrInvalidBrackets, i, br.Rate))
		}
		if i > 0 && br.Lower < b[i-1].Upper {
			errs = errors.Join(errs, fmt.Errorf("%w: bracket %d starts at %v, before the previous upper %v", ErrInvalidBrackets, i, br.Lower, b[i-1].Upper))
		}
	}
	if last := b[len(b)-1]; !math.IsInf(last.Upper, 1) {
		errs = errors.Join(errs, fmt.Errorf("%w: top bracket must be unbounded, got %v", ErrInvalidBrackets, last.Upper))
	}
	return errs
}
