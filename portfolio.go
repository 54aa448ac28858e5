package projector

import (
	"fmt"
	"strings"
)

// DefaultCapitalGainsRate is the flat tax rate applied to investment returns.
const DefaultCapitalGainsRate = 0.2

// Portfolio aggregates cash flows, holdings and a liquid cash balance, and
// advances them together one period at a time.
//
// Incomes, Spendings, TaxDeductions and Assets can be replaced or appended to
// between two calls to Step; this is how life events (buying a home, a new
// job) are expressed.
type Portfolio struct {
	Liquid               float64   // uninvested cash
	InvestmentReturnRate float64   // multiplicative return on Liquid, per period
	Inflation            *CashFlow // cumulative price index, 1 at period 0

	Incomes       []*CashFlow
	Spendings     []*CashFlow
	TaxDeductions []*CashFlow
	Assets        []Holding

	Brackets         TaxBrackets // income tax table
	CapitalGainsRate float64     // flat tax on investment returns
}

// NewPortfolio returns an empty portfolio with initial liquid value, taxed with
// DefaultBrackets and DefaultCapitalGainsRate.
func NewPortfolio(initial, investmentReturnRate, inflationRate float64) *Portfolio {
	return &Portfolio{
		Liquid:               initial,
		InvestmentReturnRate: investmentReturnRate,
		Inflation:            NewCashFlow(1, inflationRate),
		Incomes:              []*CashFlow{},
		Spendings:            []*CashFlow{},
		TaxDeductions:        []*CashFlow{},
		Assets:               []Holding{},
		Brackets:             DefaultBrackets,
		CapitalGainsRate:     DefaultCapitalGainsRate,
	}
}

// TotalIncome returns the sum of all incomes for the current period.
func (p *Portfolio) TotalIncome() float64 { return sumCashFlows(p.Incomes) }

// TaxDeduction returns the sum of all tax deductions for the current period.
func (p *Portfolio) TaxDeduction() float64 { return sumCashFlows(p.TaxDeductions) }

// Spending returns the sum of all spendings for the current period.
func (p *Portfolio) Spending() float64 { return sumCashFlows(p.Spendings) }

// InvestmentReturn returns the return earned by the liquid value this period.
func (p *Portfolio) InvestmentReturn() float64 {
	return p.Liquid * (p.InvestmentReturnRate - 1)
}

// Taxes returns the income tax owed on the current incomes net of deductions.
func (p *Portfolio) Taxes() float64 {
	return p.Brackets.IncomeTax(p.TotalIncome() - p.TaxDeduction())
}

// AssetValue returns the sum of all holding values.
func (p *Portfolio) AssetValue() float64 {
	total := 0.0
	for _, a := range p.Assets {
		total += a.Value()
	}
	return total
}

// AssetGrowth returns the sum of all holding growths for the current period.
func (p *Portfolio) AssetGrowth() float64 {
	total := 0.0
	for _, a := range p.Assets {
		total += a.AssetGrowth()
	}
	return total
}

// Step advances the portfolio by one period.
//
// Every flow and holding is stepped first (incomes, tax deductions, spendings,
// assets, then inflation), then the liquid value accumulates the new period:
// income, minus income tax, plus the investment return net of capital gains
// tax, minus spending.
func (p *Portfolio) Step() {
	for _, income := range p.Incomes {
		income.Step()
	}
	for _, deduction := range p.TaxDeductions {
		deduction.Step()
	}
	for _, spending := range p.Spendings {
		spending.Step()
	}
	for _, asset := range p.Assets {
		asset.Step()
	}
	p.Inflation.Step()

	p.Liquid = p.Liquid +
		p.TotalIncome() -
		p.Taxes() +
		p.InvestmentReturn() -
		p.InvestmentReturn()*p.CapitalGainsRate -
		p.Spending()
}

// TotalValue returns the net worth: liquid value plus holdings.
func (p *Portfolio) TotalValue() float64 { return p.Liquid + p.AssetValue() }

// DeflatedValue returns TotalValue in period 0 money.
func (p *Portfolio) DeflatedValue() float64 { return p.TotalValue() / p.Inflation.Value }

// String returns the headline figures, one FormatWorth line each.
func (p *Portfolio) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, FormatWorth("Liquid", p.Liquid))
	fmt.Fprintln(&b, FormatWorth("Assets", p.AssetValue()))
	fmt.Fprintln(&b, FormatWorth("Net worth", p.TotalValue()))
	fmt.Fprint(&b, FormatWorth("Deflated net worth", p.DeflatedValue()))
	return b.String()
}
