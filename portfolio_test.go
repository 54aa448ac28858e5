package projector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referencePortfolio returns the starting point of the default scenario.
func referencePortfolio() *Portfolio {
	p := NewPortfolio(40000, 1.1, 1.0325)
	p.Incomes = []*CashFlow{NewCashFlow(162778, 1.04)}
	p.Spendings = []*CashFlow{NewCashFlow(60000, 1.04)}
	p.TaxDeductions = []*CashFlow{NewCashFlow(19500, 1.025)}
	return p
}

func TestPortfolio_Aggregates(t *testing.T) {
	p := referencePortfolio()
	p.Assets = []Holding{NewAsset(1000000, 1.0816), NewLoan(1000000, 0.0575, 10)}

	assert.Equal(t, 162778.0, p.TotalIncome())
	assert.Equal(t, 19500.0, p.TaxDeduction())
	assert.Equal(t, 60000.0, p.Spending())
	assert.InDelta(t, 4000, p.InvestmentReturn(), 1e-9)
	assert.InDelta(t, 28561.22, p.Taxes(), 1e-6)
	assert.InDelta(t, 1000000-1342632.6713460772, p.AssetValue(), 1e-6)
	assert.InDelta(t, 81600+134263.2671346077, p.AssetGrowth(), 1e-6)
	assert.InDelta(t, 40000+1000000-1342632.6713460772, p.TotalValue(), 1e-6)
}

func TestPortfolio_StepOnce(t *testing.T) {
	p := referencePortfolio()
	p.Step()

	// flows are stepped before the liquid value accumulates them
	assert.InDelta(t, 169289.12, p.TotalIncome(), 1e-6)
	assert.InDelta(t, 19987.5, p.TaxDeduction(), 1e-6)
	assert.InDelta(t, 62400, p.Spending(), 1e-6)

	tax := 970 + 3573 + 9839.5 + (169289.12-19987.5-84200)*0.24
	want := 40000 + 169289.12 - tax + 4000 - 800 - 62400
	assert.InDelta(t, want, p.Liquid, 1e-6)
	assert.InDelta(t, 120082.23119999998, p.Liquid, 1e-6)
	assert.InDelta(t, 1.0325, p.Inflation.Value, 1e-12)
	assert.InDelta(t, 116302.4030992736, p.DeflatedValue(), 1e-6)
}

func TestPortfolio_StepThreeTimes(t *testing.T) {
	p := referencePortfolio()
	for i := 0; i < 3; i++ {
		p.Step()
	}
	assert.InDelta(t, 308510.55734607996, p.Liquid, 1e-6)
	assert.InDelta(t, 1.1007030781249998, p.Inflation.Value, 1e-12)
	assert.InDelta(t, 280284.9955426802, p.DeflatedValue(), 1e-6)
}

func TestPortfolio_NoOp(t *testing.T) {
	p := NewPortfolio(12345.67, 1, 1.02)
	for i := 0; i < 100; i++ {
		p.Step()
		if p.Liquid != 12345.67 {
			t.Fatalf("Liquid = %v after %d steps, want 12345.67", p.Liquid, i+1)
		}
	}
	if p.TotalValue() != 12345.67 {
		t.Errorf("TotalValue() = %v, want 12345.67", p.TotalValue())
	}
}

func TestPortfolio_FreshLists(t *testing.T) {
	a := NewPortfolio(0, 1, 1)
	b := NewPortfolio(0, 1, 1)
	a.Incomes = append(a.Incomes, NewCashFlow(1, 1))
	a.Assets = append(a.Assets, NewAsset(1, 1))
	if len(b.Incomes) != 0 || len(b.Assets) != 0 {
		t.Errorf("portfolios share their lists: b has %d incomes and %d assets", len(b.Incomes), len(b.Assets))
	}
}

func TestPortfolio_CapitalGainsRate(t *testing.T) {
	p := NewPortfolio(1000, 1.1, 1)
	p.CapitalGainsRate = 0
	p.Step()
	assert.InDelta(t, 1100, p.Liquid, 1e-9)

	p = NewPortfolio(1000, 1.1, 1)
	p.Step()
	assert.InDelta(t, 1080, p.Liquid, 1e-9)
}

func TestPortfolio_MutationBetweenSteps(t *testing.T) {
	p := NewPortfolio(0, 1, 1)
	p.Brackets = TaxBrackets{}
	p.Incomes = []*CashFlow{NewCashFlow(100, 1)}
	p.Step()
	assert.Equal(t, 100.0, p.Liquid)

	p.Incomes = []*CashFlow{NewCashFlow(10, 1)}
	p.Spendings = append(p.Spendings, NewCashFlow(4, 1))
	p.Step()
	assert.Equal(t, 106.0, p.Liquid)
}

func TestPortfolio_String(t *testing.T) {
	p := NewPortfolio(1500, 1, 1)
	p.Assets = append(p.Assets, NewAsset(1000000, 1))
	got := p.String()
	want := strings.Join([]string{
		"Liquid                     1,500.00",
		"Assets                 1,000,000.00",
		"Net worth              1,001,500.00",
		"Deflated net worth     1,001,500.00",
	}, "\n")
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
