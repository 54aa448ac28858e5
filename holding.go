package projector

import "math"

// Holding is anything owned whose value moves over time: assets, and loans
// seen as negative assets.
type Holding interface {
	// Value returns the current value of the holding.
	Value() float64
	// AssetGrowth returns how much the value changes during the next Step.
	// It must be read before Step to describe the current period.
	AssetGrowth() float64
	// Step advances the holding by one period.
	Step()
}

// Asset is a held item of value (a home, an investment) that grows by a fixed
// multiplicative rate each period.
type Asset struct {
	value      float64
	growthRate float64
}

// NewAsset returns an Asset worth value, growing by growthRate each period.
func NewAsset(value, growthRate float64) *Asset {
	return &Asset{value: value, growthRate: growthRate}
}

func (a *Asset) Value() float64       { return a.value }
func (a *Asset) GrowthRate() float64  { return a.growthRate }
func (a *Asset) AssetGrowth() float64 { return a.value * (a.growthRate - 1) }
func (a *Asset) Step()                { a.value = a.value * a.growthRate }

// Loan is a liability paid back by a fixed annuity. Its value is the negative
// sum of the payments still due (nominal, not discounted), so it starts at
// -Payment*Length and reaches exactly 0 once paid off.
//
// A Length of 0 is not supported: the payment is then undefined (NaN or Inf).
type Loan struct {
	Principal float64 // amount borrowed
	Rate      float64 // interest rate per period
	Payment   float64 // fixed payment per period
	Length    int     // number of payments

	value float64
}

// NewLoan returns a Loan of amount borrowed at rate per period over length
// periods. The payment follows the standard annuity formula
// rate*amount/(1-(1+rate)^-length).
func NewLoan(amount, rate float64, length int) *Loan {
	payment := rate * amount / (1 - math.Pow(1+rate, -float64(length)))
	return &Loan{
		Principal: amount,
		Rate:      rate,
		Payment:   payment,
		Length:    length,
		value:     -payment * float64(length),
	}
}

func (l *Loan) Value() float64 { return l.value }

// AssetGrowth returns the payment due this period, 0 once the loan is settled.
func (l *Loan) AssetGrowth() float64 {
	if l.value < 0 {
		return l.Payment
	}
	return 0
}

// Step applies one payment. Overpayment is discarded: the value never goes
// above 0.
func (l *Loan) Step() { l.value = math.Min(l.value+l.Payment, 0) }

// Spending returns the stream of payments, to be added to a portfolio's
// spendings.
func (l *Loan) Spending() *CashFlow {
	return NewCashFlow(l.Payment, 1).WithLifespan(l.Length)
}

// TaxDeduction returns the deductible interest stream. The interest part is
// held constant at Payment - Principal/Length for every period.
func (l *Loan) TaxDeduction() *CashFlow {
	return NewCashFlow(l.Payment-l.Principal/float64(l.Length), 1).WithLifespan(l.Length)
}

// TotalPayment returns the sum of all payments.
func (l *Loan) TotalPayment() float64 { return l.Payment * float64(l.Length) }

// TotalInterest returns the cost of the loan: all payments minus the principal.
func (l *Loan) TotalInterest() float64 { return l.TotalPayment() - l.Principal }

// Installment is one row of an amortization schedule.
type Installment struct {
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64 // outstanding principal after the payment
}

// Amortization returns the true amortization schedule of the loan, where the
// interest part shrinks as the principal is paid back.
//
// It is informational: the projection itself keeps the simplified constant
// interest of TaxDeduction.
func (l *Loan) Amortization() []Installment {
	schedule := make([]Installment, 0, max(l.Length, 0))
	balance := l.Principal
	for period := 1; period <= l.Length; period++ {
		interest := balance * l.Rate
		principal := l.Payment - interest
		balance -= principal
		if period == l.Length {
			// absorb the rounding residue on the last payment
			balance = 0
		}
		schedule = append(schedule, Installment{
			Period:    period,
			Payment:   l.Payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return schedule
}
