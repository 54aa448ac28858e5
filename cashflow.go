package projector

import "math"

// CashFlow is a recurring amount (income, spending or tax deduction) that
// changes every period.
//
// Each Step multiplies the value by GrowthRate, capped at Saturation. A
// CashFlow with a lifespan drops to zero for good once that many periods have
// been stepped.
type CashFlow struct {
	Value      float64
	GrowthRate float64
	Saturation float64 // upper bound for Value, +Inf when uncapped

	lifespan int  // periods remaining
	bounded  bool // false means the flow never expires
}

// NewCashFlow returns an uncapped, never expiring cash flow starting at value
// and growing by growthRate each period (1 means constant).
func NewCashFlow(value, growthRate float64) *CashFlow {
	return &CashFlow{
		Value:      value,
		GrowthRate: growthRate,
		Saturation: math.Inf(1),
	}
}

// WithCap sets the saturation value and returns the cash flow for chaining.
func (c *CashFlow) WithCap(saturation float64) *CashFlow {
	c.Saturation = saturation
	return c
}

// WithLifespan makes the cash flow expire after n periods and returns it for
// chaining.
func (c *CashFlow) WithLifespan(n int) *CashFlow {
	c.lifespan = n
	c.bounded = true
	return c
}

// Lifespan returns the number of periods remaining, and false if the cash flow
// never expires.
func (c *CashFlow) Lifespan() (int, bool) { return c.lifespan, c.bounded }

// Expired reports whether the cash flow has been pinned to zero.
func (c *CashFlow) Expired() bool { return c.bounded && c.lifespan <= 0 }

// Step advances the cash flow by one period.
func (c *CashFlow) Step() {
	if c.bounded {
		c.lifespan--
		if c.lifespan <= 0 {
			c.Value = 0
			return
		}
	}
	c.Value = math.Min(c.Value*c.GrowthRate, c.Saturation)
}

// Clone returns an independent copy of c.
func (c *CashFlow) Clone() *CashFlow {
	d := *c
	return &d
}

// sumCashFlows adds up the current value of every flow, in order.
func sumCashFlows(flows []*CashFlow) float64 {
	total := 0.0
	for _, f := range flows {
		total += f.Value
	}
	return total
}
