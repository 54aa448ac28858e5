package projector

import "time"

// Snapshot is the state of a portfolio at the start of a year, before the
// year's events and step. Flow figures (income, tax, spending) are those of
// the period that has just been stepped into.
type Snapshot struct {
	Year             int     `json:"year"`
	Liquid           float64 `json:"liquid"`
	Assets           float64 `json:"assets"`
	Total            float64 `json:"total"`
	Deflated         float64 `json:"deflated"`
	Inflation        float64 `json:"inflation"`
	Income           float64 `json:"income"`
	TaxDeduction     float64 `json:"tax_deduction"`
	Tax              float64 `json:"tax"`
	Spending         float64 `json:"spending"`
	InvestmentReturn float64 `json:"investment_return"`
	AssetGrowth      float64 `json:"asset_growth"`
}

// Snap reads every aggregate of p without changing it.
func Snap(year int, p *Portfolio) Snapshot {
	return Snapshot{
		Year:             year,
		Liquid:           p.Liquid,
		Assets:           p.AssetValue(),
		Total:            p.TotalValue(),
		Deflated:         p.DeflatedValue(),
		Inflation:        p.Inflation.Value,
		Income:           p.TotalIncome(),
		TaxDeduction:     p.TaxDeduction(),
		Tax:              p.Taxes(),
		Spending:         p.Spending(),
		InvestmentReturn: p.InvestmentReturn(),
		AssetGrowth:      p.AssetGrowth(),
	}
}

// Projection is the outcome of running a Scenario.
type Projection struct {
	ID          string        `json:"id"`
	Scenario    string        `json:"scenario,omitempty"`
	Currency    string        `json:"currency,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration_ns"`
	ReportEvery int           `json:"report_every"`
	Snapshots   []Snapshot    `json:"snapshots"` // one per year, from year 0
	Final       Snapshot      `json:"final"`     // after the last step
}

// Reported returns the snapshots printed in a report: every n-th year,
// excluding year 0.
func (p *Projection) Reported(every int) []Snapshot {
	if every <= 0 {
		every = p.ReportEvery
	}
	var res []Snapshot
	for _, s := range p.Snapshots {
		if s.Year > 0 && s.Year%every == 0 {
			res = append(res, s)
		}
	}
	return res
}

// At returns the snapshot for year, including the final one.
func (p *Projection) At(year int) (Snapshot, bool) {
	if year == p.Final.Year {
		return p.Final, true
	}
	if year < 0 || year >= len(p.Snapshots) {
		return Snapshot{}, false
	}
	return p.Snapshots[year], true
}

// FirstYearAbove returns the first year the deflated net worth reaches
// target, and false if it never does within the horizon.
func (p *Projection) FirstYearAbove(target float64) (Snapshot, bool) {
	for _, s := range p.Snapshots {
		if s.Deflated >= target {
			return s, true
		}
	}
	if p.Final.Deflated >= target {
		return p.Final, true
	}
	return Snapshot{}, false
}
