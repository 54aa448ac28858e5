package projector

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidScenario is returned when a scenario cannot be run.
var ErrInvalidScenario = errors.New("invalid scenario")

const (
	// DefaultYears is the projection horizon when a scenario does not set one.
	DefaultYears = 70
	// DefaultReportEvery is the interval between reported snapshots.
	DefaultReportEvery = 10
)

// FlowSpec describes a CashFlow.
type FlowSpec struct {
	Label      string   `json:"label,omitempty"`
	Value      float64  `json:"value"`
	GrowthRate *float64 `json:"growth_rate,omitempty"` // defaults to 1
	Saturation *float64 `json:"saturation,omitempty"`  // defaults to uncapped
	Lifespan   *int     `json:"lifespan,omitempty"`    // defaults to never expiring
}

// Flow returns a new CashFlow described by f.
func (f FlowSpec) Flow() *CashFlow {
	c := NewCashFlow(f.Value, rateOrOne(f.GrowthRate))
	if f.Saturation != nil {
		c.WithCap(*f.Saturation)
	}
	if f.Lifespan != nil {
		c.WithLifespan(*f.Lifespan)
	}
	return c
}

// AssetSpec describes an Asset.
type AssetSpec struct {
	Label      string   `json:"label,omitempty"`
	Value      float64  `json:"value"`
	GrowthRate *float64 `json:"growth_rate,omitempty"` // defaults to 1
}

// Asset returns a new Asset described by a.
func (a AssetSpec) Asset() *Asset { return NewAsset(a.Value, rateOrOne(a.GrowthRate)) }

// LoanSpec describes a Loan.
type LoanSpec struct {
	Label  string  `json:"label,omitempty"`
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
	Length int     `json:"length"`
}

// Loan returns a new Loan described by l.
func (l LoanSpec) Loan() *Loan { return NewLoan(l.Amount, l.Rate, l.Length) }

// Event changes the portfolio at the start of a given year, before that
// year's step.
//
// SetIncomes and SetSpendings replace the current lists when not nil. The Add
// lists are appended. Each loan then appends its payment to the spendings,
// its interest to the tax deductions and itself to the assets.
type Event struct {
	Year             int         `json:"year"`
	Name             string      `json:"name,omitempty"`
	SetIncomes       []FlowSpec  `json:"set_incomes,omitempty"`
	SetSpendings     []FlowSpec  `json:"set_spendings,omitempty"`
	AddIncomes       []FlowSpec  `json:"add_incomes,omitempty"`
	AddSpendings     []FlowSpec  `json:"add_spendings,omitempty"`
	AddTaxDeductions []FlowSpec  `json:"add_tax_deductions,omitempty"`
	AddAssets        []AssetSpec `json:"add_assets,omitempty"`
	Loans            []LoanSpec  `json:"loans,omitempty"`
}

// Apply mutates p.
func (e Event) Apply(p *Portfolio) {
	if e.SetIncomes != nil {
		p.Incomes = flows(e.SetIncomes)
	}
	if e.SetSpendings != nil {
		p.Spendings = flows(e.SetSpendings)
	}
	p.Incomes = append(p.Incomes, flows(e.AddIncomes)...)
	p.Spendings = append(p.Spendings, flows(e.AddSpendings)...)
	p.TaxDeductions = append(p.TaxDeductions, flows(e.AddTaxDeductions)...)
	for _, a := range e.AddAssets {
		p.Assets = append(p.Assets, a.Asset())
	}
	for _, spec := range e.Loans {
		loan := spec.Loan()
		p.Spendings = append(p.Spendings, loan.Spending())
		p.TaxDeductions = append(p.TaxDeductions, loan.TaxDeduction())
		p.Assets = append(p.Assets, loan)
	}
}

// Scenario is a complete projection described as data: the initial portfolio
// and the events that change it over time.
type Scenario struct {
	Name                 string      `json:"name,omitempty"`
	Currency             string      `json:"currency,omitempty"`
	Years                int         `json:"years,omitempty"`
	ReportEvery          int         `json:"report_every,omitempty"`
	InitialValue         float64     `json:"initial_value"`
	InvestmentReturnRate float64     `json:"investment_return_rate"`
	InflationRate        float64     `json:"inflation_rate"`
	CapitalGainsRate     *float64    `json:"capital_gains_rate,omitempty"`
	TaxBrackets          TaxBrackets `json:"tax_brackets,omitempty"`
	Incomes              []FlowSpec  `json:"incomes,omitempty"`
	Spendings            []FlowSpec  `json:"spendings,omitempty"`
	TaxDeductions        []FlowSpec  `json:"tax_deductions,omitempty"`
	Assets               []AssetSpec `json:"assets,omitempty"`
	Loans                []LoanSpec  `json:"loans,omitempty"`
	Events               []Event     `json:"events,omitempty"`
}

// Horizon returns the number of periods to simulate.
func (s *Scenario) Horizon() int {
	if s.Years <= 0 {
		return DefaultYears
	}
	return s.Years
}

// Interval returns the number of periods between two reported snapshots.
func (s *Scenario) Interval() int {
	if s.ReportEvery <= 0 {
		return DefaultReportEvery
	}
	return s.ReportEvery
}

// Portfolio returns a new portfolio in the scenario's initial state. Initial
// loans are registered like event loans.
func (s *Scenario) Portfolio() *Portfolio {
	p := NewPortfolio(s.InitialValue, s.InvestmentReturnRate, s.InflationRate)
	if len(s.TaxBrackets) > 0 {
		p.Brackets = s.TaxBrackets
	}
	if s.CapitalGainsRate != nil {
		p.CapitalGainsRate = *s.CapitalGainsRate
	}
	Event{
		AddIncomes:       s.Incomes,
		AddSpendings:     s.Spendings,
		AddTaxDeductions: s.TaxDeductions,
		AddAssets:        s.Assets,
		Loans:            s.Loans,
	}.Apply(p)
	return p
}

// Validate reports every problem that would make the projection meaningless.
// The core arithmetic does not check its inputs, so this is the place where
// division by zero and similar inputs are caught.
func (s *Scenario) Validate() error {
	var errs error
	fail := func(format string, args ...any) {
		errs = errors.Join(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}
	if s.Years < 0 {
		fail("years must not be negative, got %d", s.Years)
	}
	if s.ReportEvery < 0 {
		fail("report_every must not be negative, got %d", s.ReportEvery)
	}
	if s.InflationRate <= 0 || !isFinite(s.InflationRate) {
		fail("inflation_rate must be a positive factor like 1.03, got %v", s.InflationRate)
	}
	if !isFinite(s.InvestmentReturnRate) || !isFinite(s.InitialValue) {
		fail("initial_value and investment_return_rate must be finite")
	}
	if len(s.TaxBrackets) > 0 {
		if err := s.TaxBrackets.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("%w: %w", ErrInvalidScenario, err))
		}
	}
	validateLoans := func(where string, loans []LoanSpec) {
		for i, l := range loans {
			if l.Length <= 0 {
				fail("%s loan %d: length must be positive, got %d", where, i, l.Length)
			}
		}
	}
	validateLoans("initial", s.Loans)
	for i, e := range s.Events {
		if e.Year < 0 {
			fail("event %d (%s): year must not be negative, got %d", i, e.Name, e.Year)
		}
		validateLoans(fmt.Sprintf("event %d", i), e.Loans)
	}
	return errs
}

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	logger zerolog.Logger
	now    func() time.Time
}

// WithLogger sets the logger used to trace events while running.
func WithLogger(l zerolog.Logger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// Run validates the scenario and simulates it over its horizon.
//
// For every year, the snapshot is taken first, then the year's events are
// applied, then the portfolio is stepped.
func (s *Scenario) Run(opts ...RunOption) (*Projection, error) {
	cfg := runConfig{logger: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := cfg.now()
	years := s.Horizon()
	byYear := make(map[int][]Event)
	for _, e := range s.Events {
		byYear[e.Year] = append(byYear[e.Year], e)
	}

	proj := &Projection{
		ID:          uuid.NewString(),
		Scenario:    s.Name,
		Currency:    s.Currency,
		ReportEvery: s.Interval(),
		Snapshots:   make([]Snapshot, 0, years),
	}
	p := s.Portfolio()
	for year := 0; year < years; year++ {
		proj.Snapshots = append(proj.Snapshots, Snap(year, p))
		for _, e := range byYear[year] {
			cfg.logger.Debug().Int("year", year).Str("event", e.Name).Msg("applying event")
			e.Apply(p)
		}
		p.Step()
	}
	proj.Final = Snap(years, p)
	proj.StartedAt = start.UTC()
	proj.Duration = cfg.now().Sub(start)

	cfg.logger.Debug().
		Str("id", proj.ID).
		Int("years", years).
		Float64("total", proj.Final.Total).
		Dur("duration", proj.Duration).
		Msg("projection completed")
	return proj, nil
}

// DefaultScenario returns the reference projection: a 70 year horizon with a
// home bought with a ten year loan at year 4.
func DefaultScenario() *Scenario {
	const casualSpendingIncrease = 1.04
	return &Scenario{
		Name:                 "Buy a home in four years",
		Currency:             "USD",
		Years:                DefaultYears,
		ReportEvery:          DefaultReportEvery,
		InitialValue:         40000,
		InvestmentReturnRate: 1.1,
		InflationRate:        1.0325,
		Incomes:              []FlowSpec{{Label: "Salary", Value: 162778, GrowthRate: ptr(1.04)}},
		Spendings:            []FlowSpec{{Label: "Living", Value: 60000, GrowthRate: ptr(casualSpendingIncrease)}},
		TaxDeductions:        []FlowSpec{{Label: "401(k)", Value: 19500, GrowthRate: ptr(1.025)}},
		Events: []Event{{
			Year: 4,
			Name: "Buy a home",
			SetIncomes: []FlowSpec{
				{Label: "Salary", Value: 184229, GrowthRate: ptr(1.19), Saturation: ptr(480661.0)},
				{Label: "Bonus", Value: 2400, GrowthRate: ptr(1.1022)},
			},
			SetSpendings: []FlowSpec{
				// no more rent
				{Label: "Living", Value: 40000, GrowthRate: ptr(casualSpendingIncrease)},
				{Label: "Property tax", Value: 10000, GrowthRate: ptr(1.0816)},
			},
			AddTaxDeductions: []FlowSpec{
				{Label: "Property tax", Value: 10000, GrowthRate: ptr(1.0816)},
			},
			AddAssets: []AssetSpec{{Label: "Home", Value: 1000000, GrowthRate: ptr(1.0816)}},
			Loans:     []LoanSpec{{Label: "Mortgage", Amount: 1000000, Rate: 0.0575, Length: 10}},
		}},
	}
}

func flows(specs []FlowSpec) []*CashFlow {
	res := make([]*CashFlow, 0, len(specs))
	for _, f := range specs {
		res = append(res, f.Flow())
	}
	return res
}

func rateOrOne(r *float64) float64 {
	if r == nil {
		return 1
	}
	return *r
}

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func ptr[T any](v T) *T { return &v }
