package agent

import (
	"context"
	"fmt"

	"github.com/etnz/projector"
	"google.golang.org/genai"
)

// IncomeTax computes the tax owed on a taxable income.
type IncomeTax struct {
	Brackets projector.TaxBrackets
}

func (IncomeTax) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "income_tax",
		Description: "Computes the progressive income tax owed on a yearly taxable income, with the marginal and effective rates.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount": {Type: genai.TypeNumber, Description: "Taxable income, after deductions."},
			},
			Required: []string{"amount"},
		},
	}
}

func (f IncomeTax) Call(_ context.Context, args map[string]any) (map[string]any, error) {
	amount, err := number(args, "amount")
	if err != nil {
		return nil, err
	}
	b := f.Brackets
	if len(b) == 0 {
		b = projector.DefaultBrackets
	}
	return map[string]any{
		"tax":            b.IncomeTax(amount),
		"marginal_rate":  b.MarginalRate(amount),
		"effective_rate": b.EffectiveRate(amount),
	}, nil
}

// LoanPayment computes the yearly payment of an amortized loan.
type LoanPayment struct{}

func (LoanPayment) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "loan_payment",
		Description: "Computes the constant yearly payment and the total interest of an amortized loan.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount": {Type: genai.TypeNumber, Description: "Borrowed amount."},
				"rate":   {Type: genai.TypeNumber, Description: "Yearly interest rate, 0.0575 for 5.75%."},
				"length": {Type: genai.TypeInteger, Description: "Number of yearly payments."},
			},
			Required: []string{"amount", "rate", "length"},
		},
	}
}

func (LoanPayment) Call(_ context.Context, args map[string]any) (map[string]any, error) {
	amount, err := number(args, "amount")
	if err != nil {
		return nil, err
	}
	rate, err := number(args, "rate")
	if err != nil {
		return nil, err
	}
	length, err := number(args, "length")
	if err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, fmt.Errorf("length must be at least 1, got %v", length)
	}
	l := projector.NewLoan(amount, rate, int(length))
	return map[string]any{
		"payment":        l.Payment,
		"total_payment":  l.TotalPayment(),
		"total_interest": l.TotalInterest(),
	}, nil
}

// NetWorthAt reads a year of a projection.
type NetWorthAt struct {
	Projection *projector.Projection
}

func (NetWorthAt) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "net_worth_at",
		Description: "Returns the projected figures at the start of a given year: liquid, assets, net worth, deflated net worth, income, tax and spending.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"year": {Type: genai.TypeInteger, Description: "Years from now, 0 being today."},
			},
			Required: []string{"year"},
		},
	}
}

func (f NetWorthAt) Call(_ context.Context, args map[string]any) (map[string]any, error) {
	year, err := number(args, "year")
	if err != nil {
		return nil, err
	}
	s, ok := f.Projection.At(int(year))
	if !ok {
		return nil, fmt.Errorf("year %v is outside the projection [0, %d]", year, f.Projection.Final.Year)
	}
	return map[string]any{
		"year":      s.Year,
		"liquid":    s.Liquid,
		"assets":    s.Assets,
		"net_worth": s.Total,
		"deflated":  s.Deflated,
		"income":    s.Income,
		"tax":       s.Tax,
		"spending":  s.Spending,
	}, nil
}

// Milestone finds when the deflated net worth reaches a target.
type Milestone struct {
	Projection *projector.Projection
}

func (Milestone) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "milestone",
		Description: "Returns the first year the net worth, in today's money, reaches a target amount.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"target": {Type: genai.TypeNumber, Description: "Target net worth in today's money."},
			},
			Required: []string{"target"},
		},
	}
}

func (f Milestone) Call(_ context.Context, args map[string]any) (map[string]any, error) {
	target, err := number(args, "target")
	if err != nil {
		return nil, err
	}
	s, ok := f.Projection.FirstYearAbove(target)
	if !ok {
		return map[string]any{"reached": false, "horizon": f.Projection.Final.Year}, nil
	}
	return map[string]any{"reached": true, "year": s.Year, "deflated": s.Deflated}, nil
}
