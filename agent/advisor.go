// Package agent asks a Gemini model to read a projection back to the user in
// plain language.
package agent

import (
	"context"

	"github.com/etnz/projector"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is given.
const DefaultModel = "gemini-2.5-flash"

const instruction = `You are a personal finance advisor. The user ran a long term net worth
projection, whose report follows. Explain it in plain language: what drives the
growth, which events matter, and when the milestones are reached. Amounts
"in year 0 money" are deflated by the projected inflation.

Use the functions to compute figures that are not in the report instead of
estimating them. Never invent numbers. Keep the answer short and answer in
markdown.

`

// NewAdvisor returns an expert that knows the report of proj and can query
// it, or compute taxes and loans, through function calls.
func NewAdvisor(model string, proj *projector.Projection, brackets projector.TaxBrackets, report string) *Expert {
	if model == "" {
		model = DefaultModel
	}
	functions := []Function{
		IncomeTax{Brackets: brackets},
		LoanPayment{},
		NetWorthAt{Projection: proj},
		Milestone{Projection: proj},
	}
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools:             []*genai.Tool{{FunctionDeclarations: NewDeclarations(functions...)}},
			SystemInstruction: genai.NewContentFromText(instruction+report, genai.RoleUser),
		},
		Library: NewLibrary(functions...),
	}
}

// DefaultQuestion is asked when the user has no specific question.
const DefaultQuestion = "Explain this projection to me."

// Explain starts e on client and asks it question.
func Explain(ctx context.Context, client *genai.Client, e *Expert, question string) (string, error) {
	if err := e.Start(ctx, client); err != nil {
		return "", err
	}
	if question == "" {
		question = DefaultQuestion
	}
	return e.Ask(ctx, genai.NewPartFromText(question))
}
