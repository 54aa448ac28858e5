package projector

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncomeTax(t *testing.T) {
	testCases := []struct {
		amount float64
		want   float64
	}{
		{0, 0},
		{-5000, 0},
		{5000, 500},
		{9700, 970},
		// 970 + 29775*12% + 10525*22%
		{50000, 6858.5},
		// 970 + 3573 + 9839.5 + 59078*24%
		{143278, 28561.22},
		{1000000, 339058.18},
	}
	for _, tc := range testCases {
		assert.InDelta(t, tc.want, IncomeTax(tc.amount), 1e-6, "IncomeTax(%v)", tc.amount)
	}
}

func TestIncomeTax_ManualBracketSum(t *testing.T) {
	// a full bracket by bracket computation, including the one dollar gap
	amount := 250000.0
	want := 9700*0.1 +
		(39475-9700)*0.12 +
		(84200-39475)*0.22 +
		(160725-84200)*0.24 +
		(204100-160726)*0.32 +
		(amount-204100)*0.35
	assert.InDelta(t, want, IncomeTax(amount), 1e-6)
}

func TestTaxBrackets_Custom(t *testing.T) {
	flat := TaxBrackets{{0, math.Inf(1), 0.3}}
	if got := flat.IncomeTax(1000); got != 300 {
		t.Errorf("IncomeTax(1000) = %v, want 300", got)
	}
	var empty TaxBrackets
	if got := empty.IncomeTax(1000); got != 0 {
		t.Errorf("empty IncomeTax(1000) = %v, want 0", got)
	}
}

func TestTaxBrackets_Rates(t *testing.T) {
	testCases := []struct {
		amount   float64
		marginal float64
	}{
		{0, 0.1},
		{9699, 0.1},
		{9700, 0.12},
		{50000, 0.22},
		{160724, 0.24},
		{160725.5, 0},
		{160726, 0.32},
		{200000, 0.32},
		{1000000, 0.37},
	}
	for _, tc := range testCases {
		if got := DefaultBrackets.MarginalRate(tc.amount); got != tc.marginal {
			t.Errorf("MarginalRate(%v) = %v, want %v", tc.amount, got, tc.marginal)
		}
	}

	assert.InDelta(t, 6858.5/50000, DefaultBrackets.EffectiveRate(50000), 1e-12)
	assert.Equal(t, 0.0, DefaultBrackets.EffectiveRate(0))
}

func TestTaxBrackets_Validate(t *testing.T) {
	if err := DefaultBrackets.Validate(); err != nil {
		t.Errorf("DefaultBrackets.Validate() = %v, want nil", err)
	}

	testCases := []struct {
		name     string
		brackets TaxBrackets
	}{
		{"empty", TaxBrackets{}},
		{"bounded top", TaxBrackets{{0, 100, 0.1}}},
		{"overlap", TaxBrackets{{0, 100, 0.1}, {50, math.Inf(1), 0.2}}},
		{"inverted", TaxBrackets{{100, 0, 0.1}, {100, math.Inf(1), 0.2}}},
		{"negative rate", TaxBrackets{{0, math.Inf(1), -0.1}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.brackets.Validate()
			if !errors.Is(err, ErrInvalidBrackets) {
				t.Errorf("Validate() = %v, want ErrInvalidBrackets", err)
			}
		})
	}
}
