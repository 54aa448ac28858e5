package projector

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeScenario(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeScenario(&buf, DefaultScenario()); err != nil {
		t.Fatalf("EncodeScenario() error = %v", err)
	}

	got, err := DecodeScenario(&buf)
	if err != nil {
		t.Fatalf("DecodeScenario() error = %v", err)
	}

	want, _ := DefaultScenario().Run()
	proj, err := got.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	assert.Equal(t, want.Final.Total, proj.Final.Total, "a decoded scenario must project like the original")
	assert.Equal(t, "Buy a home", got.Events[0].Name)
}

func TestDecodeScenario_Minimal(t *testing.T) {
	const doc = `{
  "initial_value": 1000,
  "investment_return_rate": 1.05,
  "inflation_rate": 1.02,
  "incomes": [{"value": 50000, "growth_rate": 1.03, "saturation": 80000}],
  "spendings": [{"value": 30000}],
  "events": [{"year": 2, "name": "car", "loans": [{"amount": 20000, "rate": 0.05, "length": 5}]}]
}`
	s, err := DecodeScenario(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeScenario() error = %v", err)
	}
	assert.Equal(t, DefaultYears, s.Horizon())

	p := s.Portfolio()
	assert.Equal(t, 80000.0, p.Incomes[0].Saturation)
	assert.Equal(t, 1.0, p.Spendings[0].GrowthRate)
	if _, bounded := p.Spendings[0].Lifespan(); bounded {
		t.Error("spending without lifespan must never expire")
	}
}

func TestDecodeScenario_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"syntax", `{"initial_value": }`, false},
		{"unknown field", `{"inflation_rate": 1, "investment_return_rate": 1, "salary": 3}`, false},
		{"invalid", `{"inflation_rate": 0, "investment_return_rate": 1}`, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeScenario(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatal("DecodeScenario() succeeded, want an error")
			}
			if got := errors.Is(err, ErrInvalidScenario); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidScenario) = %v, want %v (err = %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestBracketJSON(t *testing.T) {
	var buf bytes.Buffer
	s := &Scenario{InvestmentReturnRate: 1, InflationRate: 1, TaxBrackets: DefaultBrackets}
	if err := EncodeScenario(&buf, s); err != nil {
		t.Fatalf("EncodeScenario() error = %v", err)
	}
	if !strings.Contains(buf.String(), "306750") {
		t.Errorf("encoded brackets miss the top bracket:\n%s", buf.String())
	}

	got, err := DecodeScenario(&buf)
	if err != nil {
		t.Fatalf("DecodeScenario() error = %v", err)
	}
	if len(got.TaxBrackets) != len(DefaultBrackets) {
		t.Fatalf("decoded %d brackets, want %d", len(got.TaxBrackets), len(DefaultBrackets))
	}
	for i, b := range got.TaxBrackets {
		if b != DefaultBrackets[i] {
			t.Errorf("bracket %d = %v, want %v", i, b, DefaultBrackets[i])
		}
	}
	if !math.IsInf(got.TaxBrackets[len(got.TaxBrackets)-1].Upper, 1) {
		t.Error("top bracket lost its unbounded upper limit")
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := EncodeScenario(f, DefaultScenario()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}
	assert.Equal(t, DefaultScenario().Name, s.Name)

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadScenario(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestEncodeProjection(t *testing.T) {
	proj, err := (&Scenario{InitialValue: 10, InvestmentReturnRate: 1, InflationRate: 1, Years: 2}).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeProjection(&buf, proj); err != nil {
		t.Fatalf("EncodeProjection() error = %v", err)
	}
	for _, key := range []string{`"id"`, `"snapshots"`, `"final"`, `"deflated"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("projection JSON misses %s:\n%s", key, buf.String())
		}
	}
}
