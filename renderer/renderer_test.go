package renderer

import (
	"io"
	"strings"
	"testing"

	"github.com/etnz/projector"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings returns the "level text" of every heading in a markdown document.
func headings(t *testing.T, doc string) []string {
	t.Helper()
	source := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var res []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(source))
			}
			res = append(res, strings.Repeat("#", h.Level)+" "+b.String())
		}
		return ast.WalkContinue, nil
	})
	return res
}

func run(t *testing.T, s *projector.Scenario) *projector.Projection {
	t.Helper()
	proj, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return proj
}

func TestConsole(t *testing.T) {
	proj := run(t, projector.DefaultScenario())

	var b strings.Builder
	Console(&b, proj, 0)
	got := b.String()

	want := strings.Join([]string{
		"",
		"# 10 years from now",
		"",
		"Liquid                 1,216,498.63",
		"Assets                 1,063,979.15",
		"Net worth              2,280,477.78",
		"Deflated net worth     1,656,247.52",
		"",
	}, "\n")
	if !strings.HasPrefix(got, want) {
		t.Errorf("Console() starts with\n%s\nwant\n%s", got[:min(len(got), len(want))], want)
	}
	if n := strings.Count(got, "years from now"); n != 6 {
		t.Errorf("Console() printed %d snapshots, want 6", n)
	}
	if !strings.Contains(got, "# 60 years from now") || strings.Contains(got, "# 70 years from now") {
		t.Errorf("Console() must report years 10 to 60:\n%s", got)
	}
}

func TestMilestone(t *testing.T) {
	proj := run(t, projector.DefaultScenario())
	testCases := []struct {
		target float64
		want   string
	}{
		{1000000, "Net worth reaches $1,000,000.00 (in year 0 money) in 8 years: $1,034,692.74.\n"},
		{10, "Net worth is already above $10.00.\n"},
		{1e12, "Net worth stays below $1,000,000,000,000.00 (in year 0 money) for the next 70 years.\n"},
	}
	for _, tc := range testCases {
		var b strings.Builder
		Milestone(&b, proj, tc.target)
		if b.String() != tc.want {
			t.Errorf("Milestone(%v) = %q, want %q", tc.target, b.String(), tc.want)
		}
	}
}

func TestProjectionMarkdown(t *testing.T) {
	s := projector.DefaultScenario()
	proj := run(t, s)
	doc := ProjectionMarkdown(s, proj, ReportOptions{Target: 1000000})

	want := []string{"# Buy a home in four years", "## Assumptions", "## Events", "## Net worth"}
	got := headings(t, doc)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", got, want)
	}

	for _, line := range []string{
		"| Investment return | 10.00% |",
		"| Inflation | 3.25% |",
		"| Capital gains tax | 20.00% |",
		"| Incomes | Salary $162,778.00 +4.00% |",
		"- Year 4: Buy a home, borrowing $1,000,000.00 over 10 years at 5.75% ($134,263.27 a year)",
		"| 10 | $1,216,498.63 | $1,063,979.15 | $2,280,477.78 | $1,656,247.52 |",
		"Net worth reaches $1,000,000.00 (in year 0 money) in 8 years",
	} {
		if !strings.Contains(doc, line) {
			t.Errorf("report misses %q:\n%s", line, doc)
		}
	}
	// two headers, seven assumptions, years 10 to 60 and the final year
	if n := strings.Count(doc, "\n| "); n != 7+1+7+1 {
		t.Errorf("report has %d table rows, want 16:\n%s", n, doc)
	}
}

func TestProjectionMarkdown_NoEvents(t *testing.T) {
	s := &projector.Scenario{InitialValue: 100, InvestmentReturnRate: 1.05, InflationRate: 1.02, Years: 20}
	proj := run(t, s)
	doc := ProjectionMarkdown(s, proj, ReportOptions{Every: 5})

	want := []string{"# Net worth projection", "## Assumptions", "## Net worth"}
	got := headings(t, doc)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", got, want)
	}
	if !strings.Contains(doc, "reported every 5 years") {
		t.Errorf("report misses the interval:\n%s", doc)
	}
	if !strings.Contains(doc, "| Incomes | - |") {
		t.Errorf("report misses the empty incomes:\n%s", doc)
	}
}

func TestLoanMarkdown(t *testing.T) {
	doc := LoanMarkdown(projector.NewLoan(1000000, 0.0575, 10), "USD")

	want := []string{"# Loan of $1,000,000.00 over 10 periods at 5.75%", "## Amortization"}
	got := headings(t, doc)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", got, want)
	}
	for _, line := range []string{
		"| Payment per period | $134,263.27 |",
		"| Total interest | $342,632.67 |",
		"| 1 | $134,263.27 | $57,500.00 | $76,763.27 | $923,236.73 |",
		"| 10 | $134,263.27 |",
	} {
		if !strings.Contains(doc, line) {
			t.Errorf("loan report misses %q:\n%s", line, doc)
		}
	}
}

func TestTaxMarkdown(t *testing.T) {
	doc := TaxMarkdown(projector.DefaultBrackets, []float64{9700, 50000}, "")
	for _, line := range []string{
		"| 9,700.00 | 970.00 | 12.00% | 10.00% |",
		"| 50,000.00 | 6,858.50 | 22.00% | 13.72% |",
		"| 160,726.00 | 204,100.00 | 32.00% |",
		"| 306,750.00 | and above | 37.00% |",
	} {
		if !strings.Contains(doc, line) {
			t.Errorf("tax report misses %q:\n%s", line, doc)
		}
	}

	doc = TaxMarkdown(projector.DefaultBrackets, nil, "")
	if strings.Contains(doc, "Taxable income") {
		t.Errorf("tax report without amounts must not list amounts:\n%s", doc)
	}
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "skipped")
		return false
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "kept")
		return true
	})
	if b.String() != "kept" {
		t.Errorf("ConditionalBlock wrote %q, want %q", b.String(), "kept")
	}
}
