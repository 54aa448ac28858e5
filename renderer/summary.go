package renderer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/projector"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a full report: assumptions, life events,
// reported years and the optional milestone.
func ProjectionMarkdown(s *projector.Scenario, proj *projector.Projection, opts ReportOptions) string {
	var b strings.Builder
	cur := proj.Currency

	title := s.Name
	if title == "" {
		title = "Net worth projection"
	}
	doc := md.NewMarkdown(&b)
	doc.H1(title)
	doc.PlainTextf("Projection over %d years, reported every %d years.", s.Horizon(), every(proj, opts))
	doc.PlainText("")
	doc.H2("Assumptions")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header:    []string{"Assumption", "Value"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Initial liquid value", projector.FormatMoney(s.InitialValue, cur)},
			{"Investment return", projector.Rate(s.InvestmentReturnRate).String()},
			{"Inflation", projector.Rate(s.InflationRate).String()},
			{"Capital gains tax", projector.Percent(s.Portfolio().CapitalGainsRate).String()},
			{"Incomes", flowsSummary(s.Incomes, cur)},
			{"Spendings", flowsSummary(s.Spendings, cur)},
			{"Tax deductions", flowsSummary(s.TaxDeductions, cur)},
		},
	})
	doc.Build()

	ConditionalBlock(&b, func(w io.Writer) bool { return renderEvents(w, s.Events, cur) })

	var rows [][]string
	for _, snap := range proj.Reported(opts.Every) {
		rows = append(rows, snapshotRow(snap, cur))
	}
	rows = append(rows, snapshotRow(proj.Final, cur))

	doc = md.NewMarkdown(&b)
	doc.PlainText("")
	doc.H2("Net worth")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header:    []string{"Year", "Liquid", "Assets", "Net worth", "Deflated"},
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Rows:      rows,
	})
	doc.Build()

	if opts.Target > 0 {
		b.WriteString("\n")
		Milestone(&b, proj, opts.Target)
	}
	return b.String()
}

// renderEvents writes the list of life events, and reports whether there was
// any.
func renderEvents(w io.Writer, events []projector.Event, cur string) bool {
	if len(events) == 0 {
		return false
	}
	var items []string
	for _, e := range events {
		name := e.Name
		if name == "" {
			name = "Event"
		}
		item := fmt.Sprintf("Year %d: %s", e.Year, name)
		for _, l := range e.Loans {
			item += fmt.Sprintf(", borrowing %s over %d years at %s (%s a year)",
				projector.FormatMoney(l.Amount, cur), l.Length, projector.Percent(l.Rate), projector.FormatMoney(l.Loan().Payment, cur))
		}
		items = append(items, item)
	}
	doc := md.NewMarkdown(w)
	doc.PlainText("")
	doc.H2("Events")
	doc.PlainText("")
	doc.BulletList(items...)
	doc.PlainText("")
	doc.Build()
	return true
}

func snapshotRow(s projector.Snapshot, cur string) []string {
	return []string{
		strconv.Itoa(s.Year),
		projector.FormatMoney(s.Liquid, cur),
		projector.FormatMoney(s.Assets, cur),
		projector.FormatMoney(s.Total, cur),
		projector.FormatMoney(s.Deflated, cur),
	}
}

// flowsSummary lists flows as "label amount growth".
func flowsSummary(flows []projector.FlowSpec, cur string) string {
	if len(flows) == 0 {
		return "-"
	}
	var parts []string
	for _, f := range flows {
		part := projector.FormatMoney(f.Value, cur) + " " + projector.Rate(f.Flow().GrowthRate).SignedString()
		if f.Label != "" {
			part = f.Label + " " + part
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func every(proj *projector.Projection, opts ReportOptions) int {
	if opts.Every > 0 {
		return opts.Every
	}
	return proj.ReportEvery
}
