package renderer

import (
	"strconv"
	"strings"

	"github.com/etnz/projector"
	md "github.com/nao1215/markdown"
)

// LoanMarkdown renders the cost of a loan and its amortization schedule.
func LoanMarkdown(l *projector.Loan, currency string) string {
	var b strings.Builder
	money := func(v float64) string { return projector.FormatMoney(v, currency) }

	doc := md.NewMarkdown(&b)
	doc.H1f("Loan of %s over %d periods at %s", money(l.Principal), l.Length, projector.Percent(l.Rate))
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header:    []string{"", "Amount"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Payment per period", money(l.Payment)},
			{"Total payment", money(l.TotalPayment())},
			{"Total interest", money(l.TotalInterest())},
			{"Deductible interest per period", money(l.TaxDeduction().Value)},
		},
	})

	var rows [][]string
	for _, in := range l.Amortization() {
		rows = append(rows, []string{
			strconv.Itoa(in.Period),
			money(in.Payment),
			money(in.Interest),
			money(in.Principal),
			money(in.Balance),
		})
	}
	doc.H2("Amortization")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header:    []string{"Period", "Payment", "Interest", "Principal", "Balance"},
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Rows:      rows,
	})
	doc.Build()
	return b.String()
}
