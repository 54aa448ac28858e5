package renderer

import (
	"math"
	"strings"

	"github.com/etnz/projector"
	md "github.com/nao1215/markdown"
)

// TaxMarkdown renders the bracket table and the tax owed on each amount.
func TaxMarkdown(brackets projector.TaxBrackets, amounts []float64, currency string) string {
	var b strings.Builder
	money := func(v float64) string { return projector.FormatMoney(v, currency) }

	doc := md.NewMarkdown(&b)
	doc.H1("Income tax")
	doc.PlainText("")

	if len(amounts) > 0 {
		var rows [][]string
		for _, a := range amounts {
			rows = append(rows, []string{
				money(a),
				money(brackets.IncomeTax(a)),
				projector.Percent(brackets.MarginalRate(a)).String(),
				projector.Percent(brackets.EffectiveRate(a)).String(),
			})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Taxable income", "Tax", "Marginal rate", "Effective rate"},
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Rows:      rows,
		})
	}

	var rows [][]string
	for _, br := range brackets {
		upper := "and above"
		if !math.IsInf(br.Upper, 1) {
			upper = money(br.Upper)
		}
		rows = append(rows, []string{money(br.Lower), upper, projector.Percent(br.Rate).String()})
	}
	doc.H2("Brackets")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header:    []string{"From", "To", "Rate"},
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight},
		Rows:      rows,
	})
	doc.Build()
	return b.String()
}
