// Package renderer turns projections, loans and tax tables into text: plain
// console listings and markdown reports.
package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/projector"
)

// ReportOptions holds configuration for rendering a projection report.
type ReportOptions struct {
	Every  int     // interval between reported years, the projection's own when 0
	Target float64 // net worth milestone to look for, in year 0 money; 0 disables it
}

// Console writes the reported snapshots of proj the way the projector has
// always printed them: a "# N years from now" header followed by the
// headline figures.
func Console(w io.Writer, proj *projector.Projection, every int) {
	for _, s := range proj.Reported(every) {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "# %d years from now\n", s.Year)
		fmt.Fprintln(w)
		fmt.Fprintln(w, projector.FormatWorth("Liquid", s.Liquid))
		fmt.Fprintln(w, projector.FormatWorth("Assets", s.Assets))
		fmt.Fprintln(w, projector.FormatWorth("Net worth", s.Total))
		fmt.Fprintln(w, projector.FormatWorth("Deflated net worth", s.Deflated))
	}
}

// Milestone writes a single line telling when the deflated net worth reaches
// target.
func Milestone(w io.Writer, proj *projector.Projection, target float64) {
	s, ok := proj.FirstYearAbove(target)
	if !ok {
		fmt.Fprintf(w, "Net worth stays below %s (in year 0 money) for the next %d years.\n",
			projector.FormatMoney(target, proj.Currency), proj.Final.Year)
		return
	}
	if s.Year == 0 {
		fmt.Fprintf(w, "Net worth is already above %s.\n", projector.FormatMoney(target, proj.Currency))
		return
	}
	fmt.Fprintf(w, "Net worth reaches %s (in year 0 money) in %d years: %s.\n",
		projector.FormatMoney(target, proj.Currency), s.Year, projector.FormatMoney(s.Deflated, proj.Currency))
}
