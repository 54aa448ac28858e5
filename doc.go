// Package projector projects the growth of personal net worth over time.
//
// The model advances in discrete annual steps and is built from a handful of
// value holding entities:
//   - CashFlow: a recurring income, spending or tax deduction that grows by a
//     multiplicative rate, may be capped, and may expire after a number of
//     periods.
//   - Holding: anything owned whose value moves each period. Asset grows by a
//     fixed rate, Loan is a liability paid down by a fixed annuity.
//   - TaxBrackets: a stateless progressive income tax table.
//   - Portfolio: aggregates all of the above with a liquid cash balance and
//     advances them together, one Step per period.
//
// A Scenario describes a whole projection as data (initial portfolio plus
// events at given years, like buying a home) and Run produces a Projection,
// the series of yearly Snapshots that the `wp` command line tool reports on.
//
// All figures are nominal unless stated otherwise; DeflatedValue expresses a
// total in constant year-0 money using the portfolio's inflation series.
package projector
