// Package paydown simulates and compares two strategies for retiring an
// amortizing debt while investing in a market-tracking instrument:
//
//   - Concomitant: pay the debt at its nominal rate and invest the excess
//     cash flow at the same time. Once the debt is retired, the freed-up
//     payment is invested too.
//   - Debt-first: throw all available cash at the debt, invest nothing
//     until it is retired, then invest the full cash flow.
//
// Both strategies are pure functions of a loan, a monthly return series and
// an excess investment amount. The return series can come from a market-data
// provider (see FetchMonthlyReturns) or be synthesized with GBMPath when no
// historical data is available.
//
// All schedules are indexed by business-month-end dates and merged into a
// single Table per strategy, so the two outcomes can be compared row by row.
// Amounts are exact decimals; only returns and rates are floats.
package paydown
