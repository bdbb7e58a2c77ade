package models

import (
	"github.com/shopspring/decimal"
)

// Tolerance is the fixed absolute tolerance used by the balance and equation
// checks. It absorbs floating-point drift from journals produced by other
// tools; decimal arithmetic inside this engine is exact.
var Tolerance = decimal.RequireFromString("0.01")

// BalanceReport is the result of checking a set of journal lines for
// debit/credit balance. Never an error: imbalance is reported as data.
type BalanceReport struct {
	IsBalanced   bool
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Difference   decimal.Decimal // absolute
}

// LedgerTotals aggregates every ledger account's balance by category.
type LedgerTotals struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal // excludes net income; see EquationReport
	Revenue     decimal.Decimal
	Expenses    decimal.Decimal
	NetIncome   decimal.Decimal // Revenue - Expenses
}

// EquationReport is the accounting-equation check
// (Assets = Liabilities + Equity, with net income folded into equity).
type EquationReport struct {
	IsBalanced  bool
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal // reported equity including net income
	Difference  decimal.Decimal // absolute
}
