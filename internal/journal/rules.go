// Package journal turns categorized transactions into balanced double-entry
// journal lines and validates that a set of lines nets to zero.
package journal

import (
	"github.com/shopspring/decimal"

	"bookkeep/journal-csv/internal/models"
)

// SideFor applies the debit/credit rule table. The signed amount means
// "increase" (positive, zero included) or "decrease" (negative) of the named
// account's natural balance:
//
//	Asset, Expense:             increase = debit,  decrease = credit
//	Liability, Equity, Revenue: increase = credit, decrease = debit
//
// The switch is exhaustive over the closed AccountType enumeration. An
// unknown type reports ok=false and the conservative default of debit;
// callers log a warning and keep processing.
func SideFor(accountType models.AccountType, amount decimal.Decimal) (models.Side, bool) {
	decrease := amount.IsNegative()

	switch accountType {
	case models.TypeAsset, models.TypeExpense:
		if decrease {
			return models.SideCredit, true
		}
		return models.SideDebit, true
	case models.TypeLiability, models.TypeEquity, models.TypeRevenue:
		if decrease {
			return models.SideDebit, true
		}
		return models.SideCredit, true
	default:
		return models.SideDebit, false
	}
}
