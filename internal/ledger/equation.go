package ledger

import (
	"bookkeep/journal-csv/internal/models"
)

// Totals sums every account's balance grouped by category. Net income is
// revenue minus expenses; there is no period-close step, so it is folded
// into reported equity by CheckEquation rather than tracked as a temporary
// account.
func (gl *GeneralLedger) Totals() models.LedgerTotals {
	var totals models.LedgerTotals

	for _, account := range gl.accounts {
		switch account.Category {
		case models.TypeAsset:
			totals.Assets = totals.Assets.Add(account.Balance)
		case models.TypeLiability:
			totals.Liabilities = totals.Liabilities.Add(account.Balance)
		case models.TypeEquity:
			totals.Equity = totals.Equity.Add(account.Balance)
		case models.TypeRevenue:
			totals.Revenue = totals.Revenue.Add(account.Balance)
		case models.TypeExpense:
			totals.Expenses = totals.Expenses.Add(account.Balance)
		}
	}

	totals.NetIncome = totals.Revenue.Sub(totals.Expenses)
	return totals
}

// CheckEquation validates Assets = Liabilities + Equity within the fixed
// tolerance, with net income folded into equity. Mismatch is reported as
// data for the caller to display, never as an error.
func (gl *GeneralLedger) CheckEquation() models.EquationReport {
	totals := gl.Totals()

	equity := totals.Equity.Add(totals.NetIncome)
	difference := totals.Assets.Sub(totals.Liabilities.Add(equity)).Abs()

	return models.EquationReport{
		IsBalanced:  difference.LessThan(models.Tolerance),
		Assets:      totals.Assets,
		Liabilities: totals.Liabilities,
		Equity:      equity,
		Difference:  difference,
	}
}
