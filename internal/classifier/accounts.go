package classifier

import (
	"bookkeep/journal-csv/internal/models"
)

// curatedAccounts is the built-in account table. Matching is exact and
// case-sensitive after trimming; anything else falls through to the keyword
// heuristics.
var curatedAccounts = map[string]models.AccountType{
	// Assets
	"Lease Deposit":       models.TypeAsset,
	"Inventory":           models.TypeAsset,
	"Prepaid Insurance":   models.TypeAsset,
	"Equipment":           models.TypeAsset,
	"Cash":                models.TypeAsset,
	"Accounts Receivable": models.TypeAsset,
	"Bank Account":        models.TypeAsset,
	"Fixed Assets":        models.TypeAsset,
	"Investments":         models.TypeAsset,

	// Liabilities
	"Accounts Payable":    models.TypeLiability,
	"Loans Payable":       models.TypeLiability,
	"Credit Card Payable": models.TypeLiability,
	"Accrued Expenses":    models.TypeLiability,
	"Notes Payable":       models.TypeLiability,

	// Equity
	"Owner's Equity":    models.TypeEquity,
	"Retained Earnings": models.TypeEquity,
	"Common Stock":      models.TypeEquity,
	"Preferred Stock":   models.TypeEquity,

	// Revenue
	"Rental Revenue":     models.TypeRevenue,
	"Tour Revenue":       models.TypeRevenue,
	"Sales Revenue":      models.TypeRevenue,
	"Service Revenue":    models.TypeRevenue,
	"Interest Revenue":   models.TypeRevenue,
	"Commission Revenue": models.TypeRevenue,

	// Expenses
	"Salary Expense":       models.TypeExpense,
	"Rent Expense":         models.TypeExpense,
	"Insurance Expense":    models.TypeExpense,
	"Marketing Expense":    models.TypeExpense,
	"Training Expense":     models.TypeExpense,
	"Maintenance Expense":  models.TypeExpense,
	"Utilities Expense":    models.TypeExpense,
	"Supplies Expense":     models.TypeExpense,
	"Depreciation Expense": models.TypeExpense,
	"Travel Expense":       models.TypeExpense,
	"Meals Expense":        models.TypeExpense,
	"Office Expense":       models.TypeExpense,
	"Legal Expense":        models.TypeExpense,
	"Advertising Expense":  models.TypeExpense,
}
