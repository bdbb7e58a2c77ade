package journal

import (
	"strings"

	"bookkeep/journal-csv/internal/models"
)

// DefaultNote builds the default journal note for a transaction. Operators
// can edit it afterwards; the generator prefers the note over the raw
// description when both are present.
func DefaultNote(t models.Transaction, category models.AccountType) string {
	description := strings.ToLower(t.Description)
	decrease := t.Amount.IsNegative()

	switch category {
	case models.TypeRevenue:
		if decrease {
			return "Revenue adjustment"
		}
		return "Revenue from " + description
	case models.TypeExpense:
		if decrease {
			return "Payment for " + description
		}
		return "Expense refund"
	case models.TypeAsset:
		if decrease {
			return "Purchase of " + description
		}
		return "Sale of " + description
	case models.TypeLiability:
		if decrease {
			return "Loan payment"
		}
		return "Loan received"
	case models.TypeEquity:
		if decrease {
			return "Owner withdrawal"
		}
		return "Owner investment"
	default:
		if t.Description != "" {
			return t.Description
		}
		return "Transaction entry"
	}
}
