package journal

import (
	"github.com/shopspring/decimal"

	"bookkeep/journal-csv/internal/models"
)

// CheckBalance sums debits and credits across a set of journal lines and
// reports whether they net to zero within the fixed tolerance. It is total:
// an empty set is balanced (0 == 0), and imbalance comes back as data, never
// as an error.
func CheckBalance(lines []models.JournalLine) models.BalanceReport {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, line := range lines {
		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}

	difference := totalDebits.Sub(totalCredits).Abs()

	return models.BalanceReport{
		IsBalanced:   difference.LessThan(models.Tolerance),
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
	}
}
