package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

func categorized(account, description, amount string, category models.AccountType, side models.Side) models.CategorizedTransaction {
	return models.CategorizedTransaction{
		Transaction: models.Transaction{
			Date:          "2024-01-15",
			Account:       account,
			Amount:        decimal.RequireFromString(amount),
			Description:   description,
			TransactionID: "TXN-0001",
		},
		SuggestedCategory: category,
		FinalCategory:     category,
		Side:              side,
		IsCategorized:     true,
	}
}

func TestExpandProducesBalancedPair(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	ct := categorized("Sales Revenue", "Product sale", "1200", models.TypeRevenue, models.SideCredit)
	subject, counter, ok := g.Expand(ct)
	require.True(t, ok)

	assert.Equal(t, "Sales Revenue", subject.Account)
	assert.Equal(t, models.SideCredit, subject.Side)
	assert.True(t, subject.Credit.Equal(decimal.RequireFromString("1200")))
	assert.True(t, subject.Debit.IsZero())

	assert.Equal(t, DefaultCounterAccount, counter.Account)
	assert.Equal(t, models.SideDebit, counter.Side)
	assert.True(t, counter.Debit.Equal(decimal.RequireFromString("1200")))
	assert.True(t, counter.Credit.IsZero())
	assert.Equal(t, models.TypeAsset, counter.Category, "Cash classifies as an asset")

	assert.Equal(t, subject.Date, counter.Date)
	assert.Equal(t, subject.TransactionID, counter.TransactionID)
	assert.True(t, subject.Magnitude().Equal(counter.Magnitude()))
}

func TestExpandNegativeAmountUsesAbsoluteMagnitude(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	// Rent paid: expense decrease credits the expense account, Cash is debited
	ct := categorized("Rent Expense", "January rent", "-500", models.TypeExpense, models.SideCredit)
	subject, counter, ok := g.Expand(ct)
	require.True(t, ok)

	assert.True(t, subject.Credit.Equal(decimal.RequireFromString("500")))
	assert.True(t, counter.Debit.Equal(decimal.RequireFromString("500")))
	assert.False(t, subject.Credit.IsNegative())
}

func TestExpandSkipsUncategorized(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	ct := categorized("Mystery", "???", "100", "", models.SideDebit)
	ct.IsCategorized = false

	_, _, ok := g.Expand(ct)
	assert.False(t, ok)
}

func TestExpandFallbacks(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	// Missing account name falls back to the category name; missing note
	// falls back to the raw description.
	ct := categorized("", "fallback description", "100", models.TypeExpense, models.SideDebit)
	subject, _, ok := g.Expand(ct)
	require.True(t, ok)
	assert.Equal(t, "Expense", subject.Account)
	assert.Equal(t, "fallback description", subject.Description)

	// An operator note wins over the description
	ct.JournalNote = "edited note"
	subject, _, ok = g.Expand(ct)
	require.True(t, ok)
	assert.Equal(t, "edited note", subject.Description)
}

func TestExpandZeroAmountStillPairs(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	ct := categorized("Rent Expense", "placeholder", "0", models.TypeExpense, models.SideDebit)
	subject, counter, ok := g.Expand(ct)
	require.True(t, ok)
	assert.True(t, subject.Debit.IsZero())
	assert.True(t, counter.Credit.IsZero())
}

func TestExpandCustomCounterAccount(t *testing.T) {
	g := NewGenerator(nil, "Bank Account", &logging.MockLogger{})

	ct := categorized("Sales Revenue", "sale", "100", models.TypeRevenue, models.SideCredit)
	_, counter, ok := g.Expand(ct)
	require.True(t, ok)
	assert.Equal(t, "Bank Account", counter.Account)
	assert.Equal(t, models.TypeAsset, counter.Category)
}

func TestGeneratePreservesOrderAndBalances(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	set := []models.CategorizedTransaction{
		categorized("Sales Revenue", "sale", "1000", models.TypeRevenue, models.SideCredit),
		categorized("Rent Expense", "rent", "-400", models.TypeExpense, models.SideCredit),
		categorized("Office Equipment", "laptop", "-900", models.TypeAsset, models.SideCredit),
	}

	lines := g.Generate(set)
	require.Len(t, lines, 6)

	// Subject line immediately followed by its counter line
	assert.Equal(t, "Sales Revenue", lines[0].Account)
	assert.Equal(t, DefaultCounterAccount, lines[1].Account)
	assert.Equal(t, "Rent Expense", lines[2].Account)
	assert.Equal(t, DefaultCounterAccount, lines[3].Account)
	assert.Equal(t, "Office Equipment", lines[4].Account)
	assert.Equal(t, DefaultCounterAccount, lines[5].Account)

	report := CheckBalance(lines)
	assert.True(t, report.IsBalanced)
	assert.True(t, report.TotalDebits.Equal(report.TotalCredits))
	assert.True(t, report.TotalDebits.Equal(decimal.RequireFromString("2300")))
}

func TestGenerateSkipsUncategorizedAndLogs(t *testing.T) {
	mock := &logging.MockLogger{}
	g := NewGenerator(nil, "", mock)

	uncategorized := categorized("Mystery", "???", "100", "", models.SideDebit)
	uncategorized.IsCategorized = false

	set := []models.CategorizedTransaction{
		categorized("Sales Revenue", "sale", "1000", models.TypeRevenue, models.SideCredit),
		uncategorized,
	}

	lines := g.Generate(set)
	assert.Len(t, lines, 2)
	assert.NotEmpty(t, mock.EntriesByLevel("DEBUG"))
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewGenerator(nil, "", &logging.MockLogger{})

	set := []models.CategorizedTransaction{
		categorized("Sales Revenue", "sale", "1000", models.TypeRevenue, models.SideCredit),
		categorized("Rent Expense", "rent", "-400", models.TypeExpense, models.SideCredit),
	}

	first := g.Generate(set)
	second := g.Generate(set)
	assert.Equal(t, first, second)
}

func TestCheckBalance(t *testing.T) {
	lines := []models.JournalLine{
		models.NewJournalLine("2024-01-15", "TXN-0001", "Cash", models.SideDebit, decimal.RequireFromString("100"), "", models.TypeAsset),
		models.NewJournalLine("2024-01-15", "TXN-0001", "Sales Revenue", models.SideCredit, decimal.RequireFromString("100"), "", models.TypeRevenue),
	}
	report := CheckBalance(lines)
	assert.True(t, report.IsBalanced)
	assert.True(t, report.Difference.IsZero())
}

func TestCheckBalanceUnbalanced(t *testing.T) {
	lines := []models.JournalLine{
		models.NewJournalLine("2024-01-15", "TXN-0001", "Cash", models.SideDebit, decimal.RequireFromString("100"), "", models.TypeAsset),
		models.NewJournalLine("2024-01-15", "TXN-0001", "Sales Revenue", models.SideCredit, decimal.RequireFromString("90"), "", models.TypeRevenue),
	}
	report := CheckBalance(lines)
	assert.False(t, report.IsBalanced)
	assert.True(t, report.Difference.Equal(decimal.RequireFromString("10")))
}

func TestCheckBalanceWithinTolerance(t *testing.T) {
	lines := []models.JournalLine{
		models.NewJournalLine("2024-01-15", "TXN-0001", "Cash", models.SideDebit, decimal.RequireFromString("100.005"), "", models.TypeAsset),
		models.NewJournalLine("2024-01-15", "TXN-0001", "Sales Revenue", models.SideCredit, decimal.RequireFromString("100.00"), "", models.TypeRevenue),
	}
	report := CheckBalance(lines)
	assert.True(t, report.IsBalanced, "difference below 0.01 is tolerated")
}

func TestCheckBalanceEmpty(t *testing.T) {
	report := CheckBalance(nil)
	assert.True(t, report.IsBalanced)
	assert.True(t, report.TotalDebits.IsZero())
	assert.True(t, report.TotalCredits.IsZero())
}
