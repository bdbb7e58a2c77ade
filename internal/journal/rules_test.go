package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bookkeep/journal-csv/internal/models"
)

func TestSideFor(t *testing.T) {
	increase := decimal.RequireFromString("500")
	decrease := decimal.RequireFromString("-500")
	zero := decimal.Zero

	tests := []struct {
		name        string
		accountType models.AccountType
		amount      decimal.Decimal
		expected    models.Side
	}{
		{"asset increase", models.TypeAsset, increase, models.SideDebit},
		{"asset decrease", models.TypeAsset, decrease, models.SideCredit},
		{"asset zero", models.TypeAsset, zero, models.SideDebit},

		{"expense increase", models.TypeExpense, increase, models.SideDebit},
		{"expense decrease", models.TypeExpense, decrease, models.SideCredit},
		{"expense zero", models.TypeExpense, zero, models.SideDebit},

		{"liability increase", models.TypeLiability, increase, models.SideCredit},
		{"liability decrease", models.TypeLiability, decrease, models.SideDebit},
		{"liability zero", models.TypeLiability, zero, models.SideCredit},

		{"equity increase", models.TypeEquity, increase, models.SideCredit},
		{"equity decrease", models.TypeEquity, decrease, models.SideDebit},
		{"equity zero", models.TypeEquity, zero, models.SideCredit},

		{"revenue increase", models.TypeRevenue, increase, models.SideCredit},
		{"revenue decrease", models.TypeRevenue, decrease, models.SideDebit},
		{"revenue zero", models.TypeRevenue, zero, models.SideCredit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, ok := SideFor(tt.accountType, tt.amount)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, side)
		})
	}
}

func TestSideForUnknownType(t *testing.T) {
	side, ok := SideFor(models.AccountType("Banana"), decimal.RequireFromString("10"))
	assert.False(t, ok)
	assert.Equal(t, models.SideDebit, side)
}

func TestDefaultNote(t *testing.T) {
	increase := decimal.RequireFromString("500")
	decrease := decimal.RequireFromString("-500")

	tests := []struct {
		name     string
		tx       models.Transaction
		category models.AccountType
		expected string
	}{
		{
			name:     "revenue increase",
			tx:       models.Transaction{Description: "Consulting Work", Amount: increase},
			category: models.TypeRevenue,
			expected: "Revenue from consulting work",
		},
		{
			name:     "revenue decrease",
			tx:       models.Transaction{Description: "Refund", Amount: decrease},
			category: models.TypeRevenue,
			expected: "Revenue adjustment",
		},
		{
			name:     "expense decrease",
			tx:       models.Transaction{Description: "Office Rent", Amount: decrease},
			category: models.TypeExpense,
			expected: "Payment for office rent",
		},
		{
			name:     "expense increase",
			tx:       models.Transaction{Description: "Rebate", Amount: increase},
			category: models.TypeExpense,
			expected: "Expense refund",
		},
		{
			name:     "asset decrease",
			tx:       models.Transaction{Description: "Laptop", Amount: decrease},
			category: models.TypeAsset,
			expected: "Purchase of laptop",
		},
		{
			name:     "asset increase",
			tx:       models.Transaction{Description: "Old Printer", Amount: increase},
			category: models.TypeAsset,
			expected: "Sale of old printer",
		},
		{
			name:     "liability decrease",
			tx:       models.Transaction{Description: "Monthly installment", Amount: decrease},
			category: models.TypeLiability,
			expected: "Loan payment",
		},
		{
			name:     "liability increase",
			tx:       models.Transaction{Description: "Credit line", Amount: increase},
			category: models.TypeLiability,
			expected: "Loan received",
		},
		{
			name:     "equity increase",
			tx:       models.Transaction{Description: "Initial funding", Amount: increase},
			category: models.TypeEquity,
			expected: "Owner investment",
		},
		{
			name:     "equity decrease",
			tx:       models.Transaction{Description: "Draw", Amount: decrease},
			category: models.TypeEquity,
			expected: "Owner withdrawal",
		},
		{
			name:     "uncategorized with description",
			tx:       models.Transaction{Description: "Mystery row", Amount: increase},
			category: "",
			expected: "Mystery row",
		},
		{
			name:     "uncategorized without description",
			tx:       models.Transaction{Amount: increase},
			category: "",
			expected: "Transaction entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultNote(tt.tx, tt.category))
		})
	}
}
