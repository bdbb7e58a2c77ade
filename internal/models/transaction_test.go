package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain integer", input: "500", expected: "500"},
		{name: "decimal", input: "1234.56", expected: "1234.56"},
		{name: "negative", input: "-500", expected: "-500"},
		{name: "dollar sign", input: "$1,200.00", expected: "1200"},
		{name: "thousands separators", input: "1,234,567.89", expected: "1234567.89"},
		{name: "swiss apostrophe separator", input: "1'200.50", expected: "1200.5"},
		{name: "surrounding spaces", input: "  42.00 ", expected: "42"},
		{name: "empty string", input: "", expected: "0"},
		{name: "garbage", input: "abc", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
		})
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input    string
		expected AccountType
		ok       bool
	}{
		{"Asset", TypeAsset, true},
		{"asset", TypeAsset, true},
		{"LIABILITY", TypeLiability, true},
		{"Equity", TypeEquity, true},
		{"revenue", TypeRevenue, true},
		{"Expense", TypeExpense, true},
		{"", "", false},
		{"Banana", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAccountType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAccountTypeValid(t *testing.T) {
	for _, accountType := range AccountTypes {
		assert.True(t, accountType.Valid(), "%s should be valid", accountType)
	}
	assert.False(t, AccountType("").Valid())
	assert.False(t, AccountType("asset").Valid(), "validity is case-sensitive")
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideCredit, SideDebit.Opposite())
	assert.Equal(t, SideDebit, SideCredit.Opposite())
}

func TestJournalLineMagnitude(t *testing.T) {
	debit := NewJournalLine("2024-01-15", "TXN-0001", "Cash", SideDebit, decimal.RequireFromString("500"), "test", TypeAsset)
	assert.True(t, debit.Debit.Equal(decimal.RequireFromString("500")))
	assert.True(t, debit.Credit.IsZero())
	assert.True(t, debit.Magnitude().Equal(decimal.RequireFromString("500")))

	credit := NewJournalLine("2024-01-15", "TXN-0001", "Sales Revenue", SideCredit, decimal.RequireFromString("500"), "test", TypeRevenue)
	assert.True(t, credit.Credit.Equal(decimal.RequireFromString("500")))
	assert.True(t, credit.Debit.IsZero())
	assert.True(t, credit.Magnitude().Equal(decimal.RequireFromString("500")))
}

func TestCategorizedTransactionRecategorize(t *testing.T) {
	ct := CategorizedTransaction{
		Transaction:       Transaction{Account: "Misc"},
		SuggestedCategory: TypeExpense,
		FinalCategory:     TypeExpense,
		Side:              SideDebit,
		IsCategorized:     true,
	}

	ct.Recategorize(TypeAsset, SideDebit)
	assert.Equal(t, TypeAsset, ct.FinalCategory)
	assert.Equal(t, TypeExpense, ct.SuggestedCategory, "suggestion is preserved")
	assert.True(t, ct.IsCategorized)

	ct.ClearCategory()
	assert.Equal(t, AccountType(""), ct.FinalCategory)
	assert.False(t, ct.IsCategorized)
}
