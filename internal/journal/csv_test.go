package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeep/journal-csv/internal/models"
)

func TestToRowFormatsOneSide(t *testing.T) {
	debit := models.NewJournalLine("2024-01-15", "TXN-0001", "Cash", models.SideDebit, decimal.RequireFromString("1200"), "Product sale", models.TypeAsset)
	row := ToRow(debit)
	assert.Equal(t, "1200.00", row.Debit)
	assert.Equal(t, "", row.Credit)
	assert.Equal(t, "Asset", row.Category)

	credit := models.NewJournalLine("2024-01-15", "TXN-0001", "Sales Revenue", models.SideCredit, decimal.RequireFromString("1200"), "Product sale", models.TypeRevenue)
	row = ToRow(credit)
	assert.Equal(t, "", row.Debit)
	assert.Equal(t, "1200.00", row.Credit)
}

func TestFromRowDerivesSide(t *testing.T) {
	line := FromRow(Row{Date: "2024-01-15", Account: "Cash", Debit: "100.00", Category: "Asset"})
	assert.Equal(t, models.SideDebit, line.Side)
	assert.True(t, line.Debit.Equal(decimal.RequireFromString("100")))

	line = FromRow(Row{Date: "2024-01-15", Account: "Sales Revenue", Credit: "100.00", Category: "Revenue"})
	assert.Equal(t, models.SideCredit, line.Side)
	assert.True(t, line.Credit.Equal(decimal.RequireFromString("100")))

	// Both cells empty: zero-magnitude debit
	line = FromRow(Row{Date: "2024-01-15", Account: "Cash"})
	assert.Equal(t, models.SideDebit, line.Side)
	assert.True(t, line.Debit.IsZero())
}

func TestFromRowUnknownCategory(t *testing.T) {
	line := FromRow(Row{Account: "Cash", Debit: "10.00", Category: "Banana"})
	assert.Equal(t, models.AccountType(""), line.Category)
}

func TestJournalFileRoundTrip(t *testing.T) {
	lines := []models.JournalLine{
		models.NewJournalLine("2024-01-15", "TXN-0001", "Cash", models.SideDebit, decimal.RequireFromString("1200"), "Product sale", models.TypeAsset),
		models.NewJournalLine("2024-01-15", "TXN-0001", "Sales Revenue", models.SideCredit, decimal.RequireFromString("1200"), "Product sale", models.TypeRevenue),
	}

	path := filepath.Join(t.TempDir(), "journal.csv")
	require.NoError(t, WriteFile(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "Date,Account,Debit,Credit,Description,Category"))
	assert.Contains(t, content, "1200.00")

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Cash", got[0].Account)
	assert.Equal(t, models.SideDebit, got[0].Side)
	assert.True(t, got[0].Debit.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, models.TypeAsset, got[0].Category)

	assert.Equal(t, "Sales Revenue", got[1].Account)
	assert.Equal(t, models.SideCredit, got[1].Side)
	assert.True(t, got[1].Credit.Equal(decimal.RequireFromString("1200")))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
