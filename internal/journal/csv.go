package journal

import (
	"fmt"

	"bookkeep/journal-csv/internal/common"
	"bookkeep/journal-csv/internal/models"
)

// Row is the journal export schema: one CSV row per journal line. Exactly
// one of Debit/Credit is non-empty, formatted with 2 decimal places.
type Row struct {
	Date        string `csv:"Date"`
	Account     string `csv:"Account"`
	Debit       string `csv:"Debit"`
	Credit      string `csv:"Credit"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
}

// ToRow converts a journal line to its export row.
func ToRow(line models.JournalLine) Row {
	row := Row{
		Date:        line.Date,
		Account:     line.Account,
		Description: line.Description,
		Category:    string(line.Category),
	}
	if line.Side == models.SideDebit {
		row.Debit = line.Debit.StringFixed(2)
	} else {
		row.Credit = line.Credit.StringFixed(2)
	}
	return row
}

// FromRow converts an export row back into a journal line. The side comes
// from whichever cell is non-empty; a row with both cells empty is a
// zero-magnitude debit. Unknown category strings are preserved as empty so
// the ledger poster falls back to the classifier.
func FromRow(row Row) models.JournalLine {
	side := models.SideDebit
	amount := row.Debit
	if row.Debit == "" && row.Credit != "" {
		side = models.SideCredit
		amount = row.Credit
	}

	category, _ := models.ParseAccountType(row.Category)

	return models.NewJournalLine(
		row.Date, "", row.Account,
		side, models.ParseAmount(amount), row.Description, category,
	)
}

// WriteFile writes journal lines to a CSV file in the export schema.
func WriteFile(filePath string, lines []models.JournalLine) error {
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, ToRow(line))
	}
	if err := common.WriteCSVFile(filePath, rows); err != nil {
		return fmt.Errorf("error writing journal CSV: %w", err)
	}
	return nil
}

// ReadFile reads a journal CSV, either one generated here or supplied by an
// external tool, back into journal lines.
func ReadFile(filePath string) ([]models.JournalLine, error) {
	rows, err := common.ReadCSVFile[Row](filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading journal CSV: %w", err)
	}

	lines := make([]models.JournalLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, FromRow(row))
	}
	return lines, nil
}
