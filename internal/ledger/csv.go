package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"bookkeep/journal-csv/internal/common"
)

// EquationMarker is the literal section marker separating account rows from
// the validation block in the export, kept for compatibility with sheets
// built on the original tool's output.
const EquationMarker = "ACCOUNTING EQUATION VALIDATION"

var exportHeader = []string{"Account", "Category", "Total Debits", "Total Credits", "Balance", "Transaction Count"}

// Write exports the ledger: one row per account in first-posting order,
// then a blank row, the section marker, and the accounting-equation block.
func (gl *GeneralLedger) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = common.Delimiter
	defer cw.Flush()

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("error writing ledger header: %w", err)
	}

	for _, account := range gl.Accounts() {
		row := []string{
			account.Name,
			string(account.Category),
			account.TotalDebits.StringFixed(2),
			account.TotalCredits.StringFixed(2),
			account.Balance.StringFixed(2),
			strconv.Itoa(len(account.Lines)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing ledger row for %s: %w", account.Name, err)
		}
	}

	equation := gl.CheckEquation()
	status := "BALANCED"
	if !equation.IsBalanced {
		status = "NOT BALANCED"
	}

	block := [][]string{
		{""},
		{EquationMarker},
		{"Assets", "$" + equation.Assets.StringFixed(2)},
		{"Liabilities", "$" + equation.Liabilities.StringFixed(2)},
		{"Equity", "$" + equation.Equity.StringFixed(2)},
		{"Status", status},
	}
	for _, row := range block {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing equation block: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile exports the ledger to a CSV file.
func (gl *GeneralLedger) WriteFile(filePath string) (err error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating ledger CSV: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	err = gl.Write(file)
	return err
}
