// Package clean handles transaction cleaning commands
package clean

import (
	cmdcommon "bookkeep/journal-csv/cmd/common"
	"bookkeep/journal-csv/cmd/root"
	"bookkeep/journal-csv/internal/common"
	"bookkeep/journal-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean and normalize a raw transaction CSV",
	Long: `Read a raw transaction CSV, standardize dates to ISO format, normalize
account, vendor and payment-method names through alias tables, drop duplicate
rows, assign missing transaction IDs, and write the cleaned CSV.`,
	Run: cleanFunc,
}

func cleanFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Clean command called")
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Input and output files are required")
	}
	root.Log.Infof("Input transaction file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output transaction file: %s", root.SharedFlags.Output)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	cleaned, stats, err := cmdcommon.LoadTransactions(root.Cfg, root.SharedFlags.Input, log)
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}

	if err := common.WriteTransactionsFile(root.SharedFlags.Output, cleaned); err != nil {
		root.Log.Fatalf("Error writing cleaned CSV: %v", err)
	}

	root.Log.Infof("Cleaned %d rows into %d", stats.RowsIn, stats.RowsOut)
	root.Log.Infof("  dates standardized: %d", stats.DatesStandardized)
	root.Log.Infof("  accounts normalized: %d", stats.AccountsNormalized)
	root.Log.Infof("  vendors normalized: %d", stats.VendorsNormalized)
	root.Log.Infof("  payment methods normalized: %d", stats.PaymentsNormalized)
	root.Log.Infof("  duplicates removed: %d", stats.DuplicatesRemoved)
	root.Log.Infof("  transaction IDs assigned: %d", stats.IDsAssigned)
	root.Log.Info("Cleaning completed successfully!")
}
