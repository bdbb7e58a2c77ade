// Package analyze handles transaction classification commands
package analyze

import (
	cmdcommon "bookkeep/journal-csv/cmd/common"
	"bookkeep/journal-csv/cmd/root"
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify transactions and print statistics",
	Long: `Read a flat transaction CSV, classify every account into one of the five
accounting types, and print the classification statistics.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Analyze command called")
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required")
	}
	root.Log.Infof("Input transaction file: %s", root.SharedFlags.Input)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	s, stats, err := cmdcommon.AnalyzeFile(root.Cfg, root.SharedFlags.Input, log)
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}

	for _, ct := range s.Transactions() {
		root.Log.Debugf("%4d  %-30s  %-10s  %s", ct.Index, ct.Account, ct.FinalCategory, ct.Side)
	}

	root.Log.Infof("Classified %d transactions", stats.Total)
	for _, accountType := range models.AccountTypes {
		root.Log.Infof("  %-10s %d", accountType, stats.ByType[accountType])
	}
	if stats.Uncategorized > 0 {
		root.Log.Warnf("  %d transactions left uncategorized", stats.Uncategorized)
	}
}
