// Package journal handles double-entry journal generation commands
package journal

import (
	cmdcommon "bookkeep/journal-csv/cmd/common"
	"bookkeep/journal-csv/cmd/root"
	"bookkeep/journal-csv/internal/journal"
	"bookkeep/journal-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the journal command
var Cmd = &cobra.Command{
	Use:   "journal",
	Short: "Expand transactions into a double-entry journal CSV",
	Long: `Read a flat transaction CSV, classify every account, expand each record
into a balanced debit/credit pair, and write the journal to CSV. The
debit/credit totals are checked after generation.`,
	Run: journalFunc,
}

func journalFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Journal command called")
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Input and output files are required")
	}
	root.Log.Infof("Input transaction file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output journal file: %s", root.SharedFlags.Output)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	s, _, err := cmdcommon.AnalyzeFile(root.Cfg, root.SharedFlags.Input, log)
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}

	lines := s.Journal()
	if err := journal.WriteFile(root.SharedFlags.Output, lines); err != nil {
		root.Log.Fatalf("Error writing journal CSV: %v", err)
	}

	report := journal.CheckBalance(lines)
	if report.IsBalanced {
		root.Log.Infof("Journal balanced: %d lines, debits %s, credits %s",
			len(lines), report.TotalDebits.StringFixed(2), report.TotalCredits.StringFixed(2))
	} else {
		root.Log.Warnf("Journal NOT balanced: debits %s, credits %s, difference %s",
			report.TotalDebits.StringFixed(2), report.TotalCredits.StringFixed(2), report.Difference.StringFixed(2))
	}
	root.Log.Info("Journal generation completed successfully!")
}
