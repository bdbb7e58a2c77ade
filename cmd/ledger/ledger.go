// Package ledger handles general-ledger posting commands
package ledger

import (
	cmdcommon "bookkeep/journal-csv/cmd/common"
	"bookkeep/journal-csv/cmd/root"
	"bookkeep/journal-csv/internal/journal"
	"bookkeep/journal-csv/internal/ledger"
	"bookkeep/journal-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the ledger command
var Cmd = &cobra.Command{
	Use:   "ledger",
	Short: "Post journal lines into a general ledger CSV",
	Long: `Read a double-entry journal CSV, post every line into a general ledger,
and write the ledger to CSV including the accounting-equation validation
block.`,
	Run: ledgerFunc,
}

func ledgerFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Ledger command called")
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Input and output files are required")
	}
	root.Log.Infof("Input journal file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output ledger file: %s", root.SharedFlags.Output)

	lines, err := journal.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading journal CSV: %v", err)
	}

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	cls := cmdcommon.BuildClassifier(root.Cfg, log)
	gl := ledger.New(cls, log)
	gl.PostAll(lines)

	if err := gl.WriteFile(root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing ledger CSV: %v", err)
	}

	eq := gl.CheckEquation()
	if eq.IsBalanced {
		root.Log.Infof("Accounting equation balanced: assets %s = liabilities %s + equity %s",
			eq.Assets.StringFixed(2), eq.Liabilities.StringFixed(2), eq.Equity.StringFixed(2))
	} else {
		root.Log.Warnf("Accounting equation NOT balanced: assets %s, liabilities %s, equity %s, difference %s",
			eq.Assets.StringFixed(2), eq.Liabilities.StringFixed(2), eq.Equity.StringFixed(2), eq.Difference.StringFixed(2))
	}
	root.Log.Infof("Posted %d accounts to the general ledger", gl.Len())
}
