// Package classify handles single-account classification commands
package classify

import (
	cmdcommon "bookkeep/journal-csv/cmd/common"
	"bookkeep/journal-csv/cmd/root"
	"bookkeep/journal-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single account name",
	Long: `Classify one account name into one of the five accounting types using
the curated table, keyword rules, and any user-defined mappings.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.AccountName, "account", "a", "", "Account name to classify")
	if err := Cmd.MarkFlagRequired("account"); err != nil {
		root.Log.Warnf("Failed to mark account flag required: %v", err)
	}
}

func classifyFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Classify command called")

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	cls := cmdcommon.BuildClassifier(root.Cfg, log)

	category := cls.Classify(root.AccountName)
	root.Log.Infof("Account %q classified as: %s", root.AccountName, category)
}
