// Package root contains the root command for the application
package root

import (
	"bookkeep/journal-csv/internal/common"
	"bookkeep/journal-csv/internal/config"
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
	"bookkeep/journal-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the application configuration after PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "journal-csv",
		Short: "A CLI tool to turn flat transaction CSVs into double-entry journals and ledgers.",
		Long: `journal-csv reads flat transaction records from CSV, classifies each account
into one of the five accounting types, expands every record into a balanced
debit/credit journal pair, and posts the journal to a general ledger with
accounting-equation validation.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to journal-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			adapter := logging.NewLogrusAdapterFromLogger(Log)
			common.SetLogger(adapter)
			store.SetLogger(adapter)

			// Apply the configured CSV delimiter before any file is touched
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			models.Tolerance = cfg.BalanceTolerance()
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific classify command flags
	AccountName string
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}
