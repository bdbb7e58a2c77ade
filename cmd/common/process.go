// Package common contains shared functionality for command handlers
package common

import (
	"bookkeep/journal-csv/internal/classifier"
	"bookkeep/journal-csv/internal/cleaning"
	"bookkeep/journal-csv/internal/common"
	"bookkeep/journal-csv/internal/config"
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
	"bookkeep/journal-csv/internal/session"
	"bookkeep/journal-csv/internal/store"
)

// BuildClassifier loads user account mappings from the configured store and
// layers them over the curated defaults. A missing mappings file is not an
// error; the curated table alone is used.
func BuildClassifier(cfg *config.Config, log logging.Logger) *classifier.Classifier {
	st := store.NewMappingStore(cfg.Classifier.MappingsFile, cfg.Classifier.AliasesFile)
	mappings, err := st.LoadAccountMappings()
	if err != nil {
		log.WithError(err).Warn("Failed to load account mappings, using curated defaults")
		mappings = nil
	}
	return classifier.New(mappings, log)
}

// NewSession builds a session wired with the configured classifier and
// counter account.
func NewSession(cfg *config.Config, log logging.Logger) *session.Session {
	cls := BuildClassifier(cfg, log)
	return session.New(cls, cfg.Ledger.CounterAccount, log)
}

// LoadTransactions reads a flat transaction CSV and runs the cleaning
// pipeline over it, so every command sees standardized dates, canonical
// account names, and assigned transaction IDs.
func LoadTransactions(cfg *config.Config, inputFile string, log logging.Logger) ([]models.Transaction, cleaning.Stats, error) {
	transactions, err := common.ReadTransactionsFile(inputFile)
	if err != nil {
		return nil, cleaning.Stats{}, err
	}

	st := store.NewMappingStore(cfg.Classifier.MappingsFile, cfg.Classifier.AliasesFile)
	aliases, err := st.LoadAliases()
	if err != nil {
		log.WithError(err).Warn("Failed to load aliases, using built-in defaults")
		aliases = store.Aliases{}
	}

	cleaner := cleaning.New(aliases, log)
	cleaned, stats := cleaner.Clean(transactions)
	return cleaned, stats, nil
}

// AnalyzeFile loads and cleans a transaction CSV, then runs classification
// over it inside a fresh session. Used by the analyze and journal commands.
func AnalyzeFile(cfg *config.Config, inputFile string, log logging.Logger) (*session.Session, *models.ClassificationStats, error) {
	transactions, _, err := LoadTransactions(cfg, inputFile, log)
	if err != nil {
		return nil, nil, err
	}

	s := NewSession(cfg, log)
	s.Load(transactions)
	stats := s.Analyze()
	return s, stats, nil
}
