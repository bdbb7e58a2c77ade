package models

import (
	"bookkeep/journal-csv/internal/logging"
)

// ClassificationStats tracks how an analyzed transaction set broke down by
// category. Uncategorized is a count for operator review, not an error.
type ClassificationStats struct {
	Total         int
	Uncategorized int
	ByType        map[AccountType]int
}

// NewClassificationStats creates an empty stats collector.
func NewClassificationStats() *ClassificationStats {
	return &ClassificationStats{
		ByType: make(map[AccountType]int),
	}
}

// Count records one classified transaction.
func (cs *ClassificationStats) Count(category AccountType) {
	cs.Total++
	if category == "" {
		cs.Uncategorized++
		return
	}
	cs.ByType[category]++
}

// LogSummary logs a one-line summary of the analysis.
func (cs *ClassificationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Classification summary",
		logging.Field{Key: "total", Value: cs.Total},
		logging.Field{Key: "assets", Value: cs.ByType[TypeAsset]},
		logging.Field{Key: "liabilities", Value: cs.ByType[TypeLiability]},
		logging.Field{Key: "equity", Value: cs.ByType[TypeEquity]},
		logging.Field{Key: "revenue", Value: cs.ByType[TypeRevenue]},
		logging.Field{Key: "expenses", Value: cs.ByType[TypeExpense]},
		logging.Field{Key: "uncategorized", Value: cs.Uncategorized},
	)
}
