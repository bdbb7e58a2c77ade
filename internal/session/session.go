// Package session ties the engine together around one isolated unit of
// mutable state: the loaded records, the categorized set, and the ledger
// derived from them. The original tool kept these in process-wide variables;
// here every invocation owns its Session, so concurrent runs over different
// inputs never share state.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"bookkeep/journal-csv/internal/classifier"
	"bookkeep/journal-csv/internal/journal"
	"bookkeep/journal-csv/internal/ledger"
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

// Session is one analysis session over a fixed input snapshot. Not safe for
// concurrent use; create one per invocation.
type Session struct {
	id         string
	classifier *classifier.Classifier
	generator  *journal.Generator
	logger     logging.Logger

	original    []models.Transaction
	categorized []models.CategorizedTransaction
	stats       *models.ClassificationStats
}

// New creates an empty session. cls may be nil for the curated defaults;
// counterAccount empty falls back to journal.DefaultCounterAccount.
func New(cls *classifier.Classifier, counterAccount string, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.GetLogger()
	}
	id := uuid.NewString()
	logger = logger.WithField(logging.FieldSession, id)

	if cls == nil {
		cls = classifier.New(nil, logger)
	}

	return &Session{
		id:         id,
		classifier: cls,
		generator:  journal.NewGenerator(cls, counterAccount, logger),
		logger:     logger,
	}
}

// ID returns the session identifier used in log output.
func (s *Session) ID() string {
	return s.id
}

// Load replaces the session's input snapshot and discards any derived state.
func (s *Session) Load(transactions []models.Transaction) {
	s.original = transactions
	s.categorized = nil
	s.stats = nil
	s.logger.Info("Loaded transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	)
}

// Analyze classifies every loaded transaction and derives its debit/credit
// side and default journal note. Re-running Analyze re-derives the whole set
// from the original input, discarding operator edits.
func (s *Session) Analyze() *models.ClassificationStats {
	stats := models.NewClassificationStats()
	categorized := make([]models.CategorizedTransaction, 0, len(s.original))

	for i, t := range s.original {
		category := s.classifier.Classify(t.Account)
		side, ok := journal.SideFor(category, t.Amount)
		if !ok {
			s.logger.Warn("Unknown account type at rule lookup, defaulting to debit",
				logging.Field{Key: logging.FieldAccountType, Value: string(category)},
				logging.Field{Key: logging.FieldAccount, Value: t.Account},
			)
		}

		ct := models.CategorizedTransaction{
			Transaction:       t,
			Index:             i,
			SuggestedCategory: category,
			FinalCategory:     category,
			Side:              side,
			JournalNote:       journal.DefaultNote(t, category),
			IsCategorized:     category != "",
		}
		categorized = append(categorized, ct)
		stats.Count(ct.FinalCategory)
	}

	s.categorized = categorized
	s.stats = stats
	stats.LogSummary(s.logger)
	return stats
}

// Transactions exposes the categorized set. The returned slice is the
// session's own state; index positions match Recategorize and SetNote.
func (s *Session) Transactions() []models.CategorizedTransaction {
	return s.categorized
}

// Stats returns the statistics from the most recent Analyze, or nil.
func (s *Session) Stats() *models.ClassificationStats {
	return s.stats
}

// Recategorize applies an operator override to one transaction. The
// debit/credit side is re-derived from the rule table against the original
// signed amount, not the overridden category's sign. An empty category
// clears the categorization.
func (s *Session) Recategorize(index int, category models.AccountType) error {
	if index < 0 || index >= len(s.categorized) {
		return fmt.Errorf("transaction index %d out of range (0..%d)", index, len(s.categorized)-1)
	}
	ct := &s.categorized[index]

	if category == "" {
		ct.ClearCategory()
		return nil
	}
	if !category.Valid() {
		return fmt.Errorf("unknown account type %q", category)
	}

	side, _ := journal.SideFor(category, ct.Amount)
	ct.Recategorize(category, side)
	return nil
}

// SetNote replaces the journal note of one transaction.
func (s *Session) SetNote(index int, note string) error {
	if index < 0 || index >= len(s.categorized) {
		return fmt.Errorf("transaction index %d out of range (0..%d)", index, len(s.categorized)-1)
	}
	s.categorized[index].JournalNote = note
	return nil
}

// Journal expands the current categorized set into double-entry journal
// lines. Uncategorized transactions are skipped, not errors.
func (s *Session) Journal() []models.JournalLine {
	return s.generator.Generate(s.categorized)
}

// CheckBalance validates the current journal's debit/credit balance.
func (s *Session) CheckBalance() models.BalanceReport {
	return journal.CheckBalance(s.Journal())
}

// Post folds journal lines into a fresh general ledger. The ledger is built
// from scratch on every call: a failed or abandoned run leaves no partially
// applied state behind.
func (s *Session) Post(lines []models.JournalLine) *ledger.GeneralLedger {
	gl := ledger.New(s.classifier, s.logger)
	gl.PostAll(lines)
	return gl
}

// Reset discards the categorized set and statistics, keeping the original
// input so Analyze can re-derive from it.
func (s *Session) Reset() {
	s.categorized = nil
	s.stats = nil
	s.logger.Info("Session reset")
}
