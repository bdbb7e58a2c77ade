package journal

import (
	"bookkeep/journal-csv/internal/classifier"
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

// DefaultCounterAccount offsets every generated entry. A single cash-like
// counter account is a deliberate simplification carried over from the
// source tool: a liability increase funded by a loan and an asset purchase
// on credit both offset against Cash. Anyone expecting general multi-account
// postings should read this first.
const DefaultCounterAccount = "Cash"

// Generator expands categorized transactions into balanced pairs of journal
// lines. It is a pure function of its inputs: re-running it over the same
// set yields identical output.
type Generator struct {
	classifier     *classifier.Classifier
	counterAccount string
	logger         logging.Logger
}

// NewGenerator creates a Generator. counterAccount falls back to
// DefaultCounterAccount when empty.
func NewGenerator(cls *classifier.Classifier, counterAccount string, logger logging.Logger) *Generator {
	if cls == nil {
		cls = classifier.New(nil, logger)
	}
	if counterAccount == "" {
		counterAccount = DefaultCounterAccount
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{
		classifier:     cls,
		counterAccount: counterAccount,
		logger:         logger,
	}
}

// Expand turns one categorized transaction into its subject line and counter
// line. ok is false for uncategorized transactions, which are excluded from
// generation entirely; that is not an error.
func (g *Generator) Expand(ct models.CategorizedTransaction) (subject, counter models.JournalLine, ok bool) {
	if !ct.IsCategorized {
		return models.JournalLine{}, models.JournalLine{}, false
	}

	magnitude := ct.Amount.Abs()

	description := ct.JournalNote
	if description == "" {
		description = ct.Description
	}

	account := ct.Account
	if account == "" {
		account = string(ct.FinalCategory)
	}

	subject = models.NewJournalLine(
		ct.Date, ct.TransactionID, account,
		ct.Side, magnitude, description, ct.FinalCategory,
	)

	counterCategory := g.classifier.Classify(g.counterAccount)
	counter = models.NewJournalLine(
		ct.Date, ct.TransactionID, g.counterAccount,
		ct.Side.Opposite(), magnitude, description, counterCategory,
	)

	return subject, counter, true
}

// Generate expands a whole categorized set, preserving input order: each
// subject line is immediately followed by its counter line. Total debits
// equal total credits by construction.
func (g *Generator) Generate(set []models.CategorizedTransaction) []models.JournalLine {
	lines := make([]models.JournalLine, 0, 2*len(set))
	skipped := 0

	for _, ct := range set {
		subject, counter, ok := g.Expand(ct)
		if !ok {
			skipped++
			continue
		}
		lines = append(lines, subject, counter)
	}

	if skipped > 0 {
		g.logger.Debug("Skipped uncategorized transactions during journal generation",
			logging.Field{Key: logging.FieldCount, Value: skipped},
		)
	}
	return lines
}
