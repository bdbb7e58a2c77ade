// Package ledger folds journal lines into per-account running totals and
// balances, maintains the chart-of-accounts view, and checks the accounting
// equation.
package ledger

import (
	"github.com/shopspring/decimal"

	"bookkeep/journal-csv/internal/classifier"
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

// PostedLine is one entry in an account's running history.
type PostedLine struct {
	Date          string
	TransactionID string
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// Account accumulates everything posted to one account name. Created on
// first posting, mutated on every subsequent one, never deleted during a
// session.
type Account struct {
	Name         string
	Category     models.AccountType
	Lines        []PostedLine
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Balance      decimal.Decimal
}

// recalcBalance applies the sign convention: Asset and Expense accounts
// carry a natural debit balance, the rest a natural credit balance.
func (a *Account) recalcBalance() {
	switch a.Category {
	case models.TypeAsset, models.TypeExpense:
		a.Balance = a.TotalDebits.Sub(a.TotalCredits)
	default:
		a.Balance = a.TotalCredits.Sub(a.TotalDebits)
	}
}

// Chart is the denormalized chart-of-accounts view: current balance per
// account name, grouped by category.
type Chart map[models.AccountType]map[string]decimal.Decimal

// GeneralLedger is the per-session ledger state. It is caller-owned and not
// safe for concurrent mutation; each engine invocation gets its own.
type GeneralLedger struct {
	accounts   map[string]*Account
	order      []string // account names in first-posting order
	chart      Chart
	classifier *classifier.Classifier
	logger     logging.Logger
}

// New creates an empty ledger. The classifier supplies the category for
// lines that arrive without one (e.g. journals from external tools).
func New(cls *classifier.Classifier, logger logging.Logger) *GeneralLedger {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if cls == nil {
		cls = classifier.New(nil, logger)
	}
	return &GeneralLedger{
		accounts:   make(map[string]*Account),
		chart:      make(Chart),
		classifier: cls,
		logger:     logger,
	}
}

// Post folds one journal line into the ledger. A line is never rejected for
// being unbalanced on its own: double-entry correctness is a journal-level
// property checked by journal.CheckBalance and CheckEquation, not per line.
func (gl *GeneralLedger) Post(line models.JournalLine) {
	account, exists := gl.accounts[line.Account]
	if !exists {
		category := line.Category
		if category == "" {
			category = gl.classifier.Classify(line.Account)
		}
		account = &Account{
			Name:     line.Account,
			Category: category,
		}
		gl.accounts[line.Account] = account
		gl.order = append(gl.order, line.Account)
		if gl.chart[category] == nil {
			gl.chart[category] = make(map[string]decimal.Decimal)
		}
	}

	account.Lines = append(account.Lines, PostedLine{
		Date:          line.Date,
		TransactionID: line.TransactionID,
		Description:   line.Description,
		Debit:         line.Debit,
		Credit:        line.Credit,
	})
	account.TotalDebits = account.TotalDebits.Add(line.Debit)
	account.TotalCredits = account.TotalCredits.Add(line.Credit)
	account.recalcBalance()

	gl.chart[account.Category][account.Name] = account.Balance
}

// PostAll folds a journal in order. Posting order affects only each
// account's history ordering, never the final totals.
func (gl *GeneralLedger) PostAll(lines []models.JournalLine) {
	for _, line := range lines {
		gl.Post(line)
	}
	gl.logger.Info("Posted journal lines to general ledger",
		logging.Field{Key: logging.FieldCount, Value: len(lines)},
	)
}

// Account looks up one ledger account by name.
func (gl *GeneralLedger) Account(name string) (*Account, bool) {
	account, ok := gl.accounts[name]
	return account, ok
}

// Accounts returns all ledger accounts in first-posting order.
func (gl *GeneralLedger) Accounts() []*Account {
	accounts := make([]*Account, 0, len(gl.order))
	for _, name := range gl.order {
		accounts = append(accounts, gl.accounts[name])
	}
	return accounts
}

// Chart returns the chart-of-accounts view. It is kept in step with the
// ledger on every posting.
func (gl *GeneralLedger) Chart() Chart {
	return gl.chart
}

// Len returns the number of distinct accounts.
func (gl *GeneralLedger) Len() int {
	return len(gl.accounts)
}
