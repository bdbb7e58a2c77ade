package models

import (
	"github.com/shopspring/decimal"
)

// JournalLine is one side of a double-entry posting to one account. Exactly
// one of Debit/Credit carries the magnitude; the other is zero. Zero-amount
// transactions keep their side recorded so the pair structure survives.
type JournalLine struct {
	Date          string
	TransactionID string
	Account       string
	Side          Side
	Debit         decimal.Decimal // zero if credit side
	Credit        decimal.Decimal // zero if debit side
	Description   string
	Category      AccountType
}

// NewJournalLine builds a line with the magnitude on the given side.
func NewJournalLine(date, transactionID, account string, side Side, magnitude decimal.Decimal, description string, category AccountType) JournalLine {
	line := JournalLine{
		Date:          date,
		TransactionID: transactionID,
		Account:       account,
		Side:          side,
		Description:   description,
		Category:      category,
	}
	if side == SideDebit {
		line.Debit = magnitude
	} else {
		line.Credit = magnitude
	}
	return line
}

// Magnitude returns the posted amount regardless of side.
func (l JournalLine) Magnitude() decimal.Decimal {
	if l.Side == SideDebit {
		return l.Debit
	}
	return l.Credit
}
