package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one row of flat source data, as exported by a spreadsheet or
// bookkeeping tool. The CSV column names (Date, Account, Amount, Description,
// Vendor_Customer, Payment_Method, Trans_ID) map onto these fields in
// common.TransactionRow.
type Transaction struct {
	Date          string          // calendar date, format not validated here
	Account       string          // free-text account name, may be empty
	Amount        decimal.Decimal // signed; positive = increase of the named account
	Description   string          // opaque text, passed through unchanged
	Vendor        string          // opaque text
	PaymentMethod string          // opaque text
	TransactionID string          // optional externally assigned identifier
}

// ParseAmount converts a string amount to a decimal, tolerating currency
// symbols, spaces and thousand separators. Unparseable input yields zero so
// the record is still classified and journaled with a zero magnitude.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "'", "")
	amount = strings.ReplaceAll(amount, " ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
