package common

import (
	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

// TransactionRow mirrors the flat input schema. Amount stays a string here
// so malformed or empty cells degrade to a zero amount instead of failing
// the whole file; the engine still classifies and journals such records.
type TransactionRow struct {
	Date          string `csv:"Date"`
	Account       string `csv:"Account"`
	Amount        string `csv:"Amount"`
	Description   string `csv:"Description"`
	Vendor        string `csv:"Vendor_Customer"`
	PaymentMethod string `csv:"Payment_Method"`
	TransactionID string `csv:"Trans_ID"`
}

// ToTransaction converts a raw row into the typed model.
func (r TransactionRow) ToTransaction() models.Transaction {
	return models.Transaction{
		Date:          r.Date,
		Account:       r.Account,
		Amount:        models.ParseAmount(r.Amount),
		Description:   r.Description,
		Vendor:        r.Vendor,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
	}
}

// ReadTransactionsFile reads a flat transaction export into typed records.
func ReadTransactionsFile(filePath string) ([]models.Transaction, error) {
	rows, err := ReadCSVFile[TransactionRow](filePath)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.ToTransaction())
	}
	return transactions, nil
}

// WriteTransactionsFile writes typed records back to the flat schema with
// amounts formatted to 2 decimal places.
func WriteTransactionsFile(filePath string, transactions []models.Transaction) error {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, TransactionRow{
			Date:          t.Date,
			Account:       t.Account,
			Amount:        t.Amount.StringFixed(2),
			Description:   t.Description,
			Vendor:        t.Vendor,
			PaymentMethod: t.PaymentMethod,
			TransactionID: t.TransactionID,
		})
	}

	log.WithField(logging.FieldCount, len(rows)).Debug("Writing transaction records")
	return WriteCSVFile(filePath, rows)
}
