// Package cleaning normalizes raw transaction exports before analysis:
// date standardization, account/vendor/payment-method spelling cleanup,
// duplicate removal, and transaction-ID assignment. It is a preprocessing
// collaborator; the accounting engine consumes its output but does not
// depend on it.
package cleaning

import (
	"fmt"
	"strings"

	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
	"bookkeep/journal-csv/internal/store"
)

// Built-in spelling aliases, matched case-insensitively after whitespace
// normalization. User aliases from the store are merged over these.
var (
	defaultAccountAliases = map[string]string{
		"ar":               "Accounts Receivable",
		"a/r":              "Accounts Receivable",
		"accts receivable": "Accounts Receivable",
		"ap":               "Accounts Payable",
		"a/p":              "Accounts Payable",
		"accts payable":    "Accounts Payable",
		"rent":             "Rent Expense",
		"salaries":         "Salary Expense",
		"utilities":        "Utilities Expense",
		"supplies":         "Supplies Expense",
		"insurance":        "Insurance Expense",
		"sales":            "Sales Revenue",
		"owners equity":    "Owner's Equity",
		"owner equity":     "Owner's Equity",
		"checking":         "Bank Account",
		"checking account": "Bank Account",
	}

	defaultPaymentAliases = map[string]string{
		"cc":            "Credit Card",
		"creditcard":    "Credit Card",
		"credit":        "Credit Card",
		"dc":            "Debit Card",
		"debitcard":     "Debit Card",
		"ach":           "Bank Transfer",
		"wire":          "Bank Transfer",
		"bank transfer": "Bank Transfer",
		"chk":           "Check",
		"cheque":        "Check",
		"check":         "Check",
		"cash":          "Cash",
	}
)

// Stats summarizes what a cleaning pass changed.
type Stats struct {
	RowsIn             int
	RowsOut            int
	DatesStandardized  int
	AccountsNormalized int
	VendorsNormalized  int
	PaymentsNormalized int
	DuplicatesRemoved  int
	IDsAssigned        int
}

// Cleaner applies the normalization pipeline. Build one per run; it carries
// no state between Clean calls.
type Cleaner struct {
	accountAliases map[string]string
	vendorAliases  map[string]string
	paymentAliases map[string]string
	logger         logging.Logger
}

// New creates a Cleaner with the built-in aliases merged with any
// user-provided ones (user entries win).
func New(aliases store.Aliases, logger logging.Logger) *Cleaner {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Cleaner{
		accountAliases: make(map[string]string),
		vendorAliases:  make(map[string]string),
		paymentAliases: make(map[string]string),
		logger:         logger,
	}
	for k, v := range defaultAccountAliases {
		c.accountAliases[k] = v
	}
	for k, v := range defaultPaymentAliases {
		c.paymentAliases[k] = v
	}
	for k, v := range aliases.Accounts {
		c.accountAliases[normalizeKey(k)] = v
	}
	for k, v := range aliases.Vendors {
		c.vendorAliases[normalizeKey(k)] = v
	}
	for k, v := range aliases.PaymentMethods {
		c.paymentAliases[normalizeKey(k)] = v
	}
	return c
}

// Clean runs the full pipeline over a transaction set and returns the
// cleaned copy plus statistics. The input slice is not modified.
func (c *Cleaner) Clean(transactions []models.Transaction) ([]models.Transaction, Stats) {
	stats := Stats{RowsIn: len(transactions)}

	cleaned := make([]models.Transaction, 0, len(transactions))
	seen := make(map[string]bool, len(transactions))

	for _, t := range transactions {
		if date, changed := StandardizeDate(t.Date); changed {
			t.Date = date
			stats.DatesStandardized++
		}
		account, changed := c.normalize(t.Account, c.accountAliases)
		t.Account = account
		if changed {
			stats.AccountsNormalized++
		}

		vendor, changed := c.normalize(t.Vendor, c.vendorAliases)
		t.Vendor = vendor
		if changed {
			stats.VendorsNormalized++
		}

		payment, changed := c.normalize(t.PaymentMethod, c.paymentAliases)
		t.PaymentMethod = payment
		if changed {
			stats.PaymentsNormalized++
		}

		key := duplicateKey(t)
		if seen[key] {
			stats.DuplicatesRemoved++
			continue
		}
		seen[key] = true

		cleaned = append(cleaned, t)
	}

	stats.IDsAssigned = AssignTransactionIDs(cleaned)
	stats.RowsOut = len(cleaned)

	c.logger.Info("Cleaning pass complete",
		logging.Field{Key: "rows_in", Value: stats.RowsIn},
		logging.Field{Key: "rows_out", Value: stats.RowsOut},
		logging.Field{Key: "duplicates_removed", Value: stats.DuplicatesRemoved},
		logging.Field{Key: "ids_assigned", Value: stats.IDsAssigned},
	)
	return cleaned, stats
}

// normalize trims and collapses whitespace, then applies the alias map.
// The changed flag reports an alias substitution, not whitespace cleanup.
func (c *Cleaner) normalize(value string, aliases map[string]string) (string, bool) {
	collapsed := strings.Join(strings.Fields(value), " ")
	if canonical, ok := aliases[normalizeKey(collapsed)]; ok && canonical != collapsed {
		return canonical, true
	}
	return collapsed, false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// duplicateKey identifies exact duplicate rows. Trans_ID is deliberately
// excluded: re-exports commonly renumber rows without changing them.
func duplicateKey(t models.Transaction) string {
	return strings.Join([]string{
		t.Date, t.Account, t.Amount.String(), t.Description, t.Vendor,
	}, "|")
}

// AssignTransactionIDs fills empty Trans_ID fields with sequential TXN-NNNN
// identifiers, continuing after the highest sequence already present in the
// set. Returns the number of IDs assigned.
func AssignTransactionIDs(transactions []models.Transaction) int {
	next := 1
	for _, t := range transactions {
		var n int
		if _, err := fmt.Sscanf(t.TransactionID, "TXN-%d", &n); err == nil && n >= next {
			next = n + 1
		}
	}

	assigned := 0
	for i := range transactions {
		if strings.TrimSpace(transactions[i].TransactionID) == "" {
			transactions[i].TransactionID = fmt.Sprintf("TXN-%04d", next)
			next++
			assigned++
		}
	}
	return assigned
}
