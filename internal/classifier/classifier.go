// Package classifier maps free-text account names onto the five account
// types. Classification runs in three steps:
//  1. exact match (after trimming) against the curated table, merged with any
//     user-supplied mappings
//  2. case-insensitive keyword heuristics, tried group by group in a fixed
//     priority order
//  3. fallback to Expense — most uncategorized line items in this domain are
//     operating expenses
//
// The heuristics trade precision for coverage against free-text, unvalidated
// bookkeeping exports; exactness is only guaranteed for the curated table.
package classifier

import (
	"strings"

	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

// keywordGroup is one substring-heuristic group. Groups are evaluated in
// order; the first group with a matching token wins.
type keywordGroup struct {
	category models.AccountType
	tokens   []string
}

// Asset tokens are tried first, Equity last. "credit" deliberately sits in
// the Liability group ("Credit Card Payable" and friends).
var keywordGroups = []keywordGroup{
	{models.TypeAsset, []string{"receivable", "asset", "equipment", "inventory", "cash", "bank", "prepaid"}},
	{models.TypeLiability, []string{"payable", "loan", "debt", "credit", "accrued"}},
	{models.TypeRevenue, []string{"revenue", "income", "sales", "fee"}},
	{models.TypeEquity, []string{"equity", "capital", "stock", "retained"}},
}

// Classifier resolves account names to account types. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	exact  map[string]models.AccountType
	logger logging.Logger
}

// New creates a Classifier seeded with the curated account table. mappings
// may be nil; non-nil entries override or extend the curated table (exact
// names only, the keyword heuristics are fixed).
func New(mappings map[string]models.AccountType, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}

	exact := make(map[string]models.AccountType, len(curatedAccounts)+len(mappings))
	for name, category := range curatedAccounts {
		exact[name] = category
	}
	for name, category := range mappings {
		if !category.Valid() {
			logger.Warn("Ignoring account mapping with unknown type",
				logging.Field{Key: logging.FieldAccount, Value: name},
				logging.Field{Key: logging.FieldAccountType, Value: string(category)},
			)
			continue
		}
		exact[strings.TrimSpace(name)] = category
	}

	return &Classifier{exact: exact, logger: logger}
}

// Classify returns the account type for an account name. It is total and
// deterministic: unknown or empty input always yields a value, defaulting to
// Expense.
func (c *Classifier) Classify(accountName string) models.AccountType {
	name := strings.TrimSpace(accountName)
	if name == "" {
		return models.TypeExpense
	}

	if category, ok := c.exact[name]; ok {
		return category
	}

	lower := strings.ToLower(name)
	for _, group := range keywordGroups {
		for _, token := range group.tokens {
			if strings.Contains(lower, token) {
				return group.category
			}
		}
	}

	return models.TypeExpense
}
