package models

// CategorizedTransaction augments a Transaction with the classifier's
// suggestion and the operator's final decision. The suggested category never
// changes after analysis; FinalCategory, Side and JournalNote are mutable
// until the set is discarded and re-derived.
type CategorizedTransaction struct {
	Transaction

	Index             int         // position in the original input, preserved across filtering
	SuggestedCategory AccountType // classifier output
	FinalCategory     AccountType // suggestion or operator override; wins for journal generation
	Side              Side        // derived from FinalCategory and the original signed amount
	JournalNote       string      // human-readable default description, operator-editable
	IsCategorized     bool        // true iff FinalCategory is assigned
}

// Recategorize applies an operator override. The caller supplies the side
// re-derived from the rule table against the original signed amount.
func (ct *CategorizedTransaction) Recategorize(category AccountType, side Side) {
	ct.FinalCategory = category
	ct.Side = side
	ct.IsCategorized = category != ""
}

// ClearCategory removes the categorization so the transaction is excluded
// from journal generation.
func (ct *CategorizedTransaction) ClearCategory() {
	ct.FinalCategory = ""
	ct.Side = ""
	ct.IsCategorized = false
}
