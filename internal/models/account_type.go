// Package models provides the data structures used throughout the application.
package models

import "strings"

// AccountType is the closed set of account categories used by the
// classification and posting rules. There is no sixth case.
type AccountType string

const (
	TypeAsset     AccountType = "Asset"
	TypeLiability AccountType = "Liability"
	TypeEquity    AccountType = "Equity"
	TypeRevenue   AccountType = "Revenue"
	TypeExpense   AccountType = "Expense"
)

// AccountTypes lists all valid account types in display order.
var AccountTypes = []AccountType{
	TypeAsset,
	TypeLiability,
	TypeEquity,
	TypeRevenue,
	TypeExpense,
}

// ParseAccountType maps a string onto the closed enumeration, ignoring
// case so values from config files and CSV exports parse uniformly.
// Anything outside the five known values reports ok=false; presentation
// collaborators render those with a neutral/unknown style.
func ParseAccountType(s string) (AccountType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asset":
		return TypeAsset, true
	case "liability":
		return TypeLiability, true
	case "equity":
		return TypeEquity, true
	case "revenue":
		return TypeRevenue, true
	case "expense":
		return TypeExpense, true
	default:
		return "", false
	}
}

// Valid reports whether t is exactly one of the five canonical account
// types. Unlike ParseAccountType it does not normalize case, because
// the posting rules match on the canonical values.
func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	default:
		return false
	}
}

// String returns the canonical display name.
func (t AccountType) String() string {
	return string(t)
}
