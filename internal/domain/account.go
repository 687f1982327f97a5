package domain

import "strings"

// Polarity defines whether credits or debits increase an account's reported
// balance. Asset accounts (chequing, savings) grow on credits; liability
// accounts (credit cards) grow on debits.
type Polarity string

const (
	PolarityAsset     Polarity = "asset"
	PolarityLiability Polarity = "liability"
)

// BankAccount represents one account owned by a client company. Polarity is
// resolved once when the account is loaded, not re-derived per page.
type BankAccount struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Institution string   `json:"institution"`
	Currency    string   `json:"currency"`
	AccountType string   `json:"account_type"`
	CompanyID   string   `json:"company_id"`
	Polarity    Polarity `json:"polarity"`
}

// PolarityFromAccountType infers balance polarity from the raw account type
// string. Credit cards are liabilities; anything unknown or empty defaults
// to asset.
func PolarityFromAccountType(accountType string) Polarity {
	if strings.Contains(strings.ToLower(accountType), "credit card") {
		return PolarityLiability
	}
	return PolarityAsset
}
