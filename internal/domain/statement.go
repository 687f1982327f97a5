package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement represents one imported statement period for one account.
// Created once per successful import and immutable thereafter.
//
// The invariant under test by the reconciliation engine:
// ClosingBalance ≈ OpeningBalance + Σ(signed effect of each transaction),
// within a 2-cent tolerance for accumulated rounding.
type Statement struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"account_id"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	ClosingBalance   decimal.Decimal `json:"closing_balance"`
	TotalCredits     decimal.Decimal `json:"total_credits"`
	TotalDebits      decimal.Decimal `json:"total_debits"`
	TransactionCount int             `json:"transaction_count"`
	ImportedAt       time.Time       `json:"imported_at"`
}
