package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction defines the nature of the transaction (credit or debit).
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// LinkType marks which leg of a confirmed internal transfer a transaction is.
type LinkType string

const (
	LinkTypeNone        LinkType = ""
	LinkTypeTransferOut LinkType = "transfer_out"
	LinkTypeTransferIn  LinkType = "transfer_in"
)

// Transaction represents one imported banking record. Rows are immutable once
// imported except for the category, link fields and review flags; a linked
// transaction is never physically deleted.
//
// Amount is the signed semantic amount from the statement. An invalid
// NullDecimal means the imported row had no parseable amount; the
// reconciliation engine treats such rows as zero effect and flags them
// suspect rather than aborting the statement.
type Transaction struct {
	ID          string              `json:"id"`
	AccountID   string              `json:"account_id"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Direction   Direction           `json:"direction"`
	Currency    string              `json:"currency"`
	Category    string              `json:"category,omitempty"`
	LinkedTo    string              `json:"linked_to,omitempty"`
	LinkType    LinkType            `json:"link_type,omitempty"`
	NeedsReview bool                `json:"needs_review"`
	Locked      bool                `json:"locked"`
}

// Effect is the absolute magnitude the transaction applies to a running
// balance. Rows without a parseable amount contribute zero.
func (t Transaction) Effect() decimal.Decimal {
	if !t.Amount.Valid {
		return decimal.Zero
	}
	return t.Amount.Decimal.Abs()
}

// Linked reports whether this transaction is one confirmed leg of an
// internal transfer.
func (t Transaction) Linked() bool {
	return t.LinkedTo != "" && t.LinkType != LinkTypeNone
}
