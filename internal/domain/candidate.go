package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandidateStatus is the review state of a transfer candidate.
//
// pending -> confirmed | rejected by user action. auto_linked is terminal,
// reachable only by the upstream detection process, and read-only in the
// reviewer. Candidates are never deleted; they remain as an audit trail.
type CandidateStatus string

const (
	CandidateStatusPending    CandidateStatus = "pending"
	CandidateStatusConfirmed  CandidateStatus = "confirmed"
	CandidateStatusRejected   CandidateStatus = "rejected"
	CandidateStatusAutoLinked CandidateStatus = "auto_linked"
)

// AmountMatchType classifies how the two candidate amounts were matched.
type AmountMatchType string

const (
	AmountMatchExact       AmountMatchType = "exact"
	AmountMatchFXConverted AmountMatchType = "fx_converted"
	AmountMatchApproximate AmountMatchType = "approximate"
	AmountMatchNone        AmountMatchType = "none"
)

// MatchFactors records which heuristic signals contributed to a candidate's
// confidence score.
type MatchFactors struct {
	AmountMatch         bool            `json:"amount_match"`
	AmountMatchType     AmountMatchType `json:"amount_match_type"`
	DateDiffDays        int             `json:"date_diff_days"`
	SameCompany         bool            `json:"same_company"`
	HasTransferKeywords bool            `json:"has_transfer_keywords"`
}

// TransferCandidate is a proposed pairing of two transactions believed to be
// the two legs of one internal fund movement.
type TransferCandidate struct {
	ID                string              `json:"id"`
	FromTransactionID string              `json:"from_transaction_id"`
	ToTransactionID   string              `json:"to_transaction_id"`
	FromAccountID     string              `json:"from_account_id"`
	ToAccountID       string              `json:"to_account_id"`
	FromAmount        decimal.Decimal     `json:"from_amount"`
	ToAmount          decimal.Decimal     `json:"to_amount"`
	FromCurrency      string              `json:"from_currency"`
	ToCurrency        string              `json:"to_currency"`
	ExchangeRateUsed  decimal.NullDecimal `json:"exchange_rate_used"`
	// ExchangeRateSource is owned by the upstream detection process and kept
	// as free-form text; empty means absent.
	ExchangeRateSource string          `json:"exchange_rate_source,omitempty"`
	CrossCompany       bool            `json:"cross_company"`
	Confidence         int             `json:"confidence"`
	Factors            MatchFactors    `json:"factors"`
	Status             CandidateStatus `json:"status"`
	RejectReason       string          `json:"reject_reason,omitempty"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// CrossCurrency reports whether the two legs are denominated in different
// currencies. Such a pair must carry an exchange rate to be trusted.
func (c TransferCandidate) CrossCurrency() bool {
	return c.FromCurrency != c.ToCurrency
}

// LinkTransferParams is the single atomic multi-row update applied when a
// candidate is confirmed: the candidate moves to confirmed and both
// transactions receive reciprocal link fields in one unit.
type LinkTransferParams struct {
	CandidateID       string
	FromTransactionID string
	ToTransactionID   string
	Category          string
	ReviewedAt        time.Time
}
