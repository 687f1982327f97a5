// Package match scores proposed transfer pairings and interprets confidence
// for the review workflow.
package match

import (
	"strings"

	"github.com/shopspring/decimal"

	"bookledger/internal/domain"
)

// Band is the presentation grouping of a confidence score.
type Band string

const (
	BandHigh   Band = "high"   // score >= 90
	BandMedium Band = "medium" // 70..89
	BandLow    Band = "low"    // < 70
)

// ClassifyBand maps a confidence score to its review band. The bands are a
// convention over the score, not a re-derivation of it.
func ClassifyBand(score int) Band {
	switch {
	case score >= 90:
		return BandHigh
	case score >= 70:
		return BandMedium
	default:
		return BandLow
	}
}

// Breakdown records how many points each heuristic contributed.
type Breakdown struct {
	AmountPoints  int `json:"amount_points"`
	DatePoints    int `json:"date_points"`
	CompanyPoints int `json:"company_points"`
	KeywordPoints int `json:"keyword_points"`
}

// Total sums the contributions, capped at 100.
func (b Breakdown) Total() int {
	total := b.AmountPoints + b.DatePoints + b.CompanyPoints + b.KeywordPoints
	if total > 100 {
		return 100
	}
	return total
}

// Tolerances for amount comparison.
var (
	exactTolerance  = decimal.New(2, -2)  // within 0.02 counts as exact
	approxTolerance = decimal.New(1, 0)   // within 1.00 counts as approximate
)

// transferKeywords is the vocabulary associated with internal fund movement.
var transferKeywords = []string{
	"transfer", "xfer", "tfr", "trf", "internal", "sweep", "move to", "move from",
}

// HasTransferKeywords reports whether a description contains internal
// movement vocabulary.
func HasTransferKeywords(description string) bool {
	d := strings.ToLower(description)
	for _, kw := range transferKeywords {
		if strings.Contains(d, kw) {
			return true
		}
	}
	return false
}

// Score computes the confidence for the two legs of a candidate pairing.
// Amount agreement is the gate: without any amount match the score is zero
// regardless of the other signals.
func Score(c domain.TransferCandidate, fromDescription, toDescription string) (domain.MatchFactors, Breakdown) {
	factors := domain.MatchFactors{
		DateDiffDays:        c.Factors.DateDiffDays,
		SameCompany:         !c.CrossCompany,
		HasTransferKeywords: HasTransferKeywords(fromDescription) || HasTransferKeywords(toDescription),
	}

	var bd Breakdown

	factors.AmountMatchType = classifyAmounts(c)
	factors.AmountMatch = factors.AmountMatchType != domain.AmountMatchNone
	switch factors.AmountMatchType {
	case domain.AmountMatchExact:
		bd.AmountPoints = 40
	case domain.AmountMatchFXConverted:
		bd.AmountPoints = 35
	case domain.AmountMatchApproximate:
		bd.AmountPoints = 20
	default:
		return factors, Breakdown{}
	}

	bd.DatePoints = dateProximityPoints(factors.DateDiffDays)
	if factors.SameCompany {
		bd.CompanyPoints = 15
	}
	if factors.HasTransferKeywords {
		bd.KeywordPoints = 10
	}

	return factors, bd
}

// classifyAmounts decides how the two amounts line up. Cross-currency pairs
// can only match through a recorded exchange rate; a pair with no rate is a
// data-quality problem reported by Violations, never a match.
func classifyAmounts(c domain.TransferCandidate) domain.AmountMatchType {
	from := c.FromAmount.Abs()
	to := c.ToAmount.Abs()

	if c.CrossCurrency() {
		if !c.ExchangeRateUsed.Valid {
			return domain.AmountMatchNone
		}
		converted := from.Mul(c.ExchangeRateUsed.Decimal)
		if converted.Sub(to).Abs().LessThanOrEqual(exactTolerance) {
			return domain.AmountMatchFXConverted
		}
		return domain.AmountMatchNone
	}

	diff := from.Sub(to).Abs()
	switch {
	case diff.LessThanOrEqual(exactTolerance):
		return domain.AmountMatchExact
	case diff.LessThanOrEqual(approxTolerance):
		return domain.AmountMatchApproximate
	default:
		return domain.AmountMatchNone
	}
}

// dateProximityPoints rewards small day gaps between the two legs. Same day
// is ideal; the gap itself is reported unclamped on the factors.
func dateProximityPoints(days int) int {
	if days < 0 {
		days = -days
	}
	switch {
	case days == 0:
		return 35
	case days <= 1:
		return 30
	case days <= 3:
		return 22
	case days <= 7:
		return 12
	case days <= 14:
		return 5
	default:
		return 0
	}
}

// Violations returns the data-quality problems that must be surfaced for a
// candidate before its score can be trusted.
func Violations(c domain.TransferCandidate) []error {
	var out []error
	if c.CrossCurrency() && !c.ExchangeRateUsed.Valid {
		out = append(out, domain.ErrMissingExchangeRate)
	}
	return out
}

// RequiresManualReview reports whether the candidate must be reviewed by a
// person regardless of score. Cross-company movements always qualify.
func RequiresManualReview(c domain.TransferCandidate) bool {
	if c.CrossCompany {
		return true
	}
	return ClassifyBand(c.Confidence) != BandHigh
}
