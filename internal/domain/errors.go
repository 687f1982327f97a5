package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a candidate status change is not
	// allowed from its current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCandidateReadOnly is returned for user actions on auto_linked
	// candidates, which only the detection process may produce.
	ErrCandidateReadOnly = errors.New("candidate is read-only")

	// ErrMissingExchangeRate marks a cross-currency candidate with no
	// exchange rate recorded. A data-quality violation, not a match.
	ErrMissingExchangeRate = errors.New("cross-currency candidate has no exchange rate")
)

// PartialLinkError reports that a transfer confirmation updated one
// transaction but not the other, leaving an asymmetric link graph. It is
// surfaced distinctly so the reviewer knows the two rows may now disagree,
// instead of being folded into a generic save failure.
type PartialLinkError struct {
	CandidateID string
	LinkedSide  string // transaction that was updated
	FailedSide  string // transaction the update failed on
	Err         error
}

func (e *PartialLinkError) Error() string {
	return fmt.Sprintf("transfer link for candidate %s is inconsistent: %s updated, %s failed: %v",
		e.CandidateID, e.LinkedSide, e.FailedSide, e.Err)
}

func (e *PartialLinkError) Unwrap() error {
	return e.Err
}
