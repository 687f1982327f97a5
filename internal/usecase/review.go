package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bookledger/internal/domain"
	"bookledger/internal/logger"
	"bookledger/internal/match"
)

// DefaultRejectReason is recorded when the reviewer rejects without giving
// a reason.
const DefaultRejectReason = "not an internal transfer"

// ReviewItem is one candidate prepared for display: the raw candidate, its
// confidence band, whether a person must look at it regardless of score,
// and any data-quality violations that must be shown alongside.
type ReviewItem struct {
	Candidate       domain.TransferCandidate `json:"candidate"`
	Band            match.Band               `json:"band"`
	MandatoryReview bool                     `json:"mandatory_review"`
	Violations      []string                 `json:"violations,omitempty"`
}

// ReviewUseCase drives the transfer candidate review workflow.
//
// No optimistic transitions: a candidate only changes state locally after
// the store mutation succeeded, so a failure leaves the last known-good
// state intact.
type ReviewUseCase struct {
	candidates CandidateRepository
	categories CategoryResolver
	clock      func() time.Time

	mu      sync.Mutex
	skipped map[string]struct{}
}

// NewReviewUseCase creates a new instance of the usecase.
func NewReviewUseCase(candidates CandidateRepository, categories CategoryResolver) *ReviewUseCase {
	return &ReviewUseCase{
		candidates: candidates,
		categories: categories,
		clock:      time.Now,
		skipped:    make(map[string]struct{}),
	}
}

// ListPending returns pending candidates prepared for review, excluding any
// the reviewer skipped since the last refresh.
func (uc *ReviewUseCase) ListPending(ctx context.Context, q domain.CandidateQuery) ([]ReviewItem, error) {
	q.Status = domain.CandidateStatusPending
	cands, err := uc.candidates.ListCandidates(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("could not list candidates: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]ReviewItem, 0, len(cands))
	for _, c := range cands {
		if _, ok := uc.skipped[c.ID]; ok {
			continue
		}
		item := ReviewItem{
			Candidate:       c,
			Band:            match.ClassifyBand(c.Confidence),
			MandatoryReview: match.RequiresManualReview(c),
		}
		for _, v := range match.Violations(c) {
			item.Violations = append(item.Violations, v.Error())
		}
		items = append(items, item)
	}
	return items, nil
}

// Confirm links the two legs of a candidate as one internal transfer. The
// candidate confirmation and both transaction updates are applied by the
// store as a single unit; a partial link is surfaced as a
// *domain.PartialLinkError so the reviewer knows the rows may now disagree.
func (uc *ReviewUseCase) Confirm(ctx context.Context, candidateID string) error {
	log := logger.FromContext(ctx)

	c, err := uc.candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("could not get candidate %s: %w", candidateID, err)
	}
	if err := guardPending(c); err != nil {
		return err
	}

	for _, v := range match.Violations(*c) {
		log.Warn().Str("candidate_id", candidateID).Err(v).Msg("confirming candidate with data-quality violation")
	}

	category, err := uc.categories.ResolveTransferCategory(ctx)
	if err != nil {
		return fmt.Errorf("could not resolve transfer category: %w", err)
	}

	params := domain.LinkTransferParams{
		CandidateID:       c.ID,
		FromTransactionID: c.FromTransactionID,
		ToTransactionID:   c.ToTransactionID,
		Category:          category.ID,
		ReviewedAt:        uc.clock(),
	}
	if err := uc.candidates.LinkTransfer(ctx, params); err != nil {
		var partial *domain.PartialLinkError
		if errors.As(err, &partial) {
			log.Error().Str("candidate_id", candidateID).
				Str("linked_side", partial.LinkedSide).
				Str("failed_side", partial.FailedSide).
				Msg("transfer link left inconsistent")
			return fmt.Errorf("confirm %s: %w", candidateID, err)
		}
		return fmt.Errorf("could not link transfer for candidate %s: %w", candidateID, err)
	}

	log.Info().Str("candidate_id", candidateID).Msg("transfer confirmed")
	return nil
}

// Reject marks the candidate rejected without touching either transaction.
func (uc *ReviewUseCase) Reject(ctx context.Context, candidateID, reason string) error {
	c, err := uc.candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("could not get candidate %s: %w", candidateID, err)
	}
	if err := guardPending(c); err != nil {
		return err
	}

	if reason == "" {
		reason = DefaultRejectReason
	}
	if err := uc.candidates.RejectCandidate(ctx, candidateID, reason, uc.clock()); err != nil {
		return fmt.Errorf("could not reject candidate %s: %w", candidateID, err)
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("candidate_id", candidateID).
		Str("reason", reason).
		Msg("transfer candidate rejected")
	return nil
}

// Skip hides the candidate from the active review list until the next
// refresh. Purely local; the candidate row is not mutated.
func (uc *ReviewUseCase) Skip(candidateID string) {
	uc.mu.Lock()
	uc.skipped[candidateID] = struct{}{}
	uc.mu.Unlock()
}

// Refresh clears the local skip set; skipped candidates reappear on the
// next list unless their underlying status changed.
func (uc *ReviewUseCase) Refresh() {
	uc.mu.Lock()
	uc.skipped = make(map[string]struct{})
	uc.mu.Unlock()
}

func guardPending(c *domain.TransferCandidate) error {
	switch c.Status {
	case domain.CandidateStatusPending:
		return nil
	case domain.CandidateStatusAutoLinked:
		return fmt.Errorf("candidate %s: %w", c.ID, domain.ErrCandidateReadOnly)
	default:
		return fmt.Errorf("candidate %s is %s: %w", c.ID, c.Status, domain.ErrInvalidTransition)
	}
}
