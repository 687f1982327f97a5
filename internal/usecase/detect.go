package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookledger/internal/domain"
	"bookledger/internal/logger"
	"bookledger/internal/match"
)

// detectWindowDays bounds how far apart the two legs of a transfer may post.
// Beyond it the date signal scores zero anyway.
const detectWindowDays = 14

// DetectUseCase scans unlinked transactions for debit/credit pairs that look
// like the two legs of one internal fund movement and records them as
// pending candidates.
//
// Detection here only pairs same-currency legs: a cross-currency pairing
// needs an exchange rate, which only the upstream feed can attach.
type DetectUseCase struct {
	ledger     LedgerRepository
	scanner    TransactionScanner
	candidates CandidateRepository
	writer     CandidateWriter

	clock func() time.Time
	newID func() string
}

// NewDetectUseCase creates a new instance of the usecase.
func NewDetectUseCase(ledger LedgerRepository, scanner TransactionScanner, candidates CandidateRepository, writer CandidateWriter) *DetectUseCase {
	return &DetectUseCase{
		ledger:     ledger,
		scanner:    scanner,
		candidates: candidates,
		writer:     writer,
		clock:      time.Now,
		newID:      uuid.NewString,
	}
}

// Detect pairs unlinked transactions, scores each pairing, and persists the
// ones whose amounts match. Pairs already covered by an existing candidate
// are left alone, whatever state that candidate is in.
func (uc *DetectUseCase) Detect(ctx context.Context) ([]domain.TransferCandidate, error) {
	txs, err := uc.scanner.ListUnlinkedTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not detect transfers: %w", err)
	}

	known, err := uc.knownPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not detect transfers: %w", err)
	}

	accounts := make(map[string]*domain.BankAccount)
	account := func(id string) (*domain.BankAccount, error) {
		if a, ok := accounts[id]; ok {
			return a, nil
		}
		a, err := uc.ledger.GetAccount(ctx, id)
		if err != nil {
			return nil, err
		}
		accounts[id] = a
		return a, nil
	}

	var found []domain.TransferCandidate
	for _, from := range txs {
		if from.Direction != domain.DirectionDebit {
			continue
		}
		for _, to := range txs {
			if to.Direction != domain.DirectionCredit || to.AccountID == from.AccountID {
				continue
			}
			if from.Currency != to.Currency {
				continue
			}
			if daysApart(from.Date, to.Date) > detectWindowDays {
				continue
			}
			if _, ok := known[from.ID+"|"+to.ID]; ok {
				continue
			}

			fromAcct, err := account(from.AccountID)
			if err != nil {
				return nil, fmt.Errorf("could not detect transfers: %w", err)
			}
			toAcct, err := account(to.AccountID)
			if err != nil {
				return nil, fmt.Errorf("could not detect transfers: %w", err)
			}

			c := domain.TransferCandidate{
				ID:                uc.newID(),
				FromTransactionID: from.ID,
				ToTransactionID:   to.ID,
				FromAccountID:     from.AccountID,
				ToAccountID:       to.AccountID,
				FromAmount:        from.Effect(),
				ToAmount:          to.Effect(),
				FromCurrency:      from.Currency,
				ToCurrency:        to.Currency,
				CrossCompany:      fromAcct.CompanyID != toAcct.CompanyID,
				Status:            domain.CandidateStatusPending,
				CreatedAt:         uc.clock(),
			}
			c.Factors.DateDiffDays = daysApart(from.Date, to.Date)

			factors, breakdown := match.Score(c, from.Description, to.Description)
			if !factors.AmountMatch {
				continue
			}
			c.Factors = factors
			c.Confidence = breakdown.Total()

			if err := uc.writer.SaveCandidate(ctx, c); err != nil {
				return nil, fmt.Errorf("could not save candidate for %s/%s: %w", from.ID, to.ID, err)
			}
			known[from.ID+"|"+to.ID] = struct{}{}
			found = append(found, c)
		}
	}

	log := logger.FromContext(ctx)
	log.Info().
		Int("scanned", len(txs)).
		Int("candidates", len(found)).
		Msg("transfer detection finished")
	return found, nil
}

func (uc *DetectUseCase) knownPairs(ctx context.Context) (map[string]struct{}, error) {
	existing, err := uc.candidates.ListCandidates(ctx, domain.CandidateQuery{})
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		known[c.FromTransactionID+"|"+c.ToTransactionID] = struct{}{}
	}
	return known, nil
}

func daysApart(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}
