package gateway

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bookledger/internal/domain"
	"bookledger/internal/usecase"
)

// MemStore is an in-memory ledger store, safe for concurrent use. It backs
// the CLI and tests; a hosted deployment would swap in a database-backed
// implementation of the same interfaces.
//
// Rows are value copies going in and out, so callers never share memory
// with the store. Candidates and linked transactions are never deleted.
type MemStore struct {
	mu           sync.RWMutex
	accounts     map[string]domain.BankAccount
	statements   map[string]domain.Statement
	transactions map[string]domain.Transaction
	candidates   map[string]domain.TransferCandidate
	categories   map[string]domain.Category
}

// check it meets the interfaces
var (
	_ usecase.LedgerRepository    = (*MemStore)(nil)
	_ usecase.CandidateRepository = (*MemStore)(nil)
	_ usecase.CategoryResolver    = (*MemStore)(nil)
	_ usecase.LedgerWriter        = (*MemStore)(nil)
	_ usecase.TransactionScanner  = (*MemStore)(nil)
	_ usecase.CandidateWriter     = (*MemStore)(nil)
)

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		accounts:     make(map[string]domain.BankAccount),
		statements:   make(map[string]domain.Statement),
		transactions: make(map[string]domain.Transaction),
		candidates:   make(map[string]domain.TransferCandidate),
		categories:   make(map[string]domain.Category),
	}
}

// PutAccount stores an account, resolving polarity from the account type if
// the caller left it unset.
func (s *MemStore) PutAccount(a domain.BankAccount) {
	if a.Polarity == "" {
		a.Polarity = domain.PolarityFromAccountType(a.AccountType)
	}
	s.mu.Lock()
	s.accounts[a.ID] = a
	s.mu.Unlock()
}

// PutStatement stores a statement.
func (s *MemStore) PutStatement(st domain.Statement) {
	s.mu.Lock()
	s.statements[st.ID] = st
	s.mu.Unlock()
}

// PutTransactions stores a batch of transactions.
func (s *MemStore) PutTransactions(txs []domain.Transaction) {
	s.mu.Lock()
	for _, tx := range txs {
		s.transactions[tx.ID] = tx
	}
	s.mu.Unlock()
}

// PutCandidate stores a transfer candidate.
func (s *MemStore) PutCandidate(c domain.TransferCandidate) {
	s.mu.Lock()
	s.candidates[c.ID] = c
	s.mu.Unlock()
}

// PutCategory stores a taxonomy entry.
func (s *MemStore) PutCategory(c domain.Category) {
	s.mu.Lock()
	s.categories[c.ID] = c
	s.mu.Unlock()
}

// SaveStatement implements usecase.LedgerWriter.
func (s *MemStore) SaveStatement(ctx context.Context, st domain.Statement) error {
	s.PutStatement(st)
	return nil
}

// SaveTransactions implements usecase.LedgerWriter.
func (s *MemStore) SaveTransactions(ctx context.Context, txs []domain.Transaction) error {
	s.PutTransactions(txs)
	return nil
}

// GetStatement implements usecase.LedgerRepository.
func (s *MemStore) GetStatement(ctx context.Context, id string) (*domain.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.statements[id]
	if !ok {
		return nil, fmt.Errorf("statement %s: %w", id, domain.ErrNotFound)
	}
	return &st, nil
}

// GetAccount implements usecase.LedgerRepository.
func (s *MemStore) GetAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return &a, nil
}

// GetTransaction returns one transaction row.
func (s *MemStore) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return &tx, nil
}

// ListStatementTransactions implements usecase.LedgerRepository. Rows come
// back in date order with ID tie-break, matching the reconciliation order.
func (s *MemStore) ListStatementTransactions(ctx context.Context, statementID string) ([]domain.Transaction, error) {
	st, err := s.GetStatement(ctx, statementID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range s.transactions {
		if tx.AccountID != st.AccountID {
			continue
		}
		if tx.Date.Before(st.PeriodStart) || tx.Date.After(st.PeriodEnd) {
			continue
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListUnlinkedTransactions implements usecase.TransactionScanner. Rows with
// no link and a parseable amount are eligible for transfer detection.
func (s *MemStore) ListUnlinkedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range s.transactions {
		if tx.Linked() || !tx.Amount.Valid {
			continue
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// SaveCandidate implements usecase.CandidateWriter.
func (s *MemStore) SaveCandidate(ctx context.Context, c domain.TransferCandidate) error {
	s.PutCandidate(c)
	return nil
}

// GetCandidate implements usecase.CandidateRepository.
func (s *MemStore) GetCandidate(ctx context.Context, id string) (*domain.TransferCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

// ListCandidates implements usecase.CandidateRepository with deterministic
// ordering (created time, then ID).
func (s *MemStore) ListCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.TransferCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.TransferCandidate
	for _, c := range s.candidates {
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if q.AccountID != "" && c.FromAccountID != q.AccountID && c.ToAccountID != q.AccountID {
			continue
		}
		if c.Confidence < q.MinConfidence {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return nil, nil
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

// RejectCandidate implements usecase.CandidateRepository. The linked
// transactions are untouched.
func (s *MemStore) RejectCandidate(ctx context.Context, id, reason string, reviewedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}
	if c.Status != domain.CandidateStatusPending {
		return fmt.Errorf("candidate %s is %s: %w", id, c.Status, domain.ErrInvalidTransition)
	}

	c.Status = domain.CandidateStatusRejected
	c.RejectReason = reason
	c.ReviewedAt = &reviewedAt
	s.candidates[id] = c
	return nil
}

// LinkTransfer implements usecase.CandidateRepository as one atomic
// multi-row update: all preconditions are checked before any row changes,
// so the store never produces a partial link.
func (s *MemStore) LinkTransfer(ctx context.Context, p domain.LinkTransferParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[p.CandidateID]
	if !ok {
		return fmt.Errorf("candidate %s: %w", p.CandidateID, domain.ErrNotFound)
	}
	if c.Status != domain.CandidateStatusPending {
		return fmt.Errorf("candidate %s is %s: %w", p.CandidateID, c.Status, domain.ErrInvalidTransition)
	}
	from, ok := s.transactions[p.FromTransactionID]
	if !ok {
		return fmt.Errorf("transaction %s: %w", p.FromTransactionID, domain.ErrNotFound)
	}
	to, ok := s.transactions[p.ToTransactionID]
	if !ok {
		return fmt.Errorf("transaction %s: %w", p.ToTransactionID, domain.ErrNotFound)
	}

	reviewedAt := p.ReviewedAt
	c.Status = domain.CandidateStatusConfirmed
	c.ReviewedAt = &reviewedAt

	from.LinkedTo = to.ID
	from.LinkType = domain.LinkTypeTransferOut
	from.Category = p.Category
	from.NeedsReview = false

	to.LinkedTo = from.ID
	to.LinkType = domain.LinkTypeTransferIn
	to.Category = p.Category
	to.NeedsReview = false

	s.candidates[c.ID] = c
	s.transactions[from.ID] = from
	s.transactions[to.ID] = to
	return nil
}

// ResolveTransferCategory implements usecase.CategoryResolver by scanning
// the taxonomy for the internal-transfer kind.
func (s *MemStore) ResolveTransferCategory(ctx context.Context) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Kind == domain.CategoryKindInternalTransfer {
			return c, nil
		}
	}
	return domain.Category{}, fmt.Errorf("internal transfer category: %w", domain.ErrNotFound)
}
