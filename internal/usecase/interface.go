package usecase

import (
	"context"
	"time"

	"bookledger/internal/domain"
)

// The usecase layer depends on these interfaces, not on a concrete store.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go

// LedgerRepository provides read access to statements, accounts and their
// transactions.
type LedgerRepository interface {
	GetStatement(ctx context.Context, id string) (*domain.Statement, error)
	GetAccount(ctx context.Context, id string) (*domain.BankAccount, error)
	ListStatementTransactions(ctx context.Context, statementID string) ([]domain.Transaction, error)
}

// CandidateRepository provides access to transfer candidates and the linked
// mutations the review workflow applies. LinkTransfer must apply the
// candidate confirmation and both transaction updates as one unit; an
// implementation that cannot guarantee that must report the asymmetry with a
// *domain.PartialLinkError.
type CandidateRepository interface {
	GetCandidate(ctx context.Context, id string) (*domain.TransferCandidate, error)
	ListCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.TransferCandidate, error)
	RejectCandidate(ctx context.Context, id, reason string, reviewedAt time.Time) error
	LinkTransfer(ctx context.Context, p domain.LinkTransferParams) error
}

// CategoryResolver resolves the canonical internal-transfer category applied
// to both legs of a confirmed transfer.
type CategoryResolver interface {
	ResolveTransferCategory(ctx context.Context) (domain.Category, error)
}

// LedgerWriter persists imported statements and their transaction rows.
type LedgerWriter interface {
	SaveStatement(ctx context.Context, st domain.Statement) error
	SaveTransactions(ctx context.Context, txs []domain.Transaction) error
}

// StatementReader reads transaction rows from a local statement file.
type StatementReader interface {
	ReadTransactions(ctx context.Context, path, accountID string) ([]domain.Transaction, error)
}

// TransactionScanner lists transaction rows eligible for transfer detection.
type TransactionScanner interface {
	ListUnlinkedTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// CandidateWriter persists detected transfer candidates.
type CandidateWriter interface {
	SaveCandidate(ctx context.Context, c domain.TransferCandidate) error
}
