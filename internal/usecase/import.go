package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookledger/internal/domain"
	"bookledger/internal/logger"
)

// ImportCSVParams describes one local CSV import. The file carries only
// transaction rows, so the caller supplies the balances the bank reported.
type ImportCSVParams struct {
	AccountID      string
	Path           string
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// ImportUseCase turns statement files into persisted statements and rows.
type ImportUseCase struct {
	reader StatementReader
	writer LedgerWriter
	ledger LedgerRepository

	clock func() time.Time
	newID func() string
}

// NewImportUseCase creates a new instance of the usecase.
func NewImportUseCase(reader StatementReader, writer LedgerWriter, ledger LedgerRepository) *ImportUseCase {
	return &ImportUseCase{
		reader: reader,
		writer: writer,
		ledger: ledger,
		clock:  time.Now,
		newID:  uuid.NewString,
	}
}

// ImportCSV reads one statement CSV for an account and persists a statement
// covering the rows. The period is derived from the row dates, and credit
// and debit totals are recomputed from the rows.
func (uc *ImportUseCase) ImportCSV(ctx context.Context, p ImportCSVParams) (*domain.Statement, error) {
	if _, err := uc.ledger.GetAccount(ctx, p.AccountID); err != nil {
		return nil, fmt.Errorf("could not import statement: %w", err)
	}

	txs, err := uc.reader.ReadTransactions(ctx, p.Path, p.AccountID)
	if err != nil {
		return nil, fmt.Errorf("could not import statement: %w", err)
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("could not import statement: %s has no transaction rows", p.Path)
	}

	st := domain.Statement{
		ID:             uc.newID(),
		AccountID:      p.AccountID,
		PeriodStart:    txs[0].Date,
		PeriodEnd:      txs[0].Date,
		OpeningBalance: p.OpeningBalance,
		ClosingBalance: p.ClosingBalance,
		ImportedAt:     uc.clock(),
	}
	for _, tx := range txs {
		if tx.Date.Before(st.PeriodStart) {
			st.PeriodStart = tx.Date
		}
		if tx.Date.After(st.PeriodEnd) {
			st.PeriodEnd = tx.Date
		}
		if tx.Amount.Valid {
			switch tx.Direction {
			case domain.DirectionCredit:
				st.TotalCredits = st.TotalCredits.Add(tx.Effect())
			case domain.DirectionDebit:
				st.TotalDebits = st.TotalDebits.Add(tx.Effect())
			}
		}
	}
	st.TransactionCount = len(txs)

	if err := uc.persist(ctx, st, txs); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("statement_id", st.ID).
		Str("account_id", st.AccountID).
		Int("transactions", st.TransactionCount).
		Msg("statement imported")
	return &st, nil
}

// ImportParsed persists a statement that a remote parsing function already
// produced, stamping the import time and row count.
func (uc *ImportUseCase) ImportParsed(ctx context.Context, st domain.Statement, txs []domain.Transaction) (*domain.Statement, error) {
	if _, err := uc.ledger.GetAccount(ctx, st.AccountID); err != nil {
		return nil, fmt.Errorf("could not import statement: %w", err)
	}
	if st.ID == "" {
		st.ID = uc.newID()
	}
	st.TransactionCount = len(txs)
	st.ImportedAt = uc.clock()

	for i := range txs {
		txs[i].AccountID = st.AccountID
	}

	if err := uc.persist(ctx, st, txs); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("statement_id", st.ID).
		Str("account_id", st.AccountID).
		Int("transactions", st.TransactionCount).
		Msg("parsed statement imported")
	return &st, nil
}

func (uc *ImportUseCase) persist(ctx context.Context, st domain.Statement, txs []domain.Transaction) error {
	if err := uc.writer.SaveStatement(ctx, st); err != nil {
		return fmt.Errorf("could not save statement %s: %w", st.ID, err)
	}
	if err := uc.writer.SaveTransactions(ctx, txs); err != nil {
		return fmt.Errorf("could not save transactions for statement %s: %w", st.ID, err)
	}
	return nil
}
