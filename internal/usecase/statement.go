package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"bookledger/internal/domain"
	"bookledger/internal/logger"
	"bookledger/internal/reconcile"
)

// StatementReport is the outcome of reconciling one statement period.
type StatementReport struct {
	StatementID string          `json:"statement_id"`
	AccountID   string          `json:"account_id"`
	Polarity    domain.Polarity `json:"polarity"`

	Result       reconcile.Result `json:"result"`
	SuspectCount int              `json:"suspect_count"`

	// Credit/debit totals recomputed from the rows, checked against the
	// totals the statement reported.
	CreditTotal        decimal.Decimal `json:"credit_total"`
	DebitTotal         decimal.Decimal `json:"debit_total"`
	CreditTotalMatches bool            `json:"credit_total_matches"`
	DebitTotalMatches  bool            `json:"debit_total_matches"`
}

// StatementUseCase orchestrates statement reconciliation: fetch the rows,
// run the balance engine, aggregate the report.
//
// Reads are idempotent, so results are cached by query fingerprint; Refresh
// drops the cache and the next read re-fetches.
type StatementUseCase struct {
	repo LedgerRepository

	mu    sync.Mutex
	cache map[string]*StatementReport
}

// NewStatementUseCase creates a new instance of the usecase.
func NewStatementUseCase(repo LedgerRepository) *StatementUseCase {
	return &StatementUseCase{
		repo:  repo,
		cache: make(map[string]*StatementReport),
	}
}

var totalTolerance = decimal.New(2, -2)

// Reconcile recomputes the running balances for one statement and reports
// the discrepancy against its reported closing balance.
func (uc *StatementUseCase) Reconcile(ctx context.Context, statementID string) (*StatementReport, error) {
	q := domain.StatementQuery{StatementID: statementID}

	uc.mu.Lock()
	if cached, ok := uc.cache[q.Fingerprint()]; ok {
		uc.mu.Unlock()
		return cached, nil
	}
	uc.mu.Unlock()

	log := logger.FromContext(ctx)

	stmt, err := uc.repo.GetStatement(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("could not get statement %s: %w", statementID, err)
	}

	acct, err := uc.repo.GetAccount(ctx, stmt.AccountID)
	if err != nil {
		return nil, fmt.Errorf("could not get account %s: %w", stmt.AccountID, err)
	}

	txs, err := uc.repo.ListStatementTransactions(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions for statement %s: %w", statementID, err)
	}

	result := reconcile.Reconcile(stmt.OpeningBalance, txs, acct.Polarity, stmt.ClosingBalance)

	report := &StatementReport{
		StatementID:  statementID,
		AccountID:    stmt.AccountID,
		Polarity:     acct.Polarity,
		Result:       result,
		SuspectCount: result.SuspectCount(),
	}

	for _, tx := range txs {
		switch tx.Direction {
		case domain.DirectionCredit:
			report.CreditTotal = report.CreditTotal.Add(tx.Effect())
		case domain.DirectionDebit:
			report.DebitTotal = report.DebitTotal.Add(tx.Effect())
		}
	}
	report.CreditTotal = report.CreditTotal.Round(2)
	report.DebitTotal = report.DebitTotal.Round(2)
	report.CreditTotalMatches = report.CreditTotal.Sub(stmt.TotalCredits).Abs().LessThan(totalTolerance)
	report.DebitTotalMatches = report.DebitTotal.Sub(stmt.TotalDebits).Abs().LessThan(totalTolerance)

	log.Info().
		Str("statement_id", statementID).
		Str("discrepancy", result.Discrepancy.String()).
		Bool("balanced", result.Balanced).
		Int("suspect_rows", report.SuspectCount).
		Msg("statement reconciled")

	uc.mu.Lock()
	uc.cache[q.Fingerprint()] = report
	uc.mu.Unlock()

	return report, nil
}

// Refresh drops all cached reports; subsequent reads hit the store again.
func (uc *StatementUseCase) Refresh() {
	uc.mu.Lock()
	uc.cache = make(map[string]*StatementReport)
	uc.mu.Unlock()
}
