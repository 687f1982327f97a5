package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookledger/internal/domain"
	"bookledger/internal/usecase"
	mock_usecase "bookledger/internal/usecase/mocks"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestImportUseCase_ImportCSV(t *testing.T) {
	ctx := context.Background()
	account := &domain.BankAccount{ID: "acct-1", AccountType: "checking"}

	rows := []domain.Transaction{
		{ID: "t-1", AccountID: "acct-1", Date: day("2025-03-05"), Amount: amount("2500.00"), Direction: domain.DirectionCredit},
		{ID: "t-2", AccountID: "acct-1", Date: day("2025-03-02"), Amount: amount("-82.45"), Direction: domain.DirectionDebit},
		{ID: "t-3", AccountID: "acct-1", Date: day("2025-03-20"), NeedsReview: true},
	}

	t.Run("derives period and totals from the rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mLedger := mock_usecase.NewMockLedgerRepository(ctrl)
		mReader := mock_usecase.NewMockStatementReader(ctrl)
		mWriter := mock_usecase.NewMockLedgerWriter(ctrl)

		mLedger.EXPECT().GetAccount(ctx, "acct-1").Return(account, nil)
		mReader.EXPECT().ReadTransactions(ctx, "march.csv", "acct-1").Return(rows, nil)

		var saved domain.Statement
		mWriter.EXPECT().SaveStatement(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, st domain.Statement) error {
				saved = st
				return nil
			})
		mWriter.EXPECT().SaveTransactions(ctx, rows).Return(nil)

		uc := usecase.NewImportUseCase(mReader, mWriter, mLedger)
		st, err := uc.ImportCSV(ctx, usecase.ImportCSVParams{
			AccountID:      "acct-1",
			Path:           "march.csv",
			OpeningBalance: decimal.RequireFromString("1000.00"),
			ClosingBalance: decimal.RequireFromString("3417.55"),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, st.ID)
		assert.Equal(t, st.ID, saved.ID)
		assert.Equal(t, day("2025-03-02"), st.PeriodStart)
		assert.Equal(t, day("2025-03-20"), st.PeriodEnd)
		assert.True(t, st.TotalCredits.Equal(decimal.RequireFromString("2500.00")), st.TotalCredits.String())
		assert.True(t, st.TotalDebits.Equal(decimal.RequireFromString("82.45")), st.TotalDebits.String())
		assert.Equal(t, 3, st.TransactionCount)
		assert.False(t, st.ImportedAt.IsZero())
	})

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mLedger := mock_usecase.NewMockLedgerRepository(ctrl)
		mLedger.EXPECT().GetAccount(ctx, "acct-x").Return(nil, domain.ErrNotFound)

		uc := usecase.NewImportUseCase(mock_usecase.NewMockStatementReader(ctrl), mock_usecase.NewMockLedgerWriter(ctrl), mLedger)
		_, err := uc.ImportCSV(ctx, usecase.ImportCSVParams{AccountID: "acct-x", Path: "march.csv"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mLedger := mock_usecase.NewMockLedgerRepository(ctrl)
		mReader := mock_usecase.NewMockStatementReader(ctrl)
		mLedger.EXPECT().GetAccount(ctx, "acct-1").Return(account, nil)
		mReader.EXPECT().ReadTransactions(ctx, "empty.csv", "acct-1").Return(nil, nil)

		uc := usecase.NewImportUseCase(mReader, mock_usecase.NewMockLedgerWriter(ctrl), mLedger)
		_, err := uc.ImportCSV(ctx, usecase.ImportCSVParams{AccountID: "acct-1", Path: "empty.csv"})
		assert.ErrorContains(t, err, "no transaction rows")
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mLedger := mock_usecase.NewMockLedgerRepository(ctrl)
		mReader := mock_usecase.NewMockStatementReader(ctrl)
		mWriter := mock_usecase.NewMockLedgerWriter(ctrl)
		mLedger.EXPECT().GetAccount(ctx, "acct-1").Return(account, nil)
		mReader.EXPECT().ReadTransactions(ctx, "march.csv", "acct-1").Return(rows, nil)
		mWriter.EXPECT().SaveStatement(ctx, gomock.Any()).Return(errors.New("disk full"))

		uc := usecase.NewImportUseCase(mReader, mWriter, mLedger)
		_, err := uc.ImportCSV(ctx, usecase.ImportCSVParams{AccountID: "acct-1", Path: "march.csv"})
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestImportUseCase_ImportParsed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mLedger := mock_usecase.NewMockLedgerRepository(ctrl)
	mWriter := mock_usecase.NewMockLedgerWriter(ctrl)
	mLedger.EXPECT().GetAccount(ctx, "acct-1").Return(&domain.BankAccount{ID: "acct-1"}, nil)

	var savedTxs []domain.Transaction
	mWriter.EXPECT().SaveStatement(ctx, gomock.Any()).Return(nil)
	mWriter.EXPECT().SaveTransactions(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txs []domain.Transaction) error {
			savedTxs = txs
			return nil
		})

	uc := usecase.NewImportUseCase(mock_usecase.NewMockStatementReader(ctrl), mWriter, mLedger)
	st, err := uc.ImportParsed(ctx,
		domain.Statement{AccountID: "acct-1", PeriodStart: day("2025-03-01"), PeriodEnd: day("2025-03-31")},
		[]domain.Transaction{{ID: "t-1", Date: day("2025-03-04")}},
	)
	require.NoError(t, err)

	assert.NotEmpty(t, st.ID)
	assert.Equal(t, 1, st.TransactionCount)
	assert.False(t, st.ImportedAt.IsZero())
	require.Len(t, savedTxs, 1)
	assert.Equal(t, "acct-1", savedTxs[0].AccountID)
}
