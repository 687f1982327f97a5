package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookledger/internal/domain"
)

func seedLinkFixture(t *testing.T) *MemStore {
	t.Helper()
	s := NewMemStore()
	s.PutAccount(domain.BankAccount{ID: "acct-chk", AccountType: "checking", CompanyID: "co-1"})
	s.PutAccount(domain.BankAccount{ID: "acct-sav", AccountType: "savings", CompanyID: "co-1"})
	s.PutTransactions([]domain.Transaction{
		{
			ID:          "tx-out",
			AccountID:   "acct-chk",
			Date:        mustParseDate("2025-03-10"),
			Description: "TRANSFER TO SAVINGS",
			Amount:      decimal.NullDecimal{Decimal: decimal.RequireFromString("-500.00"), Valid: true},
			Direction:   domain.DirectionDebit,
			Currency:    "CAD",
			NeedsReview: true,
		},
		{
			ID:          "tx-in",
			AccountID:   "acct-sav",
			Date:        mustParseDate("2025-03-10"),
			Description: "TRANSFER FROM CHECKING",
			Amount:      decimal.NullDecimal{Decimal: decimal.RequireFromString("500.00"), Valid: true},
			Direction:   domain.DirectionCredit,
			Currency:    "CAD",
			NeedsReview: true,
		},
	})
	s.PutCandidate(domain.TransferCandidate{
		ID:                "cand-1",
		FromTransactionID: "tx-out",
		ToTransactionID:   "tx-in",
		FromAccountID:     "acct-chk",
		ToAccountID:       "acct-sav",
		Confidence:        95,
		Status:            domain.CandidateStatusPending,
		CreatedAt:         mustParseDate("2025-03-11"),
	})
	s.PutCategory(domain.Category{ID: "cat-xfer", Name: "Internal Transfer", Kind: domain.CategoryKindInternalTransfer})
	return s
}

func TestMemStore_LinkTransfer(t *testing.T) {
	ctx := context.Background()
	reviewedAt := mustParseDate("2025-03-12")
	const cat = "cat-xfer"

	t.Run("links both sides reciprocally", func(t *testing.T) {
		s := seedLinkFixture(t)

		err := s.LinkTransfer(ctx, domain.LinkTransferParams{
			CandidateID:       "cand-1",
			FromTransactionID: "tx-out",
			ToTransactionID:   "tx-in",
			Category:          cat,
			ReviewedAt:        reviewedAt,
		})
		require.NoError(t, err)

		from, err := s.GetTransaction(ctx, "tx-out")
		require.NoError(t, err)
		to, err := s.GetTransaction(ctx, "tx-in")
		require.NoError(t, err)

		assert.Equal(t, domain.LinkTypeTransferOut, from.LinkType)
		assert.Equal(t, domain.LinkTypeTransferIn, to.LinkType)
		assert.Equal(t, to.ID, from.LinkedTo)
		assert.Equal(t, from.ID, to.LinkedTo)
		assert.Equal(t, cat, from.Category)
		assert.Equal(t, cat, to.Category)
		assert.False(t, from.NeedsReview)
		assert.False(t, to.NeedsReview)

		c, err := s.GetCandidate(ctx, "cand-1")
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusConfirmed, c.Status)
		require.NotNil(t, c.ReviewedAt)
		assert.Equal(t, reviewedAt, *c.ReviewedAt)
	})

	t.Run("missing transaction leaves every row untouched", func(t *testing.T) {
		s := seedLinkFixture(t)

		err := s.LinkTransfer(ctx, domain.LinkTransferParams{
			CandidateID:       "cand-1",
			FromTransactionID: "tx-out",
			ToTransactionID:   "tx-gone",
			Category:          cat,
			ReviewedAt:        reviewedAt,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		from, err := s.GetTransaction(ctx, "tx-out")
		require.NoError(t, err)
		assert.Equal(t, domain.LinkTypeNone, from.LinkType)
		assert.Empty(t, from.LinkedTo)
		assert.True(t, from.NeedsReview)

		c, err := s.GetCandidate(ctx, "cand-1")
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusPending, c.Status)
	})

	t.Run("non-pending candidate is rejected", func(t *testing.T) {
		s := seedLinkFixture(t)
		s.PutCandidate(domain.TransferCandidate{
			ID:                "cand-done",
			FromTransactionID: "tx-out",
			ToTransactionID:   "tx-in",
			Status:            domain.CandidateStatusConfirmed,
		})

		err := s.LinkTransfer(ctx, domain.LinkTransferParams{
			CandidateID:       "cand-done",
			FromTransactionID: "tx-out",
			ToTransactionID:   "tx-in",
			Category:          cat,
			ReviewedAt:        reviewedAt,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestMemStore_RejectCandidate(t *testing.T) {
	ctx := context.Background()
	reviewedAt := mustParseDate("2025-03-12")

	t.Run("marks the candidate rejected with a reason", func(t *testing.T) {
		s := seedLinkFixture(t)

		err := s.RejectCandidate(ctx, "cand-1", "duplicate statement rows", reviewedAt)
		require.NoError(t, err)

		c, err := s.GetCandidate(ctx, "cand-1")
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusRejected, c.Status)
		assert.Equal(t, "duplicate statement rows", c.RejectReason)
		require.NotNil(t, c.ReviewedAt)
		assert.Equal(t, reviewedAt, *c.ReviewedAt)

		// Transactions stay linkable for future candidates.
		from, err := s.GetTransaction(ctx, "tx-out")
		require.NoError(t, err)
		assert.Equal(t, domain.LinkTypeNone, from.LinkType)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		s := NewMemStore()
		err := s.RejectCandidate(ctx, "nope", "", reviewedAt)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("already rejected", func(t *testing.T) {
		s := seedLinkFixture(t)
		require.NoError(t, s.RejectCandidate(ctx, "cand-1", "first pass", reviewedAt))

		err := s.RejectCandidate(ctx, "cand-1", "second pass", reviewedAt)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestMemStore_ListCandidates(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	s.PutCandidate(domain.TransferCandidate{ID: "c-b", FromAccountID: "a1", Confidence: 92, Status: domain.CandidateStatusPending, CreatedAt: mustParseDate("2025-03-02")})
	s.PutCandidate(domain.TransferCandidate{ID: "c-a", FromAccountID: "a1", Confidence: 75, Status: domain.CandidateStatusPending, CreatedAt: mustParseDate("2025-03-02")})
	s.PutCandidate(domain.TransferCandidate{ID: "c-c", FromAccountID: "a2", Confidence: 60, Status: domain.CandidateStatusPending, CreatedAt: mustParseDate("2025-03-01")})
	s.PutCandidate(domain.TransferCandidate{ID: "c-d", FromAccountID: "a1", Confidence: 99, Status: domain.CandidateStatusRejected, CreatedAt: mustParseDate("2025-03-03")})

	ids := func(cs []domain.TransferCandidate) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	t.Run("deterministic order, created then ID", func(t *testing.T) {
		got, err := s.ListCandidates(ctx, domain.CandidateQuery{})
		require.NoError(t, err)
		assert.Equal(t, []string{"c-c", "c-a", "c-b", "c-d"}, ids(got))
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := s.ListCandidates(ctx, domain.CandidateQuery{Status: domain.CandidateStatusPending})
		require.NoError(t, err)
		assert.Equal(t, []string{"c-c", "c-a", "c-b"}, ids(got))
	})

	t.Run("account filter matches either side", func(t *testing.T) {
		got, err := s.ListCandidates(ctx, domain.CandidateQuery{AccountID: "a2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c-c"}, ids(got))
	})

	t.Run("minimum confidence", func(t *testing.T) {
		got, err := s.ListCandidates(ctx, domain.CandidateQuery{MinConfidence: 90})
		require.NoError(t, err)
		assert.Equal(t, []string{"c-b", "c-d"}, ids(got))
	})

	t.Run("offset and limit", func(t *testing.T) {
		got, err := s.ListCandidates(ctx, domain.CandidateQuery{Offset: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"c-a", "c-b"}, ids(got))
	})

	t.Run("offset past the end", func(t *testing.T) {
		got, err := s.ListCandidates(ctx, domain.CandidateQuery{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemStore_ListStatementTransactions(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	s.PutStatement(domain.Statement{
		ID:          "stmt-1",
		AccountID:   "acct-1",
		PeriodStart: mustParseDate("2025-03-01"),
		PeriodEnd:   mustParseDate("2025-03-31"),
	})
	s.PutTransactions([]domain.Transaction{
		{ID: "t-2", AccountID: "acct-1", Date: mustParseDate("2025-03-05")},
		{ID: "t-1", AccountID: "acct-1", Date: mustParseDate("2025-03-05")},
		{ID: "t-0", AccountID: "acct-1", Date: mustParseDate("2025-03-02")},
		{ID: "t-other", AccountID: "acct-2", Date: mustParseDate("2025-03-02")},
		{ID: "t-late", AccountID: "acct-1", Date: mustParseDate("2025-04-01")},
	})

	got, err := s.ListStatementTransactions(ctx, "stmt-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t-0", got[0].ID)
	assert.Equal(t, "t-1", got[1].ID)
	assert.Equal(t, "t-2", got[2].ID)

	_, err = s.ListStatementTransactions(ctx, "stmt-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemStore_ResolveTransferCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("finds the internal transfer kind", func(t *testing.T) {
		s := NewMemStore()
		s.PutCategory(domain.Category{ID: "cat-food", Name: "Groceries", Kind: domain.CategoryKindStandard})
		s.PutCategory(domain.Category{ID: "cat-xfer", Name: "Internal Transfer", Kind: domain.CategoryKindInternalTransfer})

		got, err := s.ResolveTransferCategory(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cat-xfer", got.ID)
	})

	t.Run("empty taxonomy", func(t *testing.T) {
		s := NewMemStore()
		_, err := s.ResolveTransferCategory(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestJSONFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	file := NewJSONFile(path)

	src := seedLinkFixture(t)
	require.NoError(t, file.Write(src))

	loaded, err := file.Read()
	require.NoError(t, err)

	ctx := context.Background()
	acct, err := loaded.GetAccount(ctx, "acct-chk")
	require.NoError(t, err)
	assert.Equal(t, domain.PolarityAsset, acct.Polarity)

	tx, err := loaded.GetTransaction(ctx, "tx-out")
	require.NoError(t, err)
	assert.True(t, tx.Amount.Valid)
	assert.True(t, tx.Amount.Decimal.Equal(decimal.RequireFromString("-500.00")))

	c, err := loaded.GetCandidate(ctx, "cand-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CandidateStatusPending, c.Status)

	cat, err := loaded.ResolveTransferCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cat-xfer", cat.ID)
}

func TestJSONFile_ReadMissingFileYieldsEmptyStore(t *testing.T) {
	file := NewJSONFile(filepath.Join(t.TempDir(), "does-not-exist.json"))

	s, err := file.Read()
	require.NoError(t, err)

	got, err := s.ListCandidates(context.Background(), domain.CandidateQuery{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
