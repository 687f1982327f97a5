package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookledger/internal/domain"
)

func mustParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func createTempCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "statement_*.csv")
	require.NoError(t, err)
	defer tmpFile.Close()

	w := csv.NewWriter(tmpFile)
	require.NoError(t, w.WriteAll(rows))
	return tmpFile.Name()
}

func TestCSVStatementReader_ReadTransactions(t *testing.T) {
	header := []string{"id", "date", "description", "amount", "currency"}

	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Transaction
		wantErr  bool
	}{
		{
			name: "valid rows with direction from sign",
			csvData: [][]string{
				header,
				{"TX001", "2025-03-01", "PAYROLL DEPOSIT", "2500.00", "CAD"},
				{"TX002", "2025-03-02", "GROCERY MART", "-82.45", "CAD"},
			},
			expected: []domain.Transaction{
				{
					ID:          "TX001",
					AccountID:   "acct-1",
					Date:        mustParseDate("2025-03-01"),
					Description: "PAYROLL DEPOSIT",
					Amount:      decimal.NullDecimal{Decimal: decimal.RequireFromString("2500.00"), Valid: true},
					Direction:   domain.DirectionCredit,
					Currency:    "CAD",
				},
				{
					ID:          "TX002",
					AccountID:   "acct-1",
					Date:        mustParseDate("2025-03-02"),
					Description: "GROCERY MART",
					Amount:      decimal.NullDecimal{Decimal: decimal.RequireFromString("-82.45"), Valid: true},
					Direction:   domain.DirectionDebit,
					Currency:    "CAD",
				},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				header,
			},
			expected: nil,
		},
		{
			name: "unparseable amount keeps row flagged for review",
			csvData: [][]string{
				header,
				{"TX001", "2025-03-01", "SMUDGED ROW", "n/a", "CAD"},
			},
			expected: []domain.Transaction{
				{
					ID:          "TX001",
					AccountID:   "acct-1",
					Date:        mustParseDate("2025-03-01"),
					Description: "SMUDGED ROW",
					Currency:    "CAD",
					NeedsReview: true,
				},
			},
		},
		{
			name: "invalid date aborts the import",
			csvData: [][]string{
				header,
				{"TX001", "not-a-date", "ROW", "10.00", "CAD"},
			},
			wantErr: true,
		},
		{
			name: "short record aborts the import",
			csvData: [][]string{
				{"id", "date", "description"},
				{"TX001", "2025-03-01", "ROW"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempCSV(t, tt.csvData)

			reader := NewCSVStatementReader()
			got, err := reader.ReadTransactions(context.Background(), path, "acct-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVStatementReader_FileErrors(t *testing.T) {
	reader := NewCSVStatementReader()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := reader.ReadTransactions(ctx, "nonexistent_file.csv", "acct-1")
		assert.Error(t, err)
	})

	t.Run("empty file has no header", func(t *testing.T) {
		tmpFile, err := os.CreateTemp(t.TempDir(), "empty_*.csv")
		require.NoError(t, err)
		tmpFile.Close()

		_, err = reader.ReadTransactions(ctx, tmpFile.Name(), "acct-1")
		assert.Error(t, err)
	})
}
