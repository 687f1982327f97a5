package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"bookledger/internal/domain"
)

// CSVStatementReader parses locally exported statement CSV files into
// transaction rows for one account. Expected columns:
// id,date,description,amount,currency.
type CSVStatementReader struct{}

// NewCSVStatementReader creates a new reader instance.
func NewCSVStatementReader() *CSVStatementReader {
	return &CSVStatementReader{}
}

// ReadTransactions reads and parses one statement CSV file. A row whose
// amount cannot be parsed is kept with no amount and flagged for review;
// one bad cell must not sink the whole import. Unparseable dates do abort,
// since ordering would be meaningless without them.
func (r *CSVStatementReader) ReadTransactions(ctx context.Context, path, accountID string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("short record in %s: %v", path, record)
		}

		date, err := time.Parse("2006-01-02", record[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse date '%s': %w", record[1], err)
		}

		tx := domain.Transaction{
			ID:          record[0],
			AccountID:   accountID,
			Date:        date,
			Description: record[2],
			Currency:    record[4],
		}

		amt, err := decimal.NewFromString(record[3])
		if err != nil {
			// Amount stays null; the reconciliation engine treats the row
			// as zero effect and flags it suspect.
			tx.NeedsReview = true
		} else {
			tx.Amount = decimal.NullDecimal{Decimal: amt, Valid: true}
			if amt.IsNegative() {
				tx.Direction = domain.DirectionDebit
			} else {
				tx.Direction = domain.DirectionCredit
			}
		}

		transactions = append(transactions, tx)
	}
	return transactions, nil
}
