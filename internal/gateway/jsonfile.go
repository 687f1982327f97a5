package gateway

import (
	"encoding/json"
	"fmt"
	"os"

	"bookledger/internal/domain"
)

// snapshot is the on-disk shape of a MemStore.
type snapshot struct {
	Accounts     []domain.BankAccount       `json:"accounts"`
	Statements   []domain.Statement         `json:"statements"`
	Transactions []domain.Transaction       `json:"transactions"`
	Candidates   []domain.TransferCandidate `json:"candidates"`
	Categories   []domain.Category          `json:"categories"`
}

// JSONFile persists a MemStore as a single JSON document, so the CLI can
// run end to end without a hosted backend.
type JSONFile struct {
	filename string
}

// NewJSONFile creates a file-backed snapshot at the given path.
func NewJSONFile(filename string) *JSONFile {
	return &JSONFile{filename: filename}
}

// Write serializes the whole store to the file.
func (f *JSONFile) Write(s *MemStore) error {
	s.mu.RLock()
	snap := snapshot{}
	for _, a := range s.accounts {
		snap.Accounts = append(snap.Accounts, a)
	}
	for _, st := range s.statements {
		snap.Statements = append(snap.Statements, st)
	}
	for _, tx := range s.transactions {
		snap.Transactions = append(snap.Transactions, tx)
	}
	for _, c := range s.candidates {
		snap.Candidates = append(snap.Candidates, c)
	}
	for _, c := range s.categories {
		snap.Categories = append(snap.Categories, c)
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal store snapshot: %w", err)
	}
	return os.WriteFile(f.filename, data, 0644)
}

// Read loads a store from the file. A missing file yields an empty store,
// so a fresh ledger file needs no setup step.
func (f *JSONFile) Read() (*MemStore, error) {
	s := NewMemStore()

	data, err := os.ReadFile(f.filename)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store snapshot %s: %w", f.filename, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("could not parse store snapshot %s: %w", f.filename, err)
	}

	for _, a := range snap.Accounts {
		s.PutAccount(a)
	}
	for _, st := range snap.Statements {
		s.PutStatement(st)
	}
	s.PutTransactions(snap.Transactions)
	for _, c := range snap.Candidates {
		s.PutCandidate(c)
	}
	for _, c := range snap.Categories {
		s.PutCategory(c)
	}
	return s, nil
}
