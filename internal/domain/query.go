package domain

import "fmt"

// CandidateQuery is an immutable set of filter parameters for listing
// transfer candidates. Passing the whole struct by value keeps fetch
// functions pure; Fingerprint keys cached results.
type CandidateQuery struct {
	Status        CandidateStatus
	AccountID     string
	MinConfidence int
	Limit         int
	Offset        int
}

// Fingerprint returns a stable cache key for the query.
func (q CandidateQuery) Fingerprint() string {
	return fmt.Sprintf("candidates|%s|%s|%d|%d|%d", q.Status, q.AccountID, q.MinConfidence, q.Limit, q.Offset)
}

// StatementQuery identifies one reconciliation read.
type StatementQuery struct {
	StatementID string
}

// Fingerprint returns a stable cache key for the query.
func (q StatementQuery) Fingerprint() string {
	return fmt.Sprintf("statement|%s", q.StatementID)
}
