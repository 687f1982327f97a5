package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookledger/internal/domain"
)

func newTestParseClient(baseURL string) *ParseClient {
	c := NewParseClient(baseURL)
	c.maxWait = 2 * time.Second
	return c
}

func TestParseClient_ParseStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the parsed statement", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/parse-statement", r.URL.Path)
			assert.Equal(t, "acct-1", r.URL.Query().Get("account_id"))
			assert.Equal(t, "march.pdf", r.URL.Query().Get("filename"))

			json.NewEncoder(w).Encode(ParsedStatement{
				Statement:    domain.Statement{ID: "stmt-1", AccountID: "acct-1"},
				Transactions: []domain.Transaction{{ID: "tx-1", AccountID: "acct-1"}},
			})
		}))
		defer srv.Close()

		got, err := newTestParseClient(srv.URL).ParseStatement(ctx, "acct-1", "march.pdf", []byte("%PDF"))
		require.NoError(t, err)
		assert.Equal(t, "stmt-1", got.Statement.ID)
		require.Len(t, got.Transactions, 1)
		assert.Equal(t, "tx-1", got.Transactions[0].ID)
	})

	t.Run("retries server errors until success", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				http.Error(w, "try later", http.StatusServiceUnavailable)
				return
			}
			json.NewEncoder(w).Encode(ParsedStatement{Statement: domain.Statement{ID: "stmt-1"}})
		}))
		defer srv.Close()

		got, err := newTestParseClient(srv.URL).ParseStatement(ctx, "acct-1", "march.pdf", nil)
		require.NoError(t, err)
		assert.Equal(t, "stmt-1", got.Statement.ID)
		assert.Equal(t, 3, calls)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			http.Error(w, "unsupported file type", http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		_, err := newTestParseClient(srv.URL).ParseStatement(ctx, "acct-1", "march.zip", nil)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("malformed response body is permanent", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := newTestParseClient(srv.URL).ParseStatement(ctx, "acct-1", "march.pdf", nil)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
