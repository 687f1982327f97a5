package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"bookledger/internal/domain"
)

// ParsedStatement is the payload the remote parsing function returns for an
// uploaded statement file.
type ParsedStatement struct {
	Statement    domain.Statement     `json:"statement"`
	Transactions []domain.Transaction `json:"transactions"`
}

// ParseClient calls the hosted statement-parsing function. Requests retry
// with exponential backoff on network failures and 5xx responses; client
// errors are permanent.
type ParseClient struct {
	baseURL string
	client  *http.Client
	maxWait time.Duration
}

// NewParseClient creates a client for the parsing function at baseURL.
func NewParseClient(baseURL string) *ParseClient {
	return &ParseClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		maxWait: 2 * time.Minute,
	}
}

// ParseStatement uploads raw statement bytes for one account and returns
// the parsed statement metadata and transaction rows.
func (c *ParseClient) ParseStatement(ctx context.Context, accountID, filename string, contents []byte) (*ParsedStatement, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid parse function URL %s: %w", c.baseURL, err)
	}
	u.Path = "/parse-statement"
	params := url.Values{}
	params.Add("account_id", accountID)
	params.Add("filename", filename)
	u.RawQuery = params.Encode()

	var parsed *ParsedStatement
	operation := func() error {
		body, err := c.doPost(ctx, u.String(), contents)
		if err != nil {
			return err
		}
		var p ParsedStatement
		if err := json.Unmarshal(body, &p); err != nil {
			return backoff.Permanent(fmt.Errorf("could not decode parse response: %w", err))
		}
		parsed = &p
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.maxWait
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("parse statement for account %s: %w", accountID, err)
	}
	return parsed, nil
}

func (c *ParseClient) doPost(ctx context.Context, uri string, data []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(data))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err // network trouble, retry
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode >= 500:
		// they're having trouble, best to retry
		return nil, fmt.Errorf("got status code: %d (%s)", resp.StatusCode, string(body))
	default:
		return nil, backoff.Permanent(fmt.Errorf("got status code: %d (%s)", resp.StatusCode, string(body)))
	}
}
