// Package backup pushes a YAML snapshot of all records to a remote endpoint.
package backup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"

	"github.com/traitel/calmnight/internal/record"
)

// ErrNotConfigured is returned when no backup URL is set.
var ErrNotConfigured = errors.New("backup url is not configured")

// Snapshot is the document sent to the backup endpoint.
type Snapshot struct {
	ExportedAt time.Time        `yaml:"exported_at"`
	CheckIns   []record.CheckIn `yaml:"check_ins"`
	Journals   []record.Journal `yaml:"journals"`
}

// Receipt is what the endpoint answers after storing a snapshot.
type Receipt struct {
	ID       string `json:"id"`
	StoredAt string `json:"stored_at"`
}

// Client pushes snapshots with a bearer token.
type Client struct {
	httpClient *resty.Client
	url        string
}

// NewClient creates a Client for url. token may be empty.
func NewClient(url, token string) *Client {
	client := resty.New().
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	if token != "" {
		client.SetAuthToken(token)
	}
	return &Client{httpClient: client, url: url}
}

// Push uploads snapshot and returns the endpoint's receipt.
func (c *Client) Push(ctx context.Context, snapshot Snapshot) (Receipt, error) {
	if c.url == "" {
		return Receipt{}, ErrNotConfigured
	}

	body, err := yaml.Marshal(snapshot)
	if err != nil {
		return Receipt{}, fmt.Errorf("yaml.Marshal() > %w", err)
	}

	var receipt Receipt
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/yaml").
		SetHeader("Accept", "application/json").
		SetBody(body).
		SetResult(&receipt).
		Post(c.url)
	if err != nil {
		return Receipt{}, fmt.Errorf("client.R.Post > %w", err)
	}
	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusCreated {
		return Receipt{}, fmt.Errorf("unexpected status %d: %s", res.StatusCode(), res.String())
	}
	return receipt, nil
}
