package data

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"swarm-utilization/internal/model"
)

// RemoteClient fetches results tables published over HTTP(S).
type RemoteClient struct {
	Client *http.Client
}

// NewRemoteClient creates a client with the given request timeout (30s when zero).
func NewRemoteClient(timeout time.Duration) *RemoteClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &RemoteClient{Client: &http.Client{Timeout: timeout}}
}

// DefaultRemote is used by LoadDataset for http(s) dataset locations.
var DefaultRemote = NewRemoteClient(0)

// RemoteError is a non-200 answer from the dataset host.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch downloads and parses a results table. JSON is detected from the
// Content-Type header or a ".json" URL path; everything else is read as CSV.
func (c *RemoteClient) Fetch(ctx context.Context, rawURL string, opts CSVOptions) (*model.Dataset, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Code:       "DATASET_NOT_FOUND",
			Message:    fmt.Sprintf("dataset not found at %s", u.Redacted()),
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    fmt.Sprintf("access to %s denied (%s)", u.Redacted(), resp.Status),
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Code:       "REMOTE_ERROR",
			Message:    fmt.Sprintf("dataset host returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var rows []model.ResultRow
	if strings.Contains(resp.Header.Get("Content-Type"), "json") || strings.EqualFold(path.Ext(u.Path), ".json") {
		rows, err = ReadResultsJSON(resp.Body)
	} else {
		rows, err = ReadResultsCSV(resp.Body, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u.Redacted(), err)
	}
	return &model.Dataset{Source: rawURL, Rows: rows}, nil
}
