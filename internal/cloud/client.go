// Package cloud provides HTTP clients for the two search organizations
// involved in a migration. Transport concerns (base URLs, authentication,
// wire envelopes) live here; the migration core only sees the SourceClient
// and TargetClient interfaces.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudmig/fieldsync/internal/domain"
)

// SourceClient reads field definitions and data sources from the source
// (V1) organization. All operations are read-only.
type SourceClient interface {
	Fields(ctx context.Context) ([]domain.FieldDefinition, error)
	Sources(ctx context.Context) ([]domain.DataSource, error)
}

// TargetClient reads and writes the target (V2) organization.
// CreateFields is all-or-nothing for the whole batch; AddCommonMapping
// creates a single rule.
type TargetClient interface {
	Fields(ctx context.Context) ([]domain.TargetField, error)
	CreateFields(ctx context.Context, fields []domain.TargetField) error
	Sources(ctx context.Context) ([]domain.DataSource, error)
	Mappings(ctx context.Context, sourceID string) ([]domain.MappingRule, error)
	AddCommonMapping(ctx context.Context, sourceID string, rebuild bool, rule domain.MappingRule) error
}

// authTransport attaches the organization's bearer token to every request.
type authTransport struct {
	token string
	next  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)
	clone.Header.Set("Accept", "application/json")
	return t.next.RoundTrip(clone)
}

func newHTTPClient(token string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &authTransport{
			token: token,
			next:  http.DefaultTransport,
		},
	}
}

// doJSON issues a request and decodes a JSON response body into out.
// A nil body sends no payload; a nil out discards the response body.
// Non-2xx responses are returned as errors carrying method, URL and
// status so remote failures are diagnosable at the top level.
func doJSON(ctx context.Context, client *http.Client, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %s", method, url, resp.Status)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, url, err)
	}
	return nil
}
