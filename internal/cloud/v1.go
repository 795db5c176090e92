package cloud

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudmig/fieldsync/internal/domain"
)

// V1Client talks to a source (V1) organization over its REST API.
type V1Client struct {
	baseURL string
	orgID   string
	http    *http.Client
}

// NewV1Client creates a client for the given organization. baseURL is the
// V1 API root for the deployment environment, without a trailing slash.
func NewV1Client(baseURL, orgID, accessToken string, timeout time.Duration) *V1Client {
	return &V1Client{
		baseURL: baseURL,
		orgID:   orgID,
		http:    newHTTPClient(accessToken, timeout),
	}
}

// Fields returns every field definition in the organization. The V1 API
// returns a bare array, fully materialized.
func (c *V1Client) Fields(ctx context.Context) ([]domain.FieldDefinition, error) {
	var fields []domain.FieldDefinition
	url := fmt.Sprintf("%s/organizations/%s/fields", c.baseURL, c.orgID)
	if err := doJSON(ctx, c.http, http.MethodGet, url, nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Sources returns every data source in the organization. The V1 API wraps
// the list in a "sources" envelope.
func (c *V1Client) Sources(ctx context.Context) ([]domain.DataSource, error) {
	var envelope struct {
		Sources []domain.DataSource `json:"sources"`
	}
	url := fmt.Sprintf("%s/organizations/%s/sources", c.baseURL, c.orgID)
	if err := doJSON(ctx, c.http, http.MethodGet, url, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Sources, nil
}
