package cloud

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cloudmig/fieldsync/internal/domain"
)

// V2Client talks to a target (V2) organization over its REST API.
type V2Client struct {
	baseURL string
	orgID   string
	http    *http.Client
}

// NewV2Client creates a client for the given organization. baseURL is the
// V2 API root for the deployment environment, without a trailing slash.
func NewV2Client(baseURL, orgID, accessToken string, timeout time.Duration) *V2Client {
	return &V2Client{
		baseURL: baseURL,
		orgID:   orgID,
		http:    newHTTPClient(accessToken, timeout),
	}
}

// Fields returns every field definition in the organization. The V2 API
// wraps the list in an "items" envelope.
func (c *V2Client) Fields(ctx context.Context) ([]domain.TargetField, error) {
	var envelope struct {
		Items []domain.TargetField `json:"items"`
	}
	url := fmt.Sprintf("%s/%s/indexes/fields", c.baseURL, c.orgID)
	if err := doJSON(ctx, c.http, http.MethodGet, url, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// CreateFields creates all given fields in one batch call. The call is
// all-or-nothing on the platform side. Callers must not invoke it with an
// empty batch.
func (c *V2Client) CreateFields(ctx context.Context, fields []domain.TargetField) error {
	url := fmt.Sprintf("%s/%s/indexes/fields/batch/create", c.baseURL, c.orgID)
	return doJSON(ctx, c.http, http.MethodPost, url, fields, nil)
}

// Sources returns every data source in the organization as a bare array.
func (c *V2Client) Sources(ctx context.Context) ([]domain.DataSource, error) {
	var sources []domain.DataSource
	url := fmt.Sprintf("%s/%s/sources", c.baseURL, c.orgID)
	if err := doJSON(ctx, c.http, http.MethodGet, url, nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// Mappings returns the common mapping rules configured on a data source.
// The V2 API nests the rules under a "common" envelope.
func (c *V2Client) Mappings(ctx context.Context, sourceID string) ([]domain.MappingRule, error) {
	var envelope struct {
		Common struct {
			Rules []domain.MappingRule `json:"rules"`
		} `json:"common"`
	}
	url := fmt.Sprintf("%s/%s/sources/%s/mappings", c.baseURL, c.orgID, sourceID)
	if err := doJSON(ctx, c.http, http.MethodGet, url, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Common.Rules, nil
}

// AddCommonMapping creates a single common mapping rule on a data source.
// rebuild controls whether the platform rebuilds the source after the
// change.
func (c *V2Client) AddCommonMapping(ctx context.Context, sourceID string, rebuild bool, rule domain.MappingRule) error {
	url := fmt.Sprintf("%s/%s/sources/%s/mappings/common?rebuild=%s",
		c.baseURL, c.orgID, sourceID, strconv.FormatBool(rebuild))
	return doJSON(ctx, c.http, http.MethodPost, url, rule, nil)
}
