package migrate

import (
	"context"

	"github.com/cloudmig/fieldsync/internal/domain"
)

// MockSourceClient returns configured V1 data and records nothing; the
// source organization is read-only. This is exported for use in
// integration tests.
type MockSourceClient struct {
	FieldList  []domain.FieldDefinition
	SourceList []domain.DataSource
	FieldsErr  error
	SourcesErr error
}

// Fields returns the configured field list.
func (m *MockSourceClient) Fields(_ context.Context) ([]domain.FieldDefinition, error) {
	return m.FieldList, m.FieldsErr
}

// Sources returns the configured source list.
func (m *MockSourceClient) Sources(_ context.Context) ([]domain.DataSource, error) {
	return m.SourceList, m.SourcesErr
}

// MappingCall records a single AddCommonMapping invocation.
type MappingCall struct {
	SourceID string
	Rebuild  bool
	Rule     domain.MappingRule
}

// MockTargetClient returns configured V2 data and records every write.
// This is exported for use in integration tests.
type MockTargetClient struct {
	FieldList   []domain.TargetField
	SourceList  []domain.DataSource
	RulesByID   map[string][]domain.MappingRule
	FieldsErr   error
	CreateErr   error
	SourcesErr  error
	MappingsErr error
	AddErr      error

	CreateCalls  [][]domain.TargetField
	MappingCalls []MappingCall
}

// Fields returns the configured target field list.
func (m *MockTargetClient) Fields(_ context.Context) ([]domain.TargetField, error) {
	return m.FieldList, m.FieldsErr
}

// CreateFields records the batch and returns the configured error.
func (m *MockTargetClient) CreateFields(_ context.Context, fields []domain.TargetField) error {
	m.CreateCalls = append(m.CreateCalls, fields)
	return m.CreateErr
}

// Sources returns the configured target source list.
func (m *MockTargetClient) Sources(_ context.Context) ([]domain.DataSource, error) {
	return m.SourceList, m.SourcesErr
}

// Mappings returns the rules configured for the given source id.
func (m *MockTargetClient) Mappings(_ context.Context, sourceID string) ([]domain.MappingRule, error) {
	if m.MappingsErr != nil {
		return nil, m.MappingsErr
	}
	return m.RulesByID[sourceID], nil
}

// AddCommonMapping records the call and returns the configured error.
func (m *MockTargetClient) AddCommonMapping(_ context.Context, sourceID string, rebuild bool, rule domain.MappingRule) error {
	m.MappingCalls = append(m.MappingCalls, MappingCall{SourceID: sourceID, Rebuild: rebuild, Rule: rule})
	return m.AddErr
}
