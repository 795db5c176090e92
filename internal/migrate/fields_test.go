package migrate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudmig/fieldsync/internal/domain"
)

func groupOf(fields ...domain.FieldDefinition) domain.UniqueFieldGroup {
	return domain.UniqueFieldGroup{Name: fields[0].Name, Members: fields}
}

func TestMigrator_CreatesMissingField(t *testing.T) {
	target := &MockTargetClient{}
	migrator := NewMigrator(target, discardReporter(), false)

	err := migrator.Run(context.Background(), []domain.UniqueFieldGroup{groupOf(userField("Region", "src-1"))})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(target.CreateCalls) != 1 {
		t.Fatalf("Expected exactly one batch-create call, got %d", len(target.CreateCalls))
	}
	batch := target.CreateCalls[0]
	if len(batch) != 1 || batch[0].Name != "Region" {
		t.Errorf("Expected batch with field 'Region', got %+v", batch)
	}
}

func TestMigrator_Idempotent(t *testing.T) {
	target := &MockTargetClient{
		FieldList: []domain.TargetField{{Name: "Region", Type: "STRING"}},
	}
	var buf bytes.Buffer
	migrator := NewMigrator(target, NewReporter(&buf), false)

	err := migrator.Run(context.Background(), []domain.UniqueFieldGroup{groupOf(userField("Region", "src-1"))})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(target.CreateCalls) != 0 {
		t.Errorf("Expected no create call when field exists, got %d", len(target.CreateCalls))
	}
	if !strings.Contains(buf.String(), "SKIPPING FIELD 'Region'") {
		t.Errorf("Expected already-exists diagnostic, got: %s", buf.String())
	}
}

func TestMigrator_FieldNameComparisonIsCaseSensitive(t *testing.T) {
	target := &MockTargetClient{
		FieldList: []domain.TargetField{{Name: "region", Type: "STRING"}},
	}
	migrator := NewMigrator(target, discardReporter(), false)

	err := migrator.Run(context.Background(), []domain.UniqueFieldGroup{groupOf(userField("Region", "src-1"))})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(target.CreateCalls) != 1 {
		t.Errorf("Expected 'Region' created despite existing 'region', got %d calls", len(target.CreateCalls))
	}
}

func TestMigrator_SingleBatchForAllFields(t *testing.T) {
	target := &MockTargetClient{}
	migrator := NewMigrator(target, discardReporter(), false)

	groups := []domain.UniqueFieldGroup{
		groupOf(userField("Region", "src-1")),
		groupOf(userField("Status", "src-1")),
		groupOf(userField("Priority", "src-2")),
	}
	if err := migrator.Run(context.Background(), groups); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(target.CreateCalls) != 1 {
		t.Fatalf("Expected one batch call, got %d", len(target.CreateCalls))
	}
	if len(target.CreateCalls[0]) != 3 {
		t.Errorf("Expected 3 fields in the batch, got %d", len(target.CreateCalls[0]))
	}
}

func TestMigrator_NoCallWhenNothingToCreate(t *testing.T) {
	target := &MockTargetClient{}
	migrator := NewMigrator(target, discardReporter(), false)

	if err := migrator.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(target.CreateCalls) != 0 {
		t.Errorf("Expected no create call for empty batch, got %d", len(target.CreateCalls))
	}
}

func TestMigrator_DryRun(t *testing.T) {
	target := &MockTargetClient{}
	var buf bytes.Buffer
	migrator := NewMigrator(target, NewReporter(&buf), true)

	err := migrator.Run(context.Background(), []domain.UniqueFieldGroup{groupOf(userField("Region", "src-1"))})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(target.CreateCalls) != 0 {
		t.Errorf("Expected no create call in dry-run, got %d", len(target.CreateCalls))
	}
	if !strings.Contains(buf.String(), "[DRY RUN] WOULD CREATE FIELD") {
		t.Errorf("Expected dry-run diagnostic, got: %s", buf.String())
	}
}

func TestMigrator_FetchErrorPropagates(t *testing.T) {
	target := &MockTargetClient{FieldsErr: errors.New("boom")}
	migrator := NewMigrator(target, discardReporter(), false)

	err := migrator.Run(context.Background(), []domain.UniqueFieldGroup{groupOf(userField("Region", "src-1"))})
	if err == nil {
		t.Fatal("Expected error from failed fields fetch")
	}
	if !strings.Contains(err.Error(), "failed to fetch target fields") {
		t.Errorf("Expected fetch error context, got: %v", err)
	}
}

func TestMigrator_CreateErrorPropagates(t *testing.T) {
	target := &MockTargetClient{CreateErr: errors.New("boom")}
	migrator := NewMigrator(target, discardReporter(), false)

	err := migrator.Run(context.Background(), []domain.UniqueFieldGroup{groupOf(userField("Region", "src-1"))})
	if err == nil {
		t.Fatal("Expected error from failed batch create")
	}
	if !strings.Contains(err.Error(), "failed to batch-create fields") {
		t.Errorf("Expected batch-create error context, got: %v", err)
	}
}
