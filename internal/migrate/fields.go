package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudmig/fieldsync/internal/cloud"
	"github.com/cloudmig/fieldsync/internal/domain"
)

// Migrator creates in the target organization every deduplicated field
// whose name is not already present there. Existence is derived from a
// fresh fetch of the target's field list each run, which makes the
// operation idempotent at run granularity.
type Migrator struct {
	target cloud.TargetClient
	report *Reporter
	dryRun bool
}

// NewMigrator creates a field migrator.
func NewMigrator(target cloud.TargetClient, report *Reporter, dryRun bool) *Migrator {
	return &Migrator{target: target, report: report, dryRun: dryRun}
}

// Run translates each group's representative into the target schema and
// issues at most one batch-create call for the names the target is
// missing. Names that already exist are reported and skipped. Field name
// comparison is case-sensitive. A batch-create failure aborts the run.
func (m *Migrator) Run(ctx context.Context, groups []domain.UniqueFieldGroup) error {
	existing, err := m.target.Fields(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch target fields: %w", err)
	}
	existingNames := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		existingNames[f.Name] = struct{}{}
	}

	toCreate := make([]domain.TargetField, 0, len(groups))
	for _, g := range groups {
		field := FieldToTarget(g.Representative())
		if _, exists := existingNames[field.Name]; exists {
			m.report.SkipExistingField(field)
			continue
		}
		m.report.CreateField(field, m.dryRun)
		toCreate = append(toCreate, field)
	}

	// Never issue a create call with zero items.
	if len(toCreate) == 0 || m.dryRun {
		return nil
	}

	slog.Info("Creating fields in target organization", "count", len(toCreate))
	if err := m.target.CreateFields(ctx, toCreate); err != nil {
		return fmt.Errorf("failed to batch-create fields: %w", err)
	}
	return nil
}
