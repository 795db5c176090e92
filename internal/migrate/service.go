// Package migrate implements the reconciliation core of the migration:
// field deduplication, idempotent field creation, and mapping
// reconciliation between a source (V1) and a target (V2) organization.
package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudmig/fieldsync/internal/cloud"
)

// Service runs the full migration pipeline against the two organizations.
// Execution is strictly sequential: field creation completes (or aborts
// the run) before mapping reconciliation starts. The service assumes it
// is the sole writer of the target organization during a run; idempotence
// comes from re-deriving "already exists" from freshly fetched target
// state, not from any persistent local state.
type Service struct {
	source cloud.SourceClient
	target cloud.TargetClient
	report *Reporter
	dryRun bool
}

// NewService creates a migration service.
func NewService(source cloud.SourceClient, target cloud.TargetClient, report *Reporter, dryRun bool) (*Service, error) {
	if source == nil || target == nil {
		return nil, fmt.Errorf("source and target clients cannot be nil")
	}
	if report == nil {
		return nil, fmt.Errorf("reporter cannot be nil")
	}
	return &Service{source: source, target: target, report: report, dryRun: dryRun}, nil
}

// Run executes the pipeline: fetch V1 fields, keep user-defined ones,
// deduplicate, create missing target fields, then reconcile mappings
// across sources matched by name. Any remote failure propagates and
// terminates the run; a partial run is safe to re-execute.
func (s *Service) Run(ctx context.Context) error {
	fields, err := s.source.Fields(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch source fields: %w", err)
	}

	userFields := FilterUserDefined(fields)
	slog.Info("Fetched source fields", "total", len(fields), "user_defined", len(userFields))

	groups := UniqueFieldGroups(userFields, s.report)
	slog.Info("Deduplicated source fields", "groups", len(groups))

	if err := NewMigrator(s.target, s.report, s.dryRun).Run(ctx, groups); err != nil {
		return err
	}
	s.report.FieldsDone()

	v1Sources, err := s.source.Sources(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch source data sources: %w", err)
	}
	v2Sources, err := s.target.Sources(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch target data sources: %w", err)
	}
	slog.Info("Fetched data sources", "v1", len(v1Sources), "v2", len(v2Sources))

	members := FlattenMembers(groups)
	if err := NewReconciler(s.target, s.report, s.dryRun).Run(ctx, v1Sources, members, v2Sources); err != nil {
		return err
	}
	s.report.MappingsDone()

	return nil
}
