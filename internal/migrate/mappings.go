package migrate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cloudmig/fieldsync/internal/cloud"
	"github.com/cloudmig/fieldsync/internal/domain"
)

// CommonSource pairs the two unrelated ids of a data source present in
// both organizations under the same normalized name.
type CommonSource struct {
	V1ID string `json:"v1_id"`
	V2ID string `json:"v2_id"`
}

// Reconciler creates missing mapping rules on target sources that match a
// V1 source by normalized name, using the V1 field records as templates.
type Reconciler struct {
	target cloud.TargetClient
	report *Reporter
	dryRun bool
}

// NewReconciler creates a mapping reconciler.
func NewReconciler(target cloud.TargetClient, report *Reporter, dryRun bool) *Reconciler {
	return &Reconciler{target: target, report: report, dryRun: dryRun}
}

// commonSourcesByName intersects the two source lists by lower-cased name.
func commonSourcesByName(v1Sources, v2Sources []domain.DataSource) map[string]CommonSource {
	v1ByName := make(map[string]domain.DataSource, len(v1Sources))
	for _, s := range v1Sources {
		v1ByName[strings.ToLower(s.Name)] = s
	}

	common := make(map[string]CommonSource)
	for _, s := range v2Sources {
		name := strings.ToLower(s.Name)
		v1Source, ok := v1ByName[name]
		if !ok {
			continue
		}
		common[name] = CommonSource{V1ID: v1Source.ID, V2ID: s.ID}
	}
	return common
}

// Run creates missing mapping rules on the target's matched sources.
// fields must be the flattened member list of every valid group: each
// member is reconciled independently with its own sourceId.
//
// The per-source rule index is fetched once up front (one remote call per
// common source) and deliberately not refreshed after individual creates:
// two members producing the same target field name on the same target
// source within one run will both be attempted. Each rule is created with
// its own remote call; any failure aborts the run.
func (r *Reconciler) Run(ctx context.Context, v1Sources []domain.DataSource, fields []domain.FieldDefinition, v2Sources []domain.DataSource) error {
	common := commonSourcesByName(v1Sources, v2Sources)
	if len(common) == 0 {
		r.report.NoCommonSources()
		return nil
	}
	r.report.CommonSources(common)

	rulesBySourceID, err := r.fetchRuleIndexes(ctx, common)
	if err != nil {
		return err
	}

	v1SourcesByID := make(map[string]domain.DataSource, len(v1Sources))
	for _, s := range v1Sources {
		v1SourcesByID[strings.ToLower(s.ID)] = s
	}

	for _, field := range fields {
		v1Source, ok := v1SourcesByID[strings.ToLower(field.SourceID)]
		if !ok {
			r.report.SkipMappingUnknownSource(field)
			continue
		}

		target, ok := common[strings.ToLower(v1Source.Name)]
		if !ok {
			r.report.SkipMappingMissingSource(field.Name, v1Source.Name)
			continue
		}

		rule := domain.MappingRule{
			Field:   field.Name,
			Content: []string{"%[" + field.MetadataName + "]"},
		}
		if _, exists := rulesBySourceID[target.V2ID][strings.ToLower(rule.Field)]; exists {
			r.report.SkipMappingExists(rule, v1Source.Name)
			continue
		}

		r.report.AddMapping(rule, r.dryRun)
		if r.dryRun {
			continue
		}
		if err := r.target.AddCommonMapping(ctx, target.V2ID, false, rule); err != nil {
			return fmt.Errorf("failed to add mapping for field '%s' on source '%s': %w", field.Name, v1Source.Name, err)
		}
	}
	return nil
}

// fetchRuleIndexes fetches the existing common rules of every matched
// target source and indexes them by lower-cased field name. Sources are
// fetched in sorted name order for deterministic remote-call sequencing.
func (r *Reconciler) fetchRuleIndexes(ctx context.Context, common map[string]CommonSource) (map[string]map[string]domain.MappingRule, error) {
	names := make([]string, 0, len(common))
	for name := range common {
		names = append(names, name)
	}
	sort.Strings(names)

	indexes := make(map[string]map[string]domain.MappingRule, len(common))
	for _, name := range names {
		sourceID := common[name].V2ID
		rules, err := r.target.Mappings(ctx, sourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch mappings of source '%s': %w", name, err)
		}
		byField := make(map[string]domain.MappingRule, len(rules))
		for _, rule := range rules {
			byField[strings.ToLower(rule.Field)] = rule
		}
		indexes[sourceID] = byField
		slog.Debug("Indexed existing mappings", "source", name, "rules", len(rules))
	}
	return indexes, nil
}
