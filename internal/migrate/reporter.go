package migrate

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cloudmig/fieldsync/internal/domain"
)

// Reporter emits the operator-facing audit trail: one line per skip or
// create decision. Operators read these lines to verify what a run did,
// so every line names the affected field and, for creates, the full
// constructed record. Run-level progress goes to slog instead.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// jsonify renders a record for a diagnostic line. Marshal errors cannot
// occur for the domain types; fall back to %v just in case.
func jsonify(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// SkipInconsistentField reports a field name excluded from migration
// because same-named V1 definitions disagree on configuration.
func (r *Reporter) SkipInconsistentField(name string, members []domain.FieldDefinition) {
	r.printf("SKIPPING FIELD %s. Found fields in V1 with the same name but different configurations: %s",
		name, jsonify(members))
}

// SkipExistingField reports a field left untouched because the target
// organization already has one with the same name.
func (r *Reporter) SkipExistingField(field domain.TargetField) {
	r.printf("SKIPPING FIELD '%s' because it already exists in org: %s", field.Name, jsonify(field))
}

// CreateField reports a field included in the batch-create call.
func (r *Reporter) CreateField(field domain.TargetField, dryRun bool) {
	if dryRun {
		r.printf("[DRY RUN] WOULD CREATE FIELD: %s", jsonify(field))
		return
	}
	r.printf("CREATE FIELD: %s", jsonify(field))
}

// FieldsDone marks the end of the field migration phase.
func (r *Reporter) FieldsDone() {
	r.printf("All user fields copied.")
}

// NoCommonSources reports that no source name exists in both
// organizations, which skips all mapping work.
func (r *Reporter) NoCommonSources() {
	r.printf("No common source names between V1 and V2. Cannot copy mappings.")
}

// CommonSources reports the matched source set, keyed by normalized name.
func (r *Reporter) CommonSources(byName map[string]CommonSource) {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]string, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, fmt.Sprintf("%q: %s", name, jsonify(byName[name])))
	}
	r.printf("Common source names (%d): {%s}", len(byName), joinComma(ordered))
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

// SkipMappingUnknownSource reports a field whose sourceId does not resolve
// to any V1 data source.
func (r *Reporter) SkipMappingUnknownSource(field domain.FieldDefinition) {
	r.printf("SKIPPING MAPPING for '%s' because source id '%s' does not exist in V1", field.Name, field.SourceID)
}

// SkipMappingMissingSource reports a field whose V1 source has no
// same-named counterpart in the target organization.
func (r *Reporter) SkipMappingMissingSource(fieldName, sourceName string) {
	r.printf("SKIPPING MAPPING for '%s' because source '%s' does not exist in V2", fieldName, sourceName)
}

// SkipMappingExists reports a candidate rule already present on the
// target source.
func (r *Reporter) SkipMappingExists(rule domain.MappingRule, sourceName string) {
	r.printf("SKIPPING MAPPING '%s' because it's already present in source '%s'", jsonify(rule), sourceName)
}

// AddMapping reports a rule created on the target source.
func (r *Reporter) AddMapping(rule domain.MappingRule, dryRun bool) {
	if dryRun {
		r.printf("[DRY RUN] WOULD ADD MAPPING: %s", jsonify(rule))
		return
	}
	r.printf("ADD MAPPING: %s", jsonify(rule))
}

// MappingsDone marks the end of the mapping reconciliation phase.
func (r *Reporter) MappingsDone() {
	r.printf("All mappings created.")
}
