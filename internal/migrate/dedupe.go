package migrate

import "github.com/cloudmig/fieldsync/internal/domain"

// FilterUserDefined returns only the user-defined fields, preserving
// input order. System-provided fields are out of scope for migration.
func FilterUserDefined(fields []domain.FieldDefinition) []domain.FieldDefinition {
	user := make([]domain.FieldDefinition, 0, len(fields))
	for _, f := range fields {
		if f.IsUserDefined() {
			user = append(user, f)
		}
	}
	return user
}

// UniqueFieldGroups collapses a flat field list into uniquely-named,
// internally-consistent groups. Fields are grouped by exact name; a group
// whose members disagree on any configuration attribute is reported and
// excluded entirely — no partial migration of a conflicting name. Groups
// keep their full member list: the representative drives schema creation,
// the members drive mapping reconciliation.
//
// Group order follows the first appearance of each name in the input.
func UniqueFieldGroups(fields []domain.FieldDefinition, report *Reporter) []domain.UniqueFieldGroup {
	byName := make(map[string][]domain.FieldDefinition)
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, seen := byName[f.Name]; !seen {
			order = append(order, f.Name)
		}
		byName[f.Name] = append(byName[f.Name], f)
	}

	groups := make([]domain.UniqueFieldGroup, 0, len(order))
	for _, name := range order {
		members := byName[name]
		if !consistentConfig(members) {
			report.SkipInconsistentField(name, members)
			continue
		}
		groups = append(groups, domain.UniqueFieldGroup{Name: name, Members: members})
	}
	return groups
}

// consistentConfig compares every consecutive member pair in original
// relative order. A single-member group is trivially consistent.
func consistentConfig(members []domain.FieldDefinition) bool {
	for i := 1; i < len(members); i++ {
		if !members[i-1].SameConfig(members[i]) {
			return false
		}
	}
	return true
}

// FlattenMembers concatenates the member lists of all groups, preserving
// group order then member order. Every member keeps its own sourceId, so
// same-named fields from different V1 sources are each reconciled
// independently.
func FlattenMembers(groups []domain.UniqueFieldGroup) []domain.FieldDefinition {
	n := 0
	for _, g := range groups {
		n += len(g.Members)
	}
	flat := make([]domain.FieldDefinition, 0, n)
	for _, g := range groups {
		flat = append(flat, g.Members...)
	}
	return flat
}
