package domain

// FieldOriginCustom marks a field created by an end user or administrator,
// as opposed to one built into the platform. Only fields with this origin
// are migrated.
const FieldOriginCustom = "CUSTOM"

// FieldDefinition represents a field definition as stored in the source
// organization. It is the primary record flowing through the migration
// pipeline.
type FieldDefinition struct {
	// Name is the human-readable field name and the identity key for
	// deduplication and target matching. Comparison is case-sensitive.
	Name string `json:"name"`

	// FieldType is the source system's value type for the field.
	// Example: "STRING", "LONG", "DATE", "DOUBLE"
	FieldType string `json:"fieldType"`

	// ContentType describes how the platform interprets field content.
	ContentType string `json:"contentType"`

	FieldQueries    bool `json:"fieldQueries"`
	FreeTextQueries bool `json:"freeTextQueries"`
	Facet           bool `json:"facet"`
	MultivalueFacet bool `json:"multivalueFacet"`
	Sort            bool `json:"sort"`
	DisplayField    bool `json:"displayField"`

	// FieldOrigin distinguishes system-provided fields from user-defined
	// ones. See FieldOriginCustom.
	FieldOrigin string `json:"fieldOrigin"`

	// SourceID identifies the data source this field record belongs to
	// within the source organization.
	SourceID string `json:"sourceId"`

	// MetadataName is the raw metadata key the field is populated from.
	// It becomes the content reference of migrated mapping rules.
	MetadataName string `json:"metadataName"`
}

// IsUserDefined reports whether the field was created by a user rather
// than provided by the platform.
func (f FieldDefinition) IsUserDefined() bool {
	return f.FieldOrigin == FieldOriginCustom
}

// SameConfig reports whether two definitions agree on every configuration
// attribute that must be consistent for same-named fields to be migrated.
// Name, origin, source and metadata are identity attributes and are not
// compared.
func (f FieldDefinition) SameConfig(other FieldDefinition) bool {
	return f.FieldType == other.FieldType &&
		f.ContentType == other.ContentType &&
		f.FieldQueries == other.FieldQueries &&
		f.FreeTextQueries == other.FreeTextQueries &&
		f.Facet == other.Facet &&
		f.MultivalueFacet == other.MultivalueFacet &&
		f.Sort == other.Sort &&
		f.DisplayField == other.DisplayField
}

// UniqueFieldGroup is a field name together with every source-organization
// definition sharing that name. Groups that survive deduplication are
// internally consistent: all members agree per SameConfig.
type UniqueFieldGroup struct {
	Name    string
	Members []FieldDefinition
}

// Representative returns the member used for target schema creation.
// Consistency validation guarantees any member would do; the first is
// used for determinism.
func (g UniqueFieldGroup) Representative() FieldDefinition {
	return g.Members[0]
}

// TargetField is a field definition in the target organization's schema.
type TargetField struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Description      string `json:"description,omitempty"`
	Facet            bool   `json:"facet"`
	MultiValueFacet  bool   `json:"multiValueFacet"`
	Sort             bool   `json:"sort"`
	IncludeInQuery   bool   `json:"includeInQuery"`
	IncludeInResults bool   `json:"includeInResults"`
}

// DataSource is a named ingestion connector configured within an
// organization. IDs are unrelated between the two organizations; two
// sources are "the same source" iff their names are equal under
// case-insensitive comparison.
type DataSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MappingRule binds raw ingested content to a named field for a specific
// data source. Field comparison for duplicate detection is
// case-insensitive.
type MappingRule struct {
	Field   string   `json:"field"`
	Content []string `json:"content"`
}
