package migrate

import "github.com/cloudmig/fieldsync/internal/domain"

// targetFieldTypes maps V1 field types to their V2 equivalents. Types
// without an entry fall back to STRING, the V2 default.
var targetFieldTypes = map[string]string{
	"STRING":       "STRING",
	"LARGE_STRING": "STRING",
	"INTEGER":      "LONG",
	"LONG":         "LONG",
	"INTEGER_64":   "LONG_64",
	"FLOAT":        "DOUBLE",
	"DOUBLE":       "DOUBLE",
	"DATE":         "DATE",
	"DATE_TIME":    "DATE",
}

// FieldToTarget projects a V1 field definition into the V2 field schema.
// The projection is a pure, deterministic translation: the type goes
// through targetFieldTypes, queryability flags merge into includeInQuery,
// and displayField becomes includeInResults.
func FieldToTarget(f domain.FieldDefinition) domain.TargetField {
	fieldType, ok := targetFieldTypes[f.FieldType]
	if !ok {
		fieldType = "STRING"
	}
	return domain.TargetField{
		Name:             f.Name,
		Type:             fieldType,
		Facet:            f.Facet,
		MultiValueFacet:  f.MultivalueFacet,
		Sort:             f.Sort,
		IncludeInQuery:   f.FieldQueries || f.FreeTextQueries,
		IncludeInResults: f.DisplayField,
	}
}
