package blueprint

// DataFieldType tags the declared type of a persisted data-class field.
type DataFieldType string

const (
	FieldBool       DataFieldType = "bool"
	FieldInt        DataFieldType = "int"
	FieldFloat      DataFieldType = "float"
	FieldString     DataFieldType = "string"
	FieldStringList DataFieldType = "string_list"
)

// DataClassField is one user-declared persisted field on the quest's data
// class. DefaultValue is free text and is re-parsed against Type at
// generation time; unparsable values fall back to the type's zero value.
type DataClassField struct {
	Name         string        `json:"name"`
	Type         DataFieldType `json:"type"`
	DefaultValue string        `json:"default_value,omitempty"`
	Doc          string        `json:"doc,omitempty"`
}
