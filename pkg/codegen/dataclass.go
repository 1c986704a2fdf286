package codegen

import (
	"strconv"
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// EmitDataClass writes the serializable nested data class holding the
// quest's user-declared persisted fields, plus the instance field the rest
// of the generated class reads. Free-text default values are re-parsed
// against the declared type; unparsable text falls back to the type's zero
// value rather than emitting tokens that cannot compile.
func EmitDataClass(b *Builder, className string, fields []blueprint.DataClassField) {
	dataClass := className + "Data"
	used := make(map[string]struct{})

	b.Line("[Serializable]")
	b.OpenBlock("public class " + dataClass)
	for i, f := range fields {
		if f.Doc != "" {
			b.DocComment(f.Doc)
		}
		name := EnsureUnique(MakePascal(f.Name, "Field"+strconv.Itoa(i+1)), used, 2)
		b.Linef("public %s %s = %s;", fieldTypeName(f.Type), name, fieldDefault(f))
	}
	b.CloseBlock()
	b.Blank()
	b.Linef("public %s Data = new %s();", dataClass, dataClass)
}

func fieldTypeName(t blueprint.DataFieldType) string {
	switch t {
	case blueprint.FieldBool:
		return "bool"
	case blueprint.FieldInt:
		return "int"
	case blueprint.FieldFloat:
		return "float"
	case blueprint.FieldStringList:
		return "List<string>"
	default:
		return "string"
	}
}

func fieldDefault(f blueprint.DataClassField) string {
	raw := strings.TrimSpace(f.DefaultValue)
	switch f.Type {
	case blueprint.FieldBool:
		if v, err := strconv.ParseBool(strings.ToLower(raw)); err == nil && v {
			return "true"
		}
		return "false"
	case blueprint.FieldInt:
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return strconv.FormatInt(v, 10)
		}
		return "0"
	case blueprint.FieldFloat:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return csharpFloat(v)
		}
		return "0f"
	case blueprint.FieldStringList:
		items := splitListDefault(raw)
		if len(items) == 0 {
			return "new List<string>()"
		}
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = csharpString(item)
		}
		return "new List<string> { " + strings.Join(quoted, ", ") + " }"
	default:
		return csharpString(f.DefaultValue)
	}
}

// splitListDefault splits a string-list default on newlines and commas,
// dropping empty entries.
func splitListDefault(raw string) []string {
	var items []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
