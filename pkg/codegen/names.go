package codegen

import (
	"strconv"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// EntryNames derives the generated entry field name for every objective, in
// objective order. The derivation is a pure function of the ordered
// objective list: the field-declaration emitter, the lifecycle emitters and
// the subscription emitter all call it independently and must agree on
// every symbol, character for character.
//
// Each name carries its 1-based ordinal so duplicate display names stay
// distinct ("go_home", "go_home" -> goHome1, goHome2). EnsureUnique guards
// the remaining pathological collisions (e.g. a raw name that already ends
// in the next objective's ordinal).
func EntryNames(q *blueprint.Quest) []string {
	used := make(map[string]struct{})
	names := make([]string, len(q.Objectives))
	for i, obj := range q.Objectives {
		base := MakeCamel(obj.Name, "objective")
		names[i] = EnsureUnique(base+strconv.Itoa(i+1), used, 1)
	}
	return names
}

// EntryNameAt returns the entry field name for one objective. It re-runs
// the full derivation so the result never depends on call history.
func EntryNameAt(q *blueprint.Quest, index int) string {
	names := EntryNames(q)
	if index < 0 || index >= len(names) {
		return ""
	}
	return names[index]
}
