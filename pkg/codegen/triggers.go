package codegen

import (
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// HandlerCategory tags where in the quest a handler's trigger lives.
type HandlerCategory string

const (
	HandlerQuestStart      HandlerCategory = "quest_start"
	HandlerQuestFinish     HandlerCategory = "quest_finish"
	HandlerObjectiveStart  HandlerCategory = "objective_start"
	HandlerObjectiveFinish HandlerCategory = "objective_finish"
)

// HandlerDescriptor pairs one trigger with its generated handler field name
// and the activation call its callback performs. Derived per generation
// pass, never persisted.
type HandlerDescriptor struct {
	Trigger        blueprint.Trigger
	FieldName      string
	ActionMethod   string // Begin, Complete, Fail, Cancel or Expire
	ObjectiveIndex int    // index of the owning objective's entry, -1 for quest scope
	Category       HandlerCategory
}

// finishMethods maps a trigger's finish kind to the generated activation
// call. Unknown kinds complete, matching the editor's default.
var finishMethods = map[blueprint.FinishKind]string{
	blueprint.FinishComplete: "Complete",
	blueprint.FinishFail:     "Fail",
	blueprint.FinishCancel:   "Cancel",
	blueprint.FinishExpire:   "Expire",
}

func finishMethod(k blueprint.FinishKind) string {
	if m, ok := finishMethods[k]; ok {
		return m
	}
	return "Complete"
}

// CollectHandlers scans the quest's trigger graph in a fixed order: quest
// start triggers, quest finish triggers, then every objective's start and
// finish triggers in objective order. Re-running collection on an unchanged
// quest reproduces identical names and ordering; the field-declaration
// emitter and the subscription emitter each iterate the result
// independently.
//
// Triggers with no target action are skipped: they would declare a handler
// field that nothing ever assigns.
func CollectHandlers(q *blueprint.Quest) []HandlerDescriptor {
	used := make(map[string]struct{})
	var handlers []HandlerDescriptor

	add := func(t blueprint.Trigger, category HandlerCategory, objectiveIndex int) {
		if t.TargetAction == "" {
			return
		}
		method := "Begin"
		if category == HandlerQuestFinish || category == HandlerObjectiveFinish {
			method = finishMethod(t.FinishKind)
		}
		base := MakeCamel(lastPathSegment(t.TargetAction), "trigger") + "Handler"
		handlers = append(handlers, HandlerDescriptor{
			Trigger:        t,
			FieldName:      EnsureUnique(base, used, 2),
			ActionMethod:   method,
			ObjectiveIndex: objectiveIndex,
			Category:       category,
		})
	}

	for _, t := range q.StartTriggers {
		add(t, HandlerQuestStart, -1)
	}
	for _, t := range q.FinishTriggers {
		add(t, HandlerQuestFinish, -1)
	}
	for i, obj := range q.Objectives {
		for _, t := range obj.StartTriggers {
			add(t, HandlerObjectiveStart, i)
		}
		for _, t := range obj.FinishTriggers {
			add(t, HandlerObjectiveFinish, i)
		}
	}
	return handlers
}

// lastPathSegment returns the event name from a "Component.EventName"
// target action.
func lastPathSegment(action string) string {
	if i := strings.LastIndex(action, "."); i >= 0 {
		return action[i+1:]
	}
	return action
}
