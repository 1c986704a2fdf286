package blueprint

import "fmt"

// ValidationResult is an advisory report for the editor UI. Warnings never
// block generation; the engine substitutes safe fallbacks for everything
// reported here.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (v *ValidationResult) addError(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
	v.IsValid = false
}

func (v *ValidationResult) addWarning(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

var validActionKinds = map[ScheduleActionKind]bool{
	ActionMoveToPoint:       true,
	ActionStayInBuilding:    true,
	ActionLocationDialogue:  true,
	ActionUseVendingMachine: true,
	ActionDriveToCarPark:    true,
	ActionUseATM:            true,
	ActionHandleDeal:        true,
	ActionSitAtSeatSet:      true,
}

// Validate reports soft content issues on a quest blueprint.
func (q *Quest) Validate() ValidationResult {
	result := ValidationResult{IsValid: true}

	if q.ID == "" {
		result.addWarning("quest has no ID; a default identifier will be generated")
	}
	if q.Name == "" {
		result.addWarning("quest has no name; a default class name will be used")
	}
	if q.Title == "" {
		result.addWarning("quest has no title")
	}
	if len(q.Objectives) == 0 {
		result.addWarning("quest has no objectives")
	}

	for _, t := range q.StartTriggers {
		validateTrigger(&result, t, len(q.Objectives), "quest start trigger")
	}
	for _, t := range q.FinishTriggers {
		validateTrigger(&result, t, len(q.Objectives), "quest finish trigger")
	}

	for i, obj := range q.Objectives {
		if obj.Name == "" {
			result.addWarning("objective %d has no name; a default entry symbol will be used", i+1)
		}
		if obj.Title == "" {
			result.addWarning("objective %d has no title", i+1)
		}
		for _, t := range obj.StartTriggers {
			validateTrigger(&result, t, len(q.Objectives), fmt.Sprintf("objective %d start trigger", i+1))
		}
		for _, t := range obj.FinishTriggers {
			validateTrigger(&result, t, len(q.Objectives), fmt.Sprintf("objective %d finish trigger", i+1))
		}
	}

	for i, f := range q.DataFields {
		if f.Name == "" {
			result.addWarning("data field %d has no name", i+1)
		}
	}
	return result
}

func validateTrigger(result *ValidationResult, t Trigger, objectiveCount int, context string) {
	if t.TargetAction == "" && t.Type != TriggerTypeCustom {
		result.addWarning("%s has no target action and will be skipped", context)
	}
	if t.Type == TriggerTypeNPCEvent && t.TargetID == "" {
		result.addWarning("%s targets an NPC event but names no NPC", context)
	}
	if t.TargetObjectiveIndex != 0 && (t.TargetObjectiveIndex < 0 || t.TargetObjectiveIndex >= objectiveCount) {
		result.addError("%s references objective index %d, but the quest has %d objectives",
			context, t.TargetObjectiveIndex, objectiveCount)
	}
}

// Validate reports soft content issues on an NPC blueprint.
func (n *NPC) Validate() ValidationResult {
	result := ValidationResult{IsValid: true}

	if n.ID == "" {
		result.addWarning("NPC has no ID; a default identifier will be generated")
	}
	if n.FirstName == "" {
		result.addWarning("NPC has no first name")
	}

	for i, a := range n.Schedule {
		if !validActionKinds[a.Kind] {
			result.addError("schedule action %d has unknown kind %q", i+1, a.Kind)
			continue
		}
		switch a.Kind {
		case ActionStayInBuilding:
			if a.BuildingName == "" {
				result.addWarning("schedule action %d has no building type and will be commented out", i+1)
			}
		case ActionDriveToCarPark:
			if a.CarParkName == "" {
				result.addWarning("schedule action %d has no car park name and will be commented out", i+1)
			}
		case ActionSitAtSeatSet:
			if a.SeatSetName == "" {
				result.addWarning("schedule action %d has no seat set name and will be commented out", i+1)
			}
		case ActionHandleDeal:
			if !n.IsDealer {
				result.addWarning("schedule action %d handles deals but the NPC is not a dealer; it will be skipped", i+1)
			}
		}
	}

	for i, item := range n.Inventory {
		if item.ItemID == "" {
			result.addWarning("inventory item %d has no item ID", i+1)
		}
	}
	return result
}
