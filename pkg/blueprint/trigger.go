package blueprint

// TriggerType identifies what kind of event a trigger reacts to.
type TriggerType string

const (
	// TriggerTypeStatic subscribes to a class-level event on a framework type.
	TriggerTypeStatic TriggerType = "static"

	// TriggerTypeNPCEvent subscribes to an event on a resolved NPC instance.
	TriggerTypeNPCEvent TriggerType = "npc_event"

	// TriggerTypeQuestEvent subscribes to an event on a resolved quest instance.
	TriggerTypeQuestEvent TriggerType = "quest_event"

	// TriggerTypeCustom is wired manually by the mod author; the generator
	// emits a placeholder comment only.
	TriggerTypeCustom TriggerType = "custom"
)

// FinishKind selects which termination method a finish trigger invokes.
type FinishKind string

const (
	FinishComplete FinishKind = "complete"
	FinishFail     FinishKind = "fail"
	FinishCancel   FinishKind = "cancel"
	FinishExpire   FinishKind = "expire"
)

// Trigger describes one event subscription that starts or finishes a quest
// or objective. TargetAction is in "Component.EventName" form.
type Trigger struct {
	Type                 TriggerType `json:"type"`
	TargetAction         string      `json:"target_action,omitempty"`
	TargetID             string      `json:"target_id,omitempty"` // NPC or quest blueprint ID
	TargetObjectiveIndex int         `json:"target_objective_index,omitempty"`
	FinishKind           FinishKind  `json:"finish_kind,omitempty"`
}
