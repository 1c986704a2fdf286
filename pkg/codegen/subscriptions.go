package codegen

import (
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// callbackParams is the closed table of event identifiers whose callbacks
// take parameters. Any event absent here gets a zero-argument callback.
// A wrong arity is the single most likely compile break in generated
// output, so this table must match the framework exactly.
var callbackParams = map[string]string{
	"OnRelationshipChange": "float delta",
	"OnUnlocked":           "EUnlockType unlockType, bool notify",
	"OnContractOffered":    "float payment, int quantity, EDealWindow window, EQuality quality",
	"OnSleepEnd":           "int minutesSkipped",
	"OnNPCSpawned":         "NPC npc",
	"OnPlayerSpawned":      "Player player",
}

// npcComponentRoles maps the component half of an NPC-instance target
// action to the member path on the resolved NPC. Anything else subscribes
// directly on the NPC object.
var npcComponentRoles = map[string]string{
	"NPCCustomer":     "Customer",
	"NPCDealer":       "Dealer",
	"NPCRelationship": "Relationship",
}

// singletonComponents are framework types whose events look static in the
// target action but actually live on a runtime singleton instance; the
// generated code must null-check the instance before subscribing.
var singletonComponents = map[string]bool{
	"TimeManager": true,
}

// splitAction breaks "Component.EventName" into its halves. An action
// without a dot is treated as a bare event name with no component.
func splitAction(action string) (component, event string) {
	if i := strings.LastIndex(action, "."); i >= 0 {
		return action[:i], action[i+1:]
	}
	return "", action
}

// eventParamList returns the callback parameter declarations for an event.
func eventParamList(event string) string {
	return callbackParams[event]
}

// eventArgList returns the lambda argument names for an event, e.g.
// "(delta)" or "()".
func eventArgList(event string) string {
	params := callbackParams[event]
	if params == "" {
		return "()"
	}
	var names []string
	for _, p := range strings.Split(params, ",") {
		fields := strings.Fields(strings.TrimSpace(p))
		names = append(names, fields[len(fields)-1])
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// eventDelegateType returns the C# delegate type of an event's handler
// field, e.g. "Action" or "Action<float>".
func eventDelegateType(event string) string {
	params := callbackParams[event]
	if params == "" {
		return "Action"
	}
	var types []string
	for _, p := range strings.Split(params, ",") {
		fields := strings.Fields(strings.TrimSpace(p))
		types = append(types, strings.Join(fields[:len(fields)-1], " "))
	}
	return "Action<" + strings.Join(types, ", ") + ">"
}

// EmitHandlerFields declares one delegate field per collected handler.
// Field names come from the shared descriptor list, so the declarations
// here and the assignments in EmitSubscriptions always agree.
func EmitHandlerFields(b *Builder, handlers []HandlerDescriptor) {
	for _, h := range handlers {
		_, event := splitAction(h.Trigger.TargetAction)
		b.Linef("private %s %s;", eventDelegateType(event), h.FieldName)
	}
}

// EmitSubscriptions writes the subscription method: one guarded block per
// handler, each wrapped in try/catch so a resolution failure in the running
// game logs and continues instead of aborting the mod.
func EmitSubscriptions(b *Builder, q *blueprint.Quest, handlers []HandlerDescriptor, entryNames []string) {
	b.OpenBlock("private void SubscribeTriggers()")
	for i, h := range handlers {
		if i > 0 {
			b.Blank()
		}
		emitSubscription(b, h, entryNames)
	}
	b.CloseBlock()
}

func emitSubscription(b *Builder, h HandlerDescriptor, entryNames []string) {
	component, event := splitAction(h.Trigger.TargetAction)

	b.OpenBlock("try")
	switch h.Trigger.Type {
	case blueprint.TriggerTypeNPCEvent:
		emitNPCSubscription(b, h, component, event, entryNames)
	case blueprint.TriggerTypeQuestEvent:
		emitQuestSubscription(b, h, event, entryNames)
	case blueprint.TriggerTypeCustom:
		b.Comment("Custom trigger '" + h.Trigger.TargetAction + "': wire this up manually.")
	default:
		emitStaticSubscription(b, h, component, event, entryNames)
	}
	b.CloseBlock()
	b.OpenBlock("catch (Exception e)")
	b.Linef("MelonLogger.Error(%s + e.Message);", csharpString("Failed to subscribe '"+h.Trigger.TargetAction+"': "))
	b.CloseBlock()
}

// emitNPCSubscription resolves the NPC by ID at runtime, warns and skips on
// a lookup miss, and attaches to the role component named by the action.
func emitNPCSubscription(b *Builder, h HandlerDescriptor, component, event string, entryNames []string) {
	b.Linef("var npc = NPCManager.GetNPC(%s);", csharpString(h.Trigger.TargetID))
	b.OpenBlock("if (npc == null)")
	b.Linef("MelonLogger.Warning(%s);",
		csharpString("NPC '"+h.Trigger.TargetID+"' not found; skipping '"+h.Trigger.TargetAction+"' subscription"))
	b.CloseBlock()
	b.OpenBlock("else")
	emitHandlerAssignment(b, h, event, entryNames)
	target := "npc." + event
	if role, ok := npcComponentRoles[component]; ok {
		target = "npc." + role + "." + event
	}
	b.Linef("%s += %s;", target, h.FieldName)
	b.CloseBlock()
}

// emitQuestSubscription mirrors the NPC path for quest-instance events.
func emitQuestSubscription(b *Builder, h HandlerDescriptor, event string, entryNames []string) {
	b.Linef("var quest = QuestManager.GetQuest(%s);", csharpString(h.Trigger.TargetID))
	b.OpenBlock("if (quest == null)")
	b.Linef("MelonLogger.Warning(%s);",
		csharpString("Quest '"+h.Trigger.TargetID+"' not found; skipping '"+h.Trigger.TargetAction+"' subscription"))
	b.CloseBlock()
	b.OpenBlock("else")
	emitHandlerAssignment(b, h, event, entryNames)
	b.Linef("quest.%s += %s;", event, h.FieldName)
	b.CloseBlock()
}

// emitStaticSubscription attaches to a class-level event. Two special
// cases: singleton components expose instance events behind a static-
// looking path and need a runtime non-null check, and the spawn event pair
// carries an entity-reference parameter (already covered by the signature
// table).
func emitStaticSubscription(b *Builder, h HandlerDescriptor, component, event string, entryNames []string) {
	if singletonComponents[component] {
		b.OpenBlock("if (" + component + ".Instance != null)")
		emitHandlerAssignment(b, h, event, entryNames)
		b.Linef("%s.Instance.%s += %s;", component, event, h.FieldName)
		b.CloseBlock()
		return
	}
	emitHandlerAssignment(b, h, event, entryNames)
	if component == "" {
		b.Linef("%s += %s;", event, h.FieldName)
		return
	}
	b.Linef("%s.%s += %s;", component, event, h.FieldName)
}

// emitHandlerAssignment writes the lambda that invokes the activation
// method: on the owning objective's entry field (null-guarded) for
// objective-scoped triggers, on the quest itself for quest-scoped ones.
func emitHandlerAssignment(b *Builder, h HandlerDescriptor, event string, entryNames []string) {
	b.OpenBlock(h.FieldName + " = " + eventArgList(event) + " =>")
	if h.ObjectiveIndex >= 0 && h.ObjectiveIndex < len(entryNames) {
		entry := entryNames[h.ObjectiveIndex]
		b.OpenBlock("if (" + entry + " != null)")
		b.Linef("%s.%s();", entry, h.ActionMethod)
		b.CloseBlock()
	} else {
		b.Linef("%s();", h.ActionMethod)
	}
	b.CloseBlock(";")
}
