package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestValidate_CompleteQuestIsClean(t *testing.T) {
	q := NewQuest("first_delivery", "First Delivery")
	q.Title = "First Delivery"

	result := q.Validate()
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestQuestValidate_MissingFieldsWarn(t *testing.T) {
	q := &Quest{}

	result := q.Validate()
	assert.True(t, result.IsValid, "missing content warns, never blocks")
	assert.Len(t, result.Warnings, 4) // id, name, title, objectives
	assert.Empty(t, result.Errors)
}

func TestQuestValidate_TriggerWarnings(t *testing.T) {
	q := NewQuest("q", "Quest")
	q.Title = "Quest"
	q.Objectives[0].StartTriggers = []Trigger{
		{Type: TriggerTypeStatic},                      // no action
		{Type: TriggerTypeNPCEvent, TargetAction: "NPCCustomer.OnDealCompleted"}, // no NPC ID
	}

	result := q.Validate()
	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "no target action")
	assert.Contains(t, result.Warnings[1], "names no NPC")
}

func TestQuestValidate_CustomTriggerWithoutActionIsFine(t *testing.T) {
	q := NewQuest("q", "Quest")
	q.Title = "Quest"
	q.Objectives[0].StartTriggers = []Trigger{{Type: TriggerTypeCustom}}

	result := q.Validate()
	assert.Empty(t, result.Warnings)
}

func TestQuestValidate_ObjectiveIndexOutOfRange(t *testing.T) {
	q := NewQuest("q", "Quest")
	q.Title = "Quest"
	q.FinishTriggers = []Trigger{
		{Type: TriggerTypeStatic, TargetAction: "TimeManager.OnDayPass", TargetObjectiveIndex: 5},
	}

	result := q.Validate()
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "objective index 5")
}

func TestQuestValidate_ZeroIndexWithNoObjectives(t *testing.T) {
	q := &Quest{
		ID: "q", Name: "Quest", Title: "Quest",
		StartTriggers: []Trigger{
			{Type: TriggerTypeStatic, TargetAction: "TimeManager.OnDayPass"},
		},
	}

	result := q.Validate()
	assert.Empty(t, result.Errors, "zero value index must not trip the range check")
}

func TestNPCValidate_CompleteNPCIsClean(t *testing.T) {
	n := NewNPC("benji", "Benji")

	result := n.Validate()
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)
}

func TestNPCValidate_UnknownScheduleKindErrors(t *testing.T) {
	n := NewNPC("x", "Someone")
	n.Schedule = []ScheduleAction{{Kind: "teleport"}}

	result := n.Validate()
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `unknown kind "teleport"`)
}

func TestNPCValidate_BlankIdentifiersWarn(t *testing.T) {
	n := NewNPC("x", "Someone")
	n.Schedule = []ScheduleAction{
		{Kind: ActionStayInBuilding, StartTime: 900},
		{Kind: ActionDriveToCarPark, StartTime: 1000},
		{Kind: ActionSitAtSeatSet, StartTime: 1100},
	}

	result := n.Validate()
	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 3)
	for _, w := range result.Warnings {
		assert.Contains(t, w, "commented out")
	}
}

func TestNPCValidate_HandleDealRequiresDealer(t *testing.T) {
	n := NewNPC("x", "Someone")
	n.Schedule = []ScheduleAction{{Kind: ActionHandleDeal, StartTime: 1800}}

	result := n.Validate()
	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "not a dealer")

	n.IsDealer = true
	result = n.Validate()
	assert.Empty(t, result.Warnings)
}

func TestNPCValidate_InventoryItemID(t *testing.T) {
	n := NewNPC("x", "Someone")
	n.Inventory = []InventoryItem{{ItemID: "", Quantity: 1}}

	result := n.Validate()
	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no item ID")
}
