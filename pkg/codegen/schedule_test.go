package codegen

import (
	"strings"
	"testing"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

func scheduleFor(t *testing.T, n *blueprint.NPC) string {
	t.Helper()
	b := NewBuilder()
	EmitSchedule(b, n)
	return b.String()
}

func TestEmitSchedule_MoveToPoint(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{{
		Kind:      blueprint.ActionMoveToPoint,
		StartTime: 815,
		Position:  &blueprint.Vec3{X: 1.5, Y: 0, Z: -3},
	}}}

	out := scheduleFor(t, n)
	if !strings.Contains(out, "schedule.AddMoveToPoint(new Vector3(1.5f, 0f, -3f), 0815);") {
		t.Errorf("unexpected move-to-point call:\n%s", out)
	}
}

func TestEmitSchedule_MovementDefaultsOmitted(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{{
		Kind:            blueprint.ActionMoveToPoint,
		StartTime:       900,
		Position:        &blueprint.Vec3{},
		ToleranceRadius: blueprint.DefaultToleranceRadius,
	}}}

	out := scheduleFor(t, n)
	if strings.Contains(out, "toleranceRadius") {
		t.Errorf("default tolerance radius must be omitted:\n%s", out)
	}
	if strings.Contains(out, "faceDestination") || strings.Contains(out, "warpIfSkipped") {
		t.Errorf("false movement flags must be omitted:\n%s", out)
	}
}

func TestEmitSchedule_MovementOptionsEmitted(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{{
		Kind:            blueprint.ActionMoveToPoint,
		StartTime:       900,
		Position:        &blueprint.Vec3{},
		FaceDestination: true,
		ToleranceRadius: 2.5,
		WarpIfSkipped:   true,
	}}}

	out := scheduleFor(t, n)
	for _, want := range []string{"faceDestination: true", "toleranceRadius: 2.5f", "warpIfSkipped: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestEmitSchedule_BlankBuildingDegrades(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{{
		Kind:      blueprint.ActionStayInBuilding,
		StartTime: 1200,
		Duration:  120,
	}}}

	out := scheduleFor(t, n)
	if !strings.Contains(out, "// Skipped stay-in-building action: no building type set.") {
		t.Errorf("blank building should degrade to a comment:\n%s", out)
	}
	if strings.Contains(out, "AddStayInBuilding(") {
		t.Error("blank building must not emit a call")
	}
}

func TestEmitSchedule_StayInBuilding(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{{
		Kind:         blueprint.ActionStayInBuilding,
		StartTime:    1200,
		Duration:     120,
		BuildingName: "Motel",
	}}}

	out := scheduleFor(t, n)
	if !strings.Contains(out, `schedule.AddStayInBuilding(1200, 120, "Motel");`) {
		t.Errorf("unexpected stay-in-building call:\n%s", out)
	}
}

func TestEmitSchedule_HandleDealRequiresDealer(t *testing.T) {
	action := blueprint.ScheduleAction{Kind: blueprint.ActionHandleDeal, StartTime: 1800}

	nonDealer := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{action}}
	out := scheduleFor(t, nonDealer)
	if !strings.Contains(out, "// Skipped handle-deal action: NPC is not a dealer.") {
		t.Errorf("non-dealer should get a comment:\n%s", out)
	}
	if strings.Contains(out, "AddHandleDeal(") {
		t.Error("non-dealer must not emit AddHandleDeal")
	}

	dealer := &blueprint.NPC{IsDealer: true, Schedule: []blueprint.ScheduleAction{action}}
	out = scheduleFor(t, dealer)
	if !strings.Contains(out, "schedule.AddHandleDeal(1800);") {
		t.Errorf("dealer should emit AddHandleDeal:\n%s", out)
	}
}

func TestEmitSchedule_RemainingKinds(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{
		{Kind: blueprint.ActionUseVendingMachine, StartTime: 930},
		{Kind: blueprint.ActionUseATM, StartTime: 1000},
		{Kind: blueprint.ActionDriveToCarPark, StartTime: 1030, CarParkName: "Docks Lot", WarpIfSkipped: true},
		{Kind: blueprint.ActionSitAtSeatSet, StartTime: 1100, Duration: 60, SeatSetName: "Park Bench"},
		{Kind: blueprint.ActionLocationDialogue, StartTime: 1130, Position: &blueprint.Vec3{X: 4}, DialogueKey: "greeting"},
	}}

	out := scheduleFor(t, n)
	wants := []string{
		"schedule.AddUseVendingMachine(0930);",
		"schedule.AddUseATM(1000);",
		`schedule.AddDriveToCarPark("Docks Lot", 1030, warpIfSkipped: true);`,
		`schedule.AddSitAtSeats("Park Bench", 1100, 60);`,
		`schedule.AddLocationDialogue(1130, new Vector3(4f, 0f, 0f), "greeting");`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestEmitSchedule_UnknownKindDegrades(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{{Kind: "teleport", StartTime: 900}}}

	out := scheduleFor(t, n)
	if !strings.Contains(out, `// Skipped schedule action with unknown kind "teleport".`) {
		t.Errorf("unknown kind should degrade to a comment:\n%s", out)
	}
}

func TestEmitSchedule_PreservesOrder(t *testing.T) {
	n := &blueprint.NPC{Schedule: []blueprint.ScheduleAction{
		{Kind: blueprint.ActionUseATM, StartTime: 2000},
		{Kind: blueprint.ActionUseVendingMachine, StartTime: 700},
	}}

	out := scheduleFor(t, n)
	atm := strings.Index(out, "AddUseATM")
	vend := strings.Index(out, "AddUseVendingMachine")
	if atm < 0 || vend < 0 || atm > vend {
		t.Errorf("actions must keep stored order, not time order:\n%s", out)
	}
}
