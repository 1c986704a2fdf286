package codegen

import (
	"fmt"
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// EmitSchedule writes the NPC's daily routine builder method, one call per
// schedule action in stored order. Optional arguments appear only when they
// differ from the framework's documented defaults, matching the target
// API's own default-parameter convention. Actions missing a required
// free-text identifier degrade to a commented-out call.
func EmitSchedule(b *Builder, n *blueprint.NPC) {
	b.OpenBlock("private void BuildSchedule(NPCScheduleManager schedule)")
	for _, action := range n.Schedule {
		emitScheduleAction(b, n, action)
	}
	b.CloseBlock()
}

func emitScheduleAction(b *Builder, n *blueprint.NPC, a blueprint.ScheduleAction) {
	switch a.Kind {
	case blueprint.ActionMoveToPoint:
		if a.Position == nil {
			b.Comment("Skipped move-to-point action: no destination set.")
			return
		}
		args := []string{csharpVec3(*a.Position), csharpTime(a.StartTime)}
		args = append(args, movementOptions(a)...)
		b.Linef("schedule.AddMoveToPoint(%s);", strings.Join(args, ", "))

	case blueprint.ActionStayInBuilding:
		if a.BuildingName == "" {
			b.Comment("Skipped stay-in-building action: no building type set.")
			return
		}
		b.Linef("schedule.AddStayInBuilding(%s, %d, %s);",
			csharpTime(a.StartTime), a.Duration, csharpString(a.BuildingName))

	case blueprint.ActionLocationDialogue:
		if a.Position == nil {
			b.Comment("Skipped location-dialogue action: no location set.")
			return
		}
		args := []string{csharpTime(a.StartTime), csharpVec3(*a.Position), csharpString(a.DialogueKey)}
		args = append(args, movementOptions(a)...)
		b.Linef("schedule.AddLocationDialogue(%s);", strings.Join(args, ", "))

	case blueprint.ActionUseVendingMachine:
		b.Linef("schedule.AddUseVendingMachine(%s);", csharpTime(a.StartTime))

	case blueprint.ActionDriveToCarPark:
		if a.CarParkName == "" {
			b.Comment("Skipped drive-to-car-park action: no car park name set.")
			return
		}
		args := []string{csharpString(a.CarParkName), csharpTime(a.StartTime)}
		if a.WarpIfSkipped {
			args = append(args, "warpIfSkipped: true")
		}
		b.Linef("schedule.AddDriveToCarPark(%s);", strings.Join(args, ", "))

	case blueprint.ActionUseATM:
		b.Linef("schedule.AddUseATM(%s);", csharpTime(a.StartTime))

	case blueprint.ActionHandleDeal:
		if !n.IsDealer {
			b.Comment("Skipped handle-deal action: NPC is not a dealer.")
			return
		}
		b.Linef("schedule.AddHandleDeal(%s);", csharpTime(a.StartTime))

	case blueprint.ActionSitAtSeatSet:
		if a.SeatSetName == "" {
			b.Comment("Skipped sit-at-seat-set action: no seat set name set.")
			return
		}
		b.Linef("schedule.AddSitAtSeats(%s, %s, %d);",
			csharpString(a.SeatSetName), csharpTime(a.StartTime), a.Duration)

	default:
		b.Comment(fmt.Sprintf("Skipped schedule action with unknown kind %q.", a.Kind))
	}
}

// movementOptions returns the named optional arguments shared by movement
// actions, omitting any value that matches the framework default.
func movementOptions(a blueprint.ScheduleAction) []string {
	var opts []string
	if a.FaceDestination {
		opts = append(opts, "faceDestination: true")
	}
	if a.ToleranceRadius != 0 && a.ToleranceRadius != blueprint.DefaultToleranceRadius {
		opts = append(opts, "toleranceRadius: "+csharpFloat(a.ToleranceRadius))
	}
	if a.WarpIfSkipped {
		opts = append(opts, "warpIfSkipped: true")
	}
	return opts
}
