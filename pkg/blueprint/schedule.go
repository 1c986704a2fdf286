package blueprint

// ScheduleActionKind identifies one of the daily routine behaviors an NPC
// can be given.
type ScheduleActionKind string

const (
	ActionMoveToPoint       ScheduleActionKind = "move_to_point"
	ActionStayInBuilding    ScheduleActionKind = "stay_in_building"
	ActionLocationDialogue  ScheduleActionKind = "location_dialogue"
	ActionUseVendingMachine ScheduleActionKind = "use_vending_machine"
	ActionDriveToCarPark    ScheduleActionKind = "drive_to_car_park"
	ActionUseATM            ScheduleActionKind = "use_atm"
	ActionHandleDeal        ScheduleActionKind = "handle_deal"
	ActionSitAtSeatSet      ScheduleActionKind = "sit_at_seat_set"
)

// DefaultToleranceRadius is the framework's own default arrival radius for
// movement actions; the emitter omits the argument at this value.
const DefaultToleranceRadius = 1.0

// ScheduleAction is one timed behavior instruction in an NPC's daily
// routine. StartTime uses the framework's 24h clock encoding (e.g. 815 for
// 08:15). Only the fields relevant to the action's Kind are consulted.
type ScheduleAction struct {
	Kind      ScheduleActionKind `json:"kind"`
	StartTime int                `json:"start_time"`
	Duration  int                `json:"duration_minutes,omitempty"`

	// Movement parameters (move_to_point, location_dialogue).
	Position        *Vec3   `json:"position,omitempty"`
	FaceDestination bool    `json:"face_destination,omitempty"` // framework default: false
	WarpIfSkipped   bool    `json:"warp_if_skipped,omitempty"`  // framework default: false
	ToleranceRadius float64 `json:"tolerance_radius,omitempty"` // framework default: 1.0

	// Free-text identifiers. A blank value where required degrades the
	// action to a commented-out call.
	BuildingName string `json:"building_name,omitempty"`
	DialogueKey  string `json:"dialogue_key,omitempty"`
	CarParkName  string `json:"car_park_name,omitempty"`
	SeatSetName  string `json:"seat_set_name,omitempty"`
}
