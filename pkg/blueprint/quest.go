package blueprint

// Vec3 is a world-space position.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rewards describes what a quest grants on completion.
type Rewards struct {
	Money int      `json:"money,omitempty"` // cash granted on completion
	XP    int      `json:"xp,omitempty"`
	Items []string `json:"items,omitempty"` // item IDs
}

// HasAny reports whether any reward is configured.
func (r Rewards) HasAny() bool {
	return r.Money != 0 || r.XP != 0 || len(r.Items) > 0
}

// Objective is one ordered step of a quest. Its Name seeds the generated
// entry field symbol; Title is display text.
type Objective struct {
	Name             string    `json:"name"`
	Title            string    `json:"title"`
	RequiredProgress int       `json:"required_progress,omitempty"`
	POIPosition      *Vec3     `json:"poi_position,omitempty"` // map marker, optional
	StartTriggers    []Trigger `json:"start_triggers,omitempty"`
	FinishTriggers   []Trigger `json:"finish_triggers,omitempty"`
}

// Quest is the persisted, user-edited description of a quest.
type Quest struct {
	ID            string           `json:"id"`    // stable identifier, e.g. "first_delivery"
	Name          string           `json:"name"`  // class name seed
	Title         string           `json:"title"` // display title
	Description   string           `json:"description,omitempty"`
	AutoBegin     bool             `json:"auto_begin,omitempty"`
	Repeatable    bool             `json:"repeatable,omitempty"`
	HasCustomIcon bool             `json:"has_custom_icon,omitempty"`
	IconFileName  string           `json:"icon_file_name,omitempty"`
	Rewards       Rewards          `json:"rewards,omitempty"`
	DataFields    []DataClassField `json:"data_fields,omitempty"`

	// Quest-level triggers begin or terminate the quest as a whole;
	// per-objective triggers live on the objectives.
	StartTriggers  []Trigger `json:"start_triggers,omitempty"`
	FinishTriggers []Trigger `json:"finish_triggers,omitempty"`

	Objectives []Objective `json:"objectives"`
}

// NewQuest creates a quest blueprint with one default objective, mirroring
// what the editor shows for a freshly created quest.
func NewQuest(id, name string) *Quest {
	return &Quest{
		ID:    id,
		Name:  name,
		Title: name,
		Objectives: []Objective{
			{
				Name:             "objective_1",
				Title:            "First objective",
				RequiredProgress: 1,
			},
		},
	}
}
