package blueprint

// UnlockType selects how an NPC relationship is unlocked in-game.
type UnlockType string

const (
	UnlockRecommendation UnlockType = "recommendation"
	UnlockDirectApproach UnlockType = "direct_approach"
)

// RelationshipSettings are the NPC's starting relationship values. All-zero
// settings emit no code.
type RelationshipSettings struct {
	Delta      float64    `json:"delta,omitempty"` // 0..5 relationship level
	Unlocked   bool       `json:"unlocked,omitempty"`
	UnlockType UnlockType `json:"unlock_type,omitempty"`
}

// HasAny reports whether any non-default relationship setting is present.
func (r RelationshipSettings) HasAny() bool {
	return r.Delta != 0 || r.Unlocked || r.UnlockType != ""
}

// CustomerSettings configure the NPC's behavior as a customer.
type CustomerSettings struct {
	MinWeeklySpend   float64  `json:"min_weekly_spend,omitempty"`
	MaxWeeklySpend   float64  `json:"max_weekly_spend,omitempty"`
	MinOrdersPerWeek int      `json:"min_orders_per_week,omitempty"`
	MaxOrdersPerWeek int      `json:"max_orders_per_week,omitempty"`
	PreferredEffects []string `json:"preferred_effects,omitempty"`
}

// DealerSettings configure the NPC's behavior as a dealer.
type DealerSettings struct {
	Cut      float64 `json:"cut,omitempty"` // fraction of sales kept, 0..1
	HomeName string  `json:"home_name,omitempty"`
}

// InventoryItem is one stocked item in the NPC's starting inventory.
type InventoryItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// NPC is the persisted, user-edited description of a non-player character.
type NPC struct {
	ID        string `json:"id"`
	Name      string `json:"name"` // class name seed
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`

	IsCustomer bool `json:"is_customer,omitempty"`
	IsDealer   bool `json:"is_dealer,omitempty"`

	Relationship RelationshipSettings `json:"relationship,omitempty"`
	Customer     CustomerSettings     `json:"customer,omitempty"`
	Dealer       DealerSettings       `json:"dealer,omitempty"`
	Inventory    []InventoryItem      `json:"inventory,omitempty"`
	Appearance   Appearance           `json:"appearance,omitempty"`
	Schedule     []ScheduleAction     `json:"schedule,omitempty"`
}

// NewNPC creates an NPC blueprint with a default schedule entry, mirroring
// what the editor shows for a freshly created NPC.
func NewNPC(id, name string) *NPC {
	return &NPC{
		ID:        id,
		Name:      name,
		FirstName: name,
		Schedule: []ScheduleAction{
			{
				Kind:      ActionMoveToPoint,
				StartTime: 800,
				Position:  &Vec3{},
			},
		},
	}
}
