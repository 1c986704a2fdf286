package blueprint

// Color is a normalized RGB color, each channel in 0..1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// IsZero reports whether the color was never set.
func (c Color) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// AppearanceLayer is one avatar layer: an asset path plus a tint color.
type AppearanceLayer struct {
	Path  string `json:"path"`
	Color Color  `json:"color"`
}

// Appearance is the NPC's avatar configuration: flat slider values plus
// three ordered layer lists.
type Appearance struct {
	SkinColor Color   `json:"skin_color,omitempty"`
	HairColor Color   `json:"hair_color,omitempty"`
	HairPath  string  `json:"hair_path,omitempty"`
	Height    float64 `json:"height,omitempty"` // 0..2, framework default 1
	Weight    float64 `json:"weight,omitempty"` // 0..1
	Gender    float64 `json:"gender,omitempty"` // 0 masculine .. 1 feminine

	FaceLayers      []AppearanceLayer `json:"face_layers,omitempty"`
	BodyLayers      []AppearanceLayer `json:"body_layers,omitempty"`
	AccessoryLayers []AppearanceLayer `json:"accessory_layers,omitempty"`
}

// HasAny reports whether any appearance value differs from the zero state.
func (a Appearance) HasAny() bool {
	return !a.SkinColor.IsZero() || !a.HairColor.IsZero() || a.HairPath != "" ||
		a.Height != 0 || a.Weight != 0 || a.Gender != 0 ||
		len(a.FaceLayers) > 0 || len(a.BodyLayers) > 0 || len(a.AccessoryLayers) > 0
}
