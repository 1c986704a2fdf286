package codegen

import "github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"

// EmitAppearance writes the avatar configuration method: flat property
// assignments for sliders and colors, then the three ordered layer lists.
// Zero-valued sliders are left to the framework's defaults.
func EmitAppearance(b *Builder, n *blueprint.NPC) {
	a := n.Appearance
	b.OpenBlock("private void ApplyAppearance(AvatarSettings avatar)")

	if !a.SkinColor.IsZero() {
		b.Linef("avatar.SkinColor = %s;", csharpColor(a.SkinColor))
	}
	if !a.HairColor.IsZero() {
		b.Linef("avatar.HairColor = %s;", csharpColor(a.HairColor))
	}
	if a.HairPath != "" {
		b.Linef("avatar.HairPath = %s;", csharpString(a.HairPath))
	}
	if a.Height != 0 {
		b.Linef("avatar.Height = %s;", csharpFloat(a.Height))
	}
	if a.Weight != 0 {
		b.Linef("avatar.Weight = %s;", csharpFloat(a.Weight))
	}
	if a.Gender != 0 {
		b.Linef("avatar.Gender = %s;", csharpFloat(a.Gender))
	}

	emitLayerList(b, "FaceLayers", a.FaceLayers)
	emitLayerList(b, "BodyLayers", a.BodyLayers)
	emitLayerList(b, "AccessoryLayers", a.AccessoryLayers)

	b.CloseBlock()
}

func emitLayerList(b *Builder, listName string, layers []blueprint.AppearanceLayer) {
	for _, layer := range layers {
		b.Linef("avatar.%s.Add(new AvatarLayer(%s, %s));",
			listName, csharpString(layer.Path), csharpColor(layer.Color))
	}
}
