package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

func TestGenerateNPC_NilBlueprint(t *testing.T) {
	_, err := GenerateNPC(nil)
	assert.ErrorIs(t, err, ErrNilBlueprint)
}

func TestGenerateNPC_Skeleton(t *testing.T) {
	n := blueprint.NewNPC("benji_coleman", "Benji Coleman")
	n.FirstName = "Benji"
	n.LastName = "Coleman"

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "namespace GeneratedMod.NPCs")
	assert.Contains(t, out, "public class BenjiColeman : NPC")
	assert.Contains(t, out, `public const string NPCID = "benji_coleman";`)
	assert.Contains(t, out, `protected override string FirstName => "Benji";`)
	assert.Contains(t, out, `protected override string LastName => "Coleman";`)
	assert.NotContains(t, out, "IsCustomer")
	assert.NotContains(t, out, "IsDealer")
}

func TestGenerateNPC_FrameworkSplit(t *testing.T) {
	out, err := GenerateNPC(blueprint.NewNPC("x", "Someone"))
	require.NoError(t, err)

	assert.Contains(t, out, "#if MONO")
	assert.Contains(t, out, "using ScheduleOne.AvatarFramework;")
	assert.Contains(t, out, "using Il2CppScheduleOne.AvatarFramework;")
	assert.Contains(t, out, "using ScheduleOne.NPCs;")
}

func TestGenerateNPC_SetupCallsOnlyConfiguredSections(t *testing.T) {
	n := blueprint.NewNPC("min", "Minimal")
	n.Schedule = nil

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "public void Setup()")
	assert.NotContains(t, out, "ConfigureRelationship")
	assert.NotContains(t, out, "ConfigureCustomer")
	assert.NotContains(t, out, "ConfigureDealer")
	assert.NotContains(t, out, "StockInventory")
	assert.NotContains(t, out, "ApplyAppearance")
	assert.NotContains(t, out, "BuildSchedule")
}

func TestGenerateNPC_Relationship(t *testing.T) {
	n := blueprint.NewNPC("rel", "Friendly Guy")
	n.Relationship = blueprint.RelationshipSettings{
		Delta:      2.5,
		Unlocked:   true,
		UnlockType: blueprint.UnlockDirectApproach,
	}

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "ConfigureRelationship(Relationship);")
	assert.Contains(t, out, "relationship.SetDelta(2.5f);")
	assert.Contains(t, out, "relationship.Unlock(EUnlockType.DirectApproach, false);")
}

func TestGenerateNPC_Customer(t *testing.T) {
	n := blueprint.NewNPC("cust", "Big Spender")
	n.IsCustomer = true
	n.Customer = blueprint.CustomerSettings{
		MinWeeklySpend:   200,
		MaxWeeklySpend:   800,
		MinOrdersPerWeek: 1,
		MaxOrdersPerWeek: 4,
		PreferredEffects: []string{"energizing", "calming"},
	}

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "protected override bool IsCustomer => true;")
	assert.Contains(t, out, "customer.MinWeeklySpend = 200f;")
	assert.Contains(t, out, "customer.MaxWeeklySpend = 800f;")
	assert.Contains(t, out, "customer.MinOrdersPerWeek = 1;")
	assert.Contains(t, out, "customer.MaxOrdersPerWeek = 4;")
	assert.Contains(t, out, `customer.PreferredEffects.Add("energizing");`)
	assert.Contains(t, out, `customer.PreferredEffects.Add("calming");`)
}

func TestGenerateNPC_Dealer(t *testing.T) {
	n := blueprint.NewNPC("deal", "Corner Guy")
	n.IsDealer = true
	n.Dealer = blueprint.DealerSettings{Cut: 0.2, HomeName: "Motel Room 2"}

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "protected override bool IsDealer => true;")
	assert.Contains(t, out, "dealer.Cut = 0.2f;")
	assert.Contains(t, out, `dealer.HomeName = "Motel Room 2";`)
}

func TestGenerateNPC_InventoryQuantityFloor(t *testing.T) {
	n := blueprint.NewNPC("inv", "Stocked")
	n.Inventory = []blueprint.InventoryItem{
		{ItemID: "baggie", Quantity: 5},
		{ItemID: "lighter", Quantity: 0},
	}

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, `inventory.Add("baggie", 5);`)
	assert.Contains(t, out, `inventory.Add("lighter", 1);`)
}

func TestGenerateNPC_Appearance(t *testing.T) {
	n := blueprint.NewNPC("looks", "Styled")
	n.Appearance = blueprint.Appearance{
		SkinColor: blueprint.Color{R: 0.8, G: 0.6, B: 0.5},
		HairPath:  "Avatar/Hair/Spiky",
		Height:    1.1,
		FaceLayers: []blueprint.AppearanceLayer{
			{Path: "Avatar/Face/Eyes_01", Color: blueprint.Color{R: 0.1, G: 0.3, B: 0.7}},
		},
	}

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "ApplyAppearance(Avatar);")
	assert.Contains(t, out, "avatar.SkinColor = new Color(0.8f, 0.6f, 0.5f);")
	assert.Contains(t, out, `avatar.HairPath = "Avatar/Hair/Spiky";`)
	assert.Contains(t, out, "avatar.Height = 1.1f;")
	assert.Contains(t, out, `avatar.FaceLayers.Add(new AvatarLayer("Avatar/Face/Eyes_01", new Color(0.1f, 0.3f, 0.7f)));`)
	assert.NotContains(t, out, "avatar.HairColor")
	assert.NotContains(t, out, "avatar.Weight")
}

func TestGenerateNPC_Deterministic(t *testing.T) {
	n := blueprint.NewNPC("det", "Repeatable Renders")
	n.IsDealer = true
	n.Schedule = append(n.Schedule, blueprint.ScheduleAction{
		Kind:      blueprint.ActionHandleDeal,
		StartTime: 1800,
	})

	first, err := GenerateNPC(n)
	require.NoError(t, err)
	second, err := GenerateNPC(n)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateNPC_FallbackNames(t *testing.T) {
	n := &blueprint.NPC{}

	out, err := GenerateNPC(n)
	require.NoError(t, err)

	assert.Contains(t, out, "public class GeneratedNPC : NPC")
	assert.Contains(t, out, `public const string NPCID = "generatednpc";`)
	assert.Contains(t, out, `protected override string FirstName => "GeneratedNPC";`)
}
