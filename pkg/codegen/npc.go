package codegen

import (
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

const npcNamespace = "GeneratedMod.NPCs"

// GenerateNPC renders an NPC blueprint into one complete, compilable C#
// class. Feature sections (customer, dealer, relationship, inventory,
// appearance, schedule) are emitted only when the blueprint actually
// configures them, so default settings produce no dead code.
func GenerateNPC(n *blueprint.NPC) (string, error) {
	if n == nil {
		return "", ErrNilBlueprint
	}

	b := NewBuilder()
	className := MakePascal(n.Name, "GeneratedNPC")
	npcID := n.ID
	if npcID == "" {
		npcID = strings.ToLower(className)
	}
	firstName := n.FirstName
	if firstName == "" {
		firstName = className
	}

	emitHeader(b, "NPC", firstName)
	emitUsings(b, "AvatarFramework")

	b.OpenBlock("namespace " + npcNamespace)
	b.OpenBlock("public class " + className + " : NPC")

	b.Linef("public const string NPCID = %s;", csharpString(npcID))
	b.Blank()
	b.Linef("protected override string FirstName => %s;", csharpString(firstName))
	if n.LastName != "" {
		b.Linef("protected override string LastName => %s;", csharpString(n.LastName))
	}
	if n.IsCustomer {
		b.Line("protected override bool IsCustomer => true;")
	}
	if n.IsDealer {
		b.Line("protected override bool IsDealer => true;")
	}

	b.Blank()
	emitNPCSetup(b, n)

	if n.Relationship.HasAny() {
		b.Blank()
		emitRelationship(b, n.Relationship)
	}
	if n.IsCustomer {
		b.Blank()
		emitCustomer(b, n.Customer)
	}
	if n.IsDealer {
		b.Blank()
		emitDealer(b, n.Dealer)
	}
	if len(n.Inventory) > 0 {
		b.Blank()
		emitInventory(b, n.Inventory)
	}
	if n.Appearance.HasAny() {
		b.Blank()
		EmitAppearance(b, n)
	}
	if len(n.Schedule) > 0 {
		b.Blank()
		EmitSchedule(b, n)
	}

	b.CloseBlock()
	b.CloseBlock()
	return b.String(), nil
}

// emitNPCSetup writes the entry point the framework invokes after spawning
// the NPC. Only configured sections are called, in a fixed order.
func emitNPCSetup(b *Builder, n *blueprint.NPC) {
	b.OpenBlock("public void Setup()")
	if n.Relationship.HasAny() {
		b.Line("ConfigureRelationship(Relationship);")
	}
	if n.IsCustomer {
		b.Line("ConfigureCustomer(Customer);")
	}
	if n.IsDealer {
		b.Line("ConfigureDealer(Dealer);")
	}
	if len(n.Inventory) > 0 {
		b.Line("StockInventory(Inventory);")
	}
	if n.Appearance.HasAny() {
		b.Line("ApplyAppearance(Avatar);")
	}
	if len(n.Schedule) > 0 {
		b.Line("BuildSchedule(Schedule);")
	}
	b.CloseBlock()
}

func emitRelationship(b *Builder, r blueprint.RelationshipSettings) {
	b.OpenBlock("private void ConfigureRelationship(NPCRelationship relationship)")
	if r.Delta != 0 {
		b.Linef("relationship.SetDelta(%s);", csharpFloat(r.Delta))
	}
	if r.Unlocked {
		b.Linef("relationship.Unlock(EUnlockType.%s, false);", unlockTypeName(r.UnlockType))
	}
	b.CloseBlock()
}

func unlockTypeName(t blueprint.UnlockType) string {
	if t == blueprint.UnlockDirectApproach {
		return "DirectApproach"
	}
	return "Recommendation"
}

func emitCustomer(b *Builder, c blueprint.CustomerSettings) {
	b.OpenBlock("private void ConfigureCustomer(CustomerData customer)")
	if c.MinWeeklySpend != 0 {
		b.Linef("customer.MinWeeklySpend = %s;", csharpFloat(c.MinWeeklySpend))
	}
	if c.MaxWeeklySpend != 0 {
		b.Linef("customer.MaxWeeklySpend = %s;", csharpFloat(c.MaxWeeklySpend))
	}
	if c.MinOrdersPerWeek != 0 {
		b.Linef("customer.MinOrdersPerWeek = %d;", c.MinOrdersPerWeek)
	}
	if c.MaxOrdersPerWeek != 0 {
		b.Linef("customer.MaxOrdersPerWeek = %d;", c.MaxOrdersPerWeek)
	}
	for _, effect := range c.PreferredEffects {
		b.Linef("customer.PreferredEffects.Add(%s);", csharpString(effect))
	}
	b.CloseBlock()
}

func emitDealer(b *Builder, d blueprint.DealerSettings) {
	b.OpenBlock("private void ConfigureDealer(Dealer dealer)")
	if d.Cut != 0 {
		b.Linef("dealer.Cut = %s;", csharpFloat(d.Cut))
	}
	if d.HomeName != "" {
		b.Linef("dealer.HomeName = %s;", csharpString(d.HomeName))
	}
	b.CloseBlock()
}

func emitInventory(b *Builder, items []blueprint.InventoryItem) {
	b.OpenBlock("private void StockInventory(NPCInventory inventory)")
	for _, item := range items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		b.Linef("inventory.Add(%s, %d);", csharpString(item.ItemID), quantity)
	}
	b.CloseBlock()
}
