package codegen

import (
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

const questNamespace = "GeneratedMod.Quests"

// GenerateQuest renders a quest blueprint into one complete, compilable C#
// class. The blueprint is read-only input; two calls on equal blueprints
// produce identical text.
func GenerateQuest(q *blueprint.Quest) (string, error) {
	if q == nil {
		return "", ErrNilBlueprint
	}

	b := NewBuilder()
	className := MakePascal(q.Name, "GeneratedQuest")
	questID := q.ID
	if questID == "" {
		questID = strings.ToLower(className)
	}
	title := q.Title
	if title == "" {
		title = className
	}
	entryNames := EntryNames(q)
	handlers := CollectHandlers(q)

	emitHeader(b, "Quest", title)
	emitUsings(b, "Quests")

	b.OpenBlock("namespace " + questNamespace)
	b.OpenBlock("public class " + className + " : Quest")

	b.Linef("public const string QuestID = %s;", csharpString(questID))
	b.Blank()
	b.Linef("protected override string Title => %s;", csharpString(title))
	if q.Description != "" {
		b.Linef("protected override string Description => %s;", csharpString(q.Description))
	}
	if q.AutoBegin {
		b.Line("protected override bool AutoBegin => true;")
	}
	if q.Repeatable {
		b.Line("protected override bool Repeatable => true;")
	}

	if q.HasCustomIcon {
		b.Blank()
		emitQuestIcon(b, q)
	}

	if len(q.DataFields) > 0 {
		b.Blank()
		EmitDataClass(b, className, q.DataFields)
	}

	if len(entryNames) > 0 {
		b.Blank()
		for _, name := range entryNames {
			b.Linef("private QuestEntry %s;", name)
		}
	}

	b.Blank()
	emitQuestCreate(b, q, entryNames)
	b.Blank()
	emitQuestLoad(b, q, entryNames)

	if q.Rewards.HasAny() {
		b.Blank()
		emitQuestRewards(b, q.Rewards)
	}

	if len(handlers) > 0 {
		b.Blank()
		EmitHandlerFields(b, handlers)
	}

	b.Blank()
	EmitSubscriptions(b, q, handlers, entryNames)

	b.CloseBlock()
	b.CloseBlock()
	return b.String(), nil
}

func emitQuestIcon(b *Builder, q *blueprint.Quest) {
	b.OpenBlock("protected override Sprite LoadIcon()")
	if q.IconFileName == "" {
		b.Comment("No icon file was set in the editor.")
		b.Line("return null;")
	} else {
		b.Linef("return LoadEmbeddedSprite(%s);", csharpString(q.IconFileName))
	}
	b.CloseBlock()
}

// emitEntrySetup writes the AddEntry calls shared by creation and load.
// Both methods must produce the same set of named entries, so the lines
// come from one place.
func emitEntrySetup(b *Builder, q *blueprint.Quest, entryNames []string) {
	for i, obj := range q.Objectives {
		title := obj.Title
		if title == "" {
			title = obj.Name
		}
		progress := obj.RequiredProgress
		if progress < 1 {
			progress = 1
		}
		b.Linef("%s = AddEntry(%s, %d);", entryNames[i], csharpString(title), progress)
		if obj.POIPosition != nil {
			b.Linef("%s.SetPOI(%s);", entryNames[i], csharpVec3(*obj.POIPosition))
		}
	}
}

func emitQuestCreate(b *Builder, q *blueprint.Quest, entryNames []string) {
	b.OpenBlock("public void CreateQuest()")
	emitEntrySetup(b, q, entryNames)
	b.Line("SubscribeTriggers();")
	b.CloseBlock()
}

// emitQuestLoad recreates the named entries after a save is loaded. It
// deliberately sets no activation state: restoring entry states is the
// save system's job, and doing it here would fight it.
func emitQuestLoad(b *Builder, q *blueprint.Quest, entryNames []string) {
	b.OpenBlock("public void OnLoaded()")
	b.Comment("Entries are recreated by name only; their states are restored by the save system.")
	emitEntrySetup(b, q, entryNames)
	b.Line("SubscribeTriggers();")
	b.CloseBlock()
}

func emitQuestRewards(b *Builder, r blueprint.Rewards) {
	b.OpenBlock("protected override void OnComplete()")
	b.Line("base.OnComplete();")
	b.Line("GrantRewards();")
	b.CloseBlock()
	b.Blank()
	b.OpenBlock("private void GrantRewards()")
	if r.Money != 0 {
		b.Linef("Money.ChangeCashBalance(%d);", r.Money)
	}
	if r.XP != 0 {
		b.Linef("LevelManager.AddXP(%d);", r.XP)
	}
	for _, item := range r.Items {
		b.Linef("Inventory.AddItem(%s);", csharpString(item))
	}
	b.CloseBlock()
}
