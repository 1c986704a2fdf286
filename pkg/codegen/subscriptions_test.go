package codegen

import (
	"strings"
	"testing"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

func TestEventDelegateType(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"OnDealCompleted", "Action"},
		{"OnRelationshipChange", "Action<float>"},
		{"OnUnlocked", "Action<EUnlockType, bool>"},
		{"OnContractOffered", "Action<float, int, EDealWindow, EQuality>"},
		{"OnSleepEnd", "Action<int>"},
		{"OnNPCSpawned", "Action<NPC>"},
		{"OnPlayerSpawned", "Action<Player>"},
	}
	for _, tt := range tests {
		if got := eventDelegateType(tt.event); got != tt.want {
			t.Errorf("eventDelegateType(%q) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventArgList(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"OnDayPass", "()"},
		{"OnRelationshipChange", "(delta)"},
		{"OnUnlocked", "(unlockType, notify)"},
		{"OnContractOffered", "(payment, quantity, window, quality)"},
	}
	for _, tt := range tests {
		if got := eventArgList(tt.event); got != tt.want {
			t.Errorf("eventArgList(%q) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func subscriptionsFor(t *testing.T, q *blueprint.Quest) string {
	t.Helper()
	handlers := CollectHandlers(q)
	names := EntryNames(q)
	b := NewBuilder()
	EmitSubscriptions(b, q, handlers, names)
	return b.String()
}

func TestEmitSubscriptions_NPCComponentRole(t *testing.T) {
	q := questWithObjectives("go_home")
	q.Objectives[0].FinishTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeNPCEvent, TargetAction: "NPCCustomer.OnDealCompleted", TargetID: "benji_coleman"},
	}

	out := subscriptionsFor(t, q)

	if !strings.Contains(out, `NPCManager.GetNPC("benji_coleman")`) {
		t.Error("missing NPC lookup by ID")
	}
	if !strings.Contains(out, "if (npc == null)") {
		t.Error("missing null guard on NPC lookup")
	}
	if !strings.Contains(out, "npc.Customer.OnDealCompleted += onDealCompletedHandler;") {
		t.Errorf("component NPCCustomer should route through npc.Customer:\n%s", out)
	}
	if !strings.Contains(out, "MelonLogger.Warning") {
		t.Error("lookup miss should log a warning")
	}
}

func TestEmitSubscriptions_NPCRoleTable(t *testing.T) {
	tests := []struct {
		component string
		event     string
		wantPath  string
	}{
		{"NPCDealer", "OnContractOffered", "npc.Dealer.OnContractOffered"},
		{"NPCRelationship", "OnRelationshipChange", "npc.Relationship.OnRelationshipChange"},
		{"NPC", "OnDied", "npc.OnDied"},
	}
	for _, tt := range tests {
		q := questWithObjectives("only")
		q.Objectives[0].FinishTriggers = []blueprint.Trigger{
			{Type: blueprint.TriggerTypeNPCEvent, TargetAction: tt.component + "." + tt.event, TargetID: "someone"},
		}
		out := subscriptionsFor(t, q)
		if !strings.Contains(out, tt.wantPath+" +=") {
			t.Errorf("%s.%s should subscribe on %s:\n%s", tt.component, tt.event, tt.wantPath, out)
		}
	}
}

func TestEmitSubscriptions_QuestEvent(t *testing.T) {
	q := questWithObjectives("only")
	q.Objectives[0].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeQuestEvent, TargetAction: "Quest.OnQuestEnd", TargetID: "prior_quest"},
	}

	out := subscriptionsFor(t, q)
	if !strings.Contains(out, `QuestManager.GetQuest("prior_quest")`) {
		t.Error("missing quest lookup by ID")
	}
	if !strings.Contains(out, "quest.OnQuestEnd += onQuestEndHandler;") {
		t.Errorf("quest event should subscribe on the resolved instance:\n%s", out)
	}
}

func TestEmitSubscriptions_SingletonGuard(t *testing.T) {
	q := questWithObjectives("only")
	q.Objectives[0].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeStatic, TargetAction: "TimeManager.OnDayPass"},
	}

	out := subscriptionsFor(t, q)
	if !strings.Contains(out, "if (TimeManager.Instance != null)") {
		t.Error("TimeManager event needs an instance null check")
	}
	if !strings.Contains(out, "TimeManager.Instance.OnDayPass += onDayPassHandler;") {
		t.Errorf("TimeManager event should subscribe on the instance:\n%s", out)
	}
}

func TestEmitSubscriptions_StaticAndSpawnEvents(t *testing.T) {
	q := questWithObjectives("only")
	q.Objectives[0].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeStatic, TargetAction: "NPCManager.OnNPCSpawned"},
	}

	out := subscriptionsFor(t, q)
	if !strings.Contains(out, "NPCManager.OnNPCSpawned += onNPCSpawnedHandler;") {
		t.Errorf("plain static event subscribes on the class:\n%s", out)
	}
	if !strings.Contains(out, "(npc) =>") {
		t.Errorf("spawn event callback should take the spawned entity:\n%s", out)
	}
}

func TestEmitSubscriptions_ObjectiveNullGuard(t *testing.T) {
	q := questWithObjectives("go_home")
	q.Objectives[0].FinishTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeNPCEvent, TargetAction: "NPCCustomer.OnDealCompleted", TargetID: "x"},
	}

	out := subscriptionsFor(t, q)
	if !strings.Contains(out, "if (goHome1 != null)") {
		t.Errorf("objective-scoped handler must null-guard its entry:\n%s", out)
	}
	if !strings.Contains(out, "goHome1.Complete();") {
		t.Errorf("handler should complete the owning entry:\n%s", out)
	}
}

func TestEmitSubscriptions_QuestScopeNoGuard(t *testing.T) {
	q := questWithObjectives("only")
	q.FinishTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeStatic, TargetAction: "TimeManager.OnWeekPass", FinishKind: blueprint.FinishExpire},
	}

	out := subscriptionsFor(t, q)
	if !strings.Contains(out, "Expire();") {
		t.Errorf("quest-scope finish trigger should call the quest method bare:\n%s", out)
	}
}

func TestEmitSubscriptions_TryCatchPerHandler(t *testing.T) {
	q := questWithObjectives("a", "b")
	q.Objectives[0].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeStatic, TargetAction: "TimeManager.OnDayPass"},
	}
	q.Objectives[1].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeStatic, TargetAction: "TimeManager.OnWeekPass"},
	}

	out := subscriptionsFor(t, q)
	if got := strings.Count(out, "catch (Exception e)"); got != 2 {
		t.Errorf("expected one catch per handler, got %d", got)
	}
	if !strings.Contains(out, "MelonLogger.Error") {
		t.Error("subscription failures should be logged")
	}
}

func TestEmitSubscriptions_CustomTriggerComment(t *testing.T) {
	q := questWithObjectives("only")
	q.Objectives[0].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeCustom, TargetAction: "MyMod.OnSomething"},
	}

	out := subscriptionsFor(t, q)
	if !strings.Contains(out, "// Custom trigger 'MyMod.OnSomething': wire this up manually.") {
		t.Errorf("custom triggers degrade to a comment:\n%s", out)
	}
	if strings.Contains(out, "MyMod.OnSomething +=") {
		t.Error("custom triggers must not emit a subscription")
	}
}

func TestEmitHandlerFields(t *testing.T) {
	q := questWithObjectives("only")
	q.Objectives[0].StartTriggers = []blueprint.Trigger{
		{Type: blueprint.TriggerTypeNPCEvent, TargetAction: "NPCRelationship.OnRelationshipChange", TargetID: "x"},
		{Type: blueprint.TriggerTypeStatic, TargetAction: "TimeManager.OnDayPass"},
	}

	b := NewBuilder()
	EmitHandlerFields(b, CollectHandlers(q))
	out := b.String()

	if !strings.Contains(out, "private Action<float> onRelationshipChangeHandler;") {
		t.Errorf("parameterized field declaration wrong:\n%s", out)
	}
	if !strings.Contains(out, "private Action onDayPassHandler;") {
		t.Errorf("zero-arg field declaration wrong:\n%s", out)
	}
}
