package blueprint

import "strings"

// Older editor builds persisted enum-like fields with their UI label
// attached, e.g. "Finish kind: complete". normalizeEnum recovers the
// canonical value. This is a load-time migration for historical documents;
// the generators never see un-normalized values.
func normalizeEnum(s string) string {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeTrigger(t *Trigger) {
	t.Type = TriggerType(normalizeEnum(string(t.Type)))
	t.FinishKind = FinishKind(normalizeEnum(string(t.FinishKind)))
	t.TargetAction = strings.TrimSpace(t.TargetAction)
	t.TargetID = strings.TrimSpace(t.TargetID)
}

// Normalize migrates a loaded quest document in place: trims identifiers
// and strips historical UI-label prefixes from enum-like fields. Call it
// after unmarshaling, before validation or generation.
func (q *Quest) Normalize() {
	q.ID = strings.TrimSpace(q.ID)
	q.Name = strings.TrimSpace(q.Name)
	for i := range q.StartTriggers {
		normalizeTrigger(&q.StartTriggers[i])
	}
	for i := range q.FinishTriggers {
		normalizeTrigger(&q.FinishTriggers[i])
	}
	for i := range q.Objectives {
		obj := &q.Objectives[i]
		obj.Name = strings.TrimSpace(obj.Name)
		for j := range obj.StartTriggers {
			normalizeTrigger(&obj.StartTriggers[j])
		}
		for j := range obj.FinishTriggers {
			normalizeTrigger(&obj.FinishTriggers[j])
		}
	}
	for i := range q.DataFields {
		q.DataFields[i].Type = DataFieldType(normalizeEnum(string(q.DataFields[i].Type)))
	}
}

// Normalize migrates a loaded NPC document in place. See Quest.Normalize.
func (n *NPC) Normalize() {
	n.ID = strings.TrimSpace(n.ID)
	n.Name = strings.TrimSpace(n.Name)
	n.Relationship.UnlockType = UnlockType(normalizeEnum(string(n.Relationship.UnlockType)))
	for i := range n.Schedule {
		n.Schedule[i].Kind = ScheduleActionKind(normalizeEnum(string(n.Schedule[i].Kind)))
	}
}
