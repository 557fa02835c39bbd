package trace

import "testing"

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.Record(0x1000, "CallIntMethod", "", JniCall)
	c.Record(0x1004, "CallIntMethod", "", JniCall)
	c.Record(0x2000, "FindClass", "", JniCall)

	if got := c.Count("CallIntMethod"); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	events := c.Events()
	if len(events) != 3 {
		t.Fatalf("%d events, want 3", len(events))
	}
	if events[0].Counter != 1 || events[1].Counter != 2 {
		t.Errorf("per-name counters wrong: %d, %d", events[0].Counter, events[1].Counter)
	}
	if events[0].Time.IsZero() {
		t.Error("event not timestamped")
	}
}

func TestCollectorClearKeepsSession(t *testing.T) {
	c := NewCollector()
	id := c.SessionID
	c.Record(0, "x", "")
	c.Clear()
	if len(c.Events()) != 0 || c.Count("x") != 0 {
		t.Error("clear left events behind")
	}
	if c.SessionID != id {
		t.Error("clear changed the session id")
	}
}

func TestTags(t *testing.T) {
	var tags Tags
	tags.Add(Bind)
	tags.Add(Bind)
	tags.Add(JniCall)
	if len(tags) != 2 {
		t.Errorf("duplicate tag added: %v", tags)
	}
	if !tags.Has(Bind) || tags.Has(Wrap) {
		t.Error("Has answers wrong")
	}
	if tags.Primary() != Bind {
		t.Errorf("primary = %q", tags.Primary())
	}
	if got := tags.Strings()[0]; got != "#bind" {
		t.Errorf("rendered tag = %q", got)
	}
}
