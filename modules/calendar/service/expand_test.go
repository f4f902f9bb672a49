package service

import (
	"testing"
	"time"

	"vendorhub/modules/calendar/entity"
)

func TestExpandRecurringPassesThroughPlainEvents(t *testing.T) {
	ev := entity.ExternalEvent{
		ID:    "plain",
		Title: "One-off",
		Start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}
	out := ExpandRecurring([]entity.ExternalEvent{ev},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	if len(out) != 1 || out[0].ID != "plain" {
		t.Fatalf("plain event not passed through: %+v", out)
	}
}

func TestExpandRecurringWeekly(t *testing.T) {
	ev := entity.ExternalEvent{
		ID:       "weekly",
		Title:    "Standing gig",
		Start:    time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
		RawRRule: "FREQ=WEEKLY;COUNT=4",
	}
	out := ExpandRecurring([]entity.ExternalEvent{ev},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC))

	if len(out) != 4 {
		t.Fatalf("expected 4 instances, got %d", len(out))
	}
	for i, inst := range out {
		wantStart := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC).AddDate(0, 0, 7*i)
		if !inst.Start.Equal(wantStart) {
			t.Fatalf("instance %d start = %v, want %v", i, inst.Start, wantStart)
		}
		if got := inst.End.Sub(inst.Start); got != 2*time.Hour {
			t.Fatalf("instance %d duration = %v, want 2h", i, got)
		}
		if inst.RawRRule != "" {
			t.Fatal("expanded instances must not carry the rule")
		}
	}

	// Instance ids must be distinct so the merge layer can key on them.
	seen := map[string]bool{}
	for _, inst := range out {
		if seen[inst.ID] {
			t.Fatalf("duplicate instance id %q", inst.ID)
		}
		seen[inst.ID] = true
	}
}

func TestExpandRecurringClipsToRange(t *testing.T) {
	ev := entity.ExternalEvent{
		ID:       "daily",
		Title:    "Daily",
		Start:    time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		RawRRule: "FREQ=DAILY",
	}
	out := ExpandRecurring([]entity.ExternalEvent{ev},
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC))

	if len(out) != 3 {
		t.Fatalf("expected 3 instances inside the range, got %d", len(out))
	}
	for _, inst := range out {
		if inst.Start.Day() < 10 || inst.Start.Day() > 12 {
			t.Fatalf("instance outside range: %v", inst.Start)
		}
	}
}

func TestExpandRecurringBadRuleKeepsBaseEvent(t *testing.T) {
	ev := entity.ExternalEvent{
		ID:       "broken",
		Title:    "Broken rule",
		Start:    time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC),
		RawRRule: "FREQ=NONSENSE;;;",
	}
	out := ExpandRecurring([]entity.ExternalEvent{ev},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))

	if len(out) != 1 {
		t.Fatalf("expected base event to survive, got %d events", len(out))
	}
	if out[0].ID != "broken" || out[0].RawRRule != "" {
		t.Fatalf("base event not kept cleanly: %+v", out[0])
	}
}
