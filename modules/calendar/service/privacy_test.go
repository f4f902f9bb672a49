package service

import (
	"testing"
	"time"

	"vendorhub/modules/calendar/entity"
)

func sampleEvents() []entity.ExternalEvent {
	return []entity.ExternalEvent{
		{
			ID:          "a",
			Title:       "Client shoot",
			Start:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			End:         time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
			Description: "Bring the second camera",
			Location:    "Studio A",
		},
		{
			ID:       "b",
			Title:    "Venue walkthrough",
			Start:    time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC),
			End:      time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC),
			Location: "Grand Hall",
			IsAllDay: false,
		},
	}
}

func TestApplyPrivacyHidesDetails(t *testing.T) {
	settings := entity.PrivacySettings{ShowEventDetails: false}
	out := ApplyPrivacy(sampleEvents(), settings)

	for _, ev := range out {
		if ev.Description != "" || ev.Location != "" {
			t.Fatalf("details survived redaction: %+v", ev)
		}
	}
	// Identity and timing fields survive untouched.
	if out[0].ID != "a" || out[0].Title != "Client shoot" {
		t.Fatalf("identity fields damaged: %+v", out[0])
	}
	if !out[0].Start.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("start damaged: %v", out[0].Start)
	}
}

func TestApplyPrivacyShowDetailsPassesThrough(t *testing.T) {
	settings := entity.PrivacySettings{ShowEventDetails: true}
	out := ApplyPrivacy(sampleEvents(), settings)
	if out[0].Description != "Bring the second camera" || out[0].Location != "Studio A" {
		t.Fatalf("details dropped despite ShowEventDetails: %+v", out[0])
	}
}

func TestApplyPrivacyIsIdempotent(t *testing.T) {
	settings := entity.PrivacySettings{ShowEventDetails: false}
	once := ApplyPrivacy(sampleEvents(), settings)
	twice := ApplyPrivacy(once, settings)

	if len(once) != len(twice) {
		t.Fatalf("length changed on second application: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("event %d changed on second application", i)
		}
	}
}

func TestApplyPrivacyDoesNotMutateInput(t *testing.T) {
	in := sampleEvents()
	_ = ApplyPrivacy(in, entity.PrivacySettings{ShowEventDetails: false})
	if in[0].Description != "Bring the second camera" {
		t.Fatal("input slice was mutated")
	}
}
