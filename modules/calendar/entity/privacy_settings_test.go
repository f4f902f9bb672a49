package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDefaultPrivacySettings(t *testing.T) {
	vendorID := uuid.New()
	now := time.Date(2025, 3, 10, 16, 45, 0, 0, time.UTC)
	settings := DefaultPrivacySettings(vendorID, now)

	if !settings.ExternalCalendarEnabled {
		t.Fatal("sync must be enabled by default")
	}
	if settings.ShowEventDetails {
		t.Fatal("details must be hidden by default")
	}
	if !settings.SyncRangeStart.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("range start = %v, want midnight of today", settings.SyncRangeStart)
	}
	if !settings.SyncRangeEnd.Equal(time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("range end = %v, want six months out", settings.SyncRangeEnd)
	}
	if err := settings.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestPrivacySettingsValidate(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"valid six months", base, base.AddDate(0, 6, 0), false},
		{"valid one day", base, base.AddDate(0, 0, 1), false},
		{"start equals end", base, base, true},
		{"start after end", base.AddDate(0, 1, 0), base, true},
		{"span over a year", base, base.AddDate(1, 1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PrivacySettings{SyncRangeStart: tt.start, SyncRangeEnd: tt.end}
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
