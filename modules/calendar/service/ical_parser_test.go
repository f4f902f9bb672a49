package service

import (
	"strings"
	"testing"
	"time"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:evt-1@example.com
SUMMARY:Morning shoot
DTSTART:20250310T090000Z
DTEND:20250310T110000Z
DESCRIPTION:Client session
LOCATION:Studio A
END:VEVENT
BEGIN:VEVENT
UID:evt-2@example.com
SUMMARY:All day fair
DTSTART;VALUE=DATE:20250312
DTEND;VALUE=DATE:20250313
END:VEVENT
END:VCALENDAR`

func TestParseExtractsCompleteEvents(t *testing.T) {
	p := NewICalParser(time.UTC)
	events := p.Parse(sampleFeed)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.ID != "evt-1@example.com" {
		t.Fatalf("unexpected id %q", first.ID)
	}
	if first.Title != "Morning shoot" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	wantStart := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	if !first.Start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", first.Start, wantStart)
	}
	if first.Description != "Client session" || first.Location != "Studio A" {
		t.Fatalf("details not carried: %+v", first)
	}
	if first.IsAllDay {
		t.Fatal("timed event flagged all-day")
	}

	second := events[1]
	if !second.IsAllDay {
		t.Fatal("VALUE=DATE event not flagged all-day")
	}
}

func TestParseAllDayDateIsHostTimezoneIndependent(t *testing.T) {
	feed := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:xmas
SUMMARY:Holiday
DTSTART;VALUE=DATE:20241225
DTEND;VALUE=DATE:20241226
END:VEVENT
END:VCALENDAR`

	// Parsers configured with wildly different locations must still land
	// the all-day date on 2024-12-25.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	honolulu, err := time.LoadLocation("Pacific/Honolulu")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	for _, loc := range []*time.Location{time.UTC, tokyo, honolulu} {
		events := NewICalParser(loc).Parse(feed)
		if len(events) != 1 {
			t.Fatalf("loc %v: expected 1 event, got %d", loc, len(events))
		}
		y, m, d := events[0].Start.Date()
		if y != 2024 || m != time.December || d != 25 {
			t.Fatalf("loc %v: all-day start drifted to %v", loc, events[0].Start)
		}
	}
}

func TestParseDropsIncompleteEventsKeepsRest(t *testing.T) {
	feed := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:no-title
DTSTART:20250301T100000Z
DTEND:20250301T110000Z
END:VEVENT
BEGIN:VEVENT
UID:no-end
SUMMARY:Missing end
DTSTART:20250302T100000Z
END:VEVENT
BEGIN:VEVENT
UID:inverted
SUMMARY:Ends before it starts
DTSTART:20250303T120000Z
DTEND:20250303T100000Z
END:VEVENT
BEGIN:VEVENT
UID:good
SUMMARY:Keeper
DTSTART:20250304T100000Z
DTEND:20250304T110000Z
END:VEVENT
END:VCALENDAR`

	events := NewICalParser(time.UTC).Parse(feed)
	if len(events) != 1 {
		t.Fatalf("expected only the valid event, got %d", len(events))
	}
	if events[0].ID != "good" {
		t.Fatalf("wrong survivor: %q", events[0].ID)
	}
}

func TestParseNeverErrorsOnGarbage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"html page", "<html><body>Not a calendar</body></html>"},
		{"random text", "hello world this is not ical at all"},
		{"truncated calendar", "BEGIN:VCALENDAR\nBEGIN:VEVENT\nSUMMARY:Cut off"},
	}
	p := NewICalParser(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := p.Parse(tt.content)
			if events == nil {
				t.Fatal("Parse must return an empty slice, never nil")
			}
			if len(events) != 0 {
				t.Fatalf("expected no events, got %d", len(events))
			}
		})
	}
}

func TestParseSynthesizesIDWhenUIDMissing(t *testing.T) {
	feed := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
SUMMARY:No UID here
DTSTART:20250305T100000Z
DTEND:20250305T110000Z
END:VEVENT
END:VCALENDAR`

	events := NewICalParser(time.UTC).Parse(feed)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !strings.HasPrefix(events[0].ID, "evt-") {
		t.Fatalf("synthesized id missing prefix: %q", events[0].ID)
	}
}

func TestParseFloatingTimeUsesConfiguredLocation(t *testing.T) {
	feed := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:floating
SUMMARY:Local meeting
DTSTART:20250306T140000
DTEND:20250306T150000
END:VEVENT
END:VCALENDAR`

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	events := NewICalParser(berlin).Parse(feed)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	want := time.Date(2025, 3, 6, 14, 0, 0, 0, berlin)
	if !events[0].Start.Equal(want) {
		t.Fatalf("floating start = %v, want %v", events[0].Start, want)
	}
}

func TestParseCarriesRRule(t *testing.T) {
	feed := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:weekly
SUMMARY:Standing gig
DTSTART:20250301T100000Z
DTEND:20250301T120000Z
RRULE:FREQ=WEEKLY;COUNT=4
END:VEVENT
END:VCALENDAR`

	events := NewICalParser(time.UTC).Parse(feed)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].RawRRule != "FREQ=WEEKLY;COUNT=4" {
		t.Fatalf("rrule not carried: %q", events[0].RawRRule)
	}
}

func TestParseSalvagesNeighboursOfCorruptBlock(t *testing.T) {
	// The first VEVENT carries a structurally broken property line, which
	// fails the whole-calendar parse. The second, valid event must survive.
	feed := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:broken
THIS LINE HAS NO COLON
DTSTART:20250610T100000Z
DTEND:20250610T110000Z
SUMMARY:Broken block
END:VEVENT
BEGIN:VEVENT
UID:good
SUMMARY:Venue walkthrough
DTSTART:20250611T100000Z
DTEND:20250611T110000Z
END:VEVENT
END:VCALENDAR`

	events := NewICalParser(time.UTC).Parse(feed)
	if len(events) != 1 {
		t.Fatalf("expected the valid event to survive, got %d events", len(events))
	}
	if events[0].ID != "good" {
		t.Fatalf("wrong event survived: %q", events[0].ID)
	}
	want := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(want) {
		t.Fatalf("start = %v, want %v", events[0].Start, want)
	}
}
