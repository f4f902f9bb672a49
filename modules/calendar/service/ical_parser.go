package service

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"vendorhub/core/logger"
	"vendorhub/core/utils"
	"vendorhub/modules/calendar/entity"
)

// ICalParser turns raw feed text into ExternalEvents. It is defensive by
// construction: one unusable VEVENT never aborts the rest of the feed, and
// the worst case for arbitrary input is an empty slice, never an error.
type ICalParser struct {
	// Location resolves floating date-times (no Z, no TZID). Defaults to UTC,
	// normally set to the vendor's configured timezone.
	Location *time.Location
}

func NewICalParser(loc *time.Location) *ICalParser {
	if loc == nil {
		loc = time.UTC
	}
	return &ICalParser{Location: loc}
}

// Parse extracts every complete VEVENT from the feed. Events missing a
// title, start, or end are dropped silently; non-iCal input yields an empty
// result.
func (p *ICalParser) Parse(content string) []entity.ExternalEvent {
	events := make([]entity.ExternalEvent, 0)
	if strings.TrimSpace(content) == "" {
		return events
	}

	cal, err := ics.ParseCalendar(strings.NewReader(content))
	if err != nil {
		// A single corrupt line fails the whole calendar in one parse pass.
		// Re-parse each VEVENT block in isolation so the damage stays local.
		logger.Warn("ICalParser:Parse:NotICalContent", "error", err)
		return p.salvageEvents(content)
	}

	for _, ve := range cal.Events() {
		ev, ok := p.parseVEvent(ve)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

// salvageEvents wraps each VEVENT block in a minimal VCALENDAR and parses it
// independently. Blocks that still fail are skipped; valid neighbours of a
// corrupt block survive.
func (p *ICalParser) salvageEvents(content string) []entity.ExternalEvent {
	events := make([]entity.ExternalEvent, 0)
	for _, block := range splitVEventBlocks(content) {
		wrapped := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//vendorhub//salvage//EN\r\n" +
			block + "END:VCALENDAR\r\n"
		cal, err := ics.ParseCalendar(strings.NewReader(wrapped))
		if err != nil {
			continue
		}
		for _, ve := range cal.Events() {
			if ev, ok := p.parseVEvent(ve); ok {
				events = append(events, ev)
			}
		}
	}
	return events
}

// splitVEventBlocks extracts the raw text of every BEGIN:VEVENT..END:VEVENT
// block, CRLF-normalized. Text outside event blocks is discarded.
func splitVEventBlocks(content string) []string {
	var blocks []string
	var cur strings.Builder
	inEvent := false
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		switch strings.TrimSpace(line) {
		case "BEGIN:VEVENT":
			inEvent = true
			cur.Reset()
			cur.WriteString("BEGIN:VEVENT\r\n")
		case "END:VEVENT":
			if inEvent {
				cur.WriteString("END:VEVENT\r\n")
				blocks = append(blocks, cur.String())
				inEvent = false
			}
		default:
			if inEvent && line != "" {
				cur.WriteString(line)
				cur.WriteString("\r\n")
			}
		}
	}
	return blocks
}

func (p *ICalParser) parseVEvent(ve *ics.VEvent) (entity.ExternalEvent, bool) {
	var out entity.ExternalEvent

	if prop := ve.GetProperty(ics.ComponentPropertySummary); prop != nil {
		out.Title = strings.TrimSpace(prop.Value)
	}
	if out.Title == "" {
		return out, false
	}

	startProp := ve.GetProperty(ics.ComponentPropertyDtStart)
	endProp := ve.GetProperty(ics.ComponentPropertyDtEnd)
	if startProp == nil || endProp == nil {
		return out, false
	}

	start, startAllDay, err := p.parseDateValue(startProp)
	if err != nil {
		return out, false
	}
	end, _, err := p.parseDateValue(endProp)
	if err != nil {
		return out, false
	}
	if end.Before(start) {
		return out, false
	}
	out.Start = start
	out.End = end
	out.IsAllDay = startAllDay

	if prop := ve.GetProperty(ics.ComponentPropertyDescription); prop != nil {
		out.Description = prop.Value
	}
	if prop := ve.GetProperty(ics.ComponentPropertyLocation); prop != nil {
		out.Location = prop.Value
	}

	if prop := ve.GetProperty(ics.ComponentPropertyUniqueId); prop != nil && prop.Value != "" {
		out.ID = prop.Value
	} else {
		// Synthesized IDs are not stable across re-parses, which is fine:
		// events are never persisted across fetches by identity.
		out.ID = fmt.Sprintf("evt-%d-%s", time.Now().UnixNano(), utils.GenerateShortSuffix())
	}

	if prop := ve.GetProperty(ics.ComponentPropertyRrule); prop != nil {
		out.RawRRule = prop.Value
	}

	return out, true
}

// parseDateValue handles the three value shapes a DTSTART/DTEND can take:
//   - VALUE=DATE / bare 8-digit dates (all-day), constructed as a calendar
//     date in UTC so the result is independent of the host timezone
//   - UTC date-times with a Z suffix
//   - floating date-times, resolved in the parser's Location
//
// A TZID parameter, when present, overrides the floating-time location.
func (p *ICalParser) parseDateValue(prop *ics.IANAProperty) (time.Time, bool, error) {
	val := strings.TrimSpace(prop.Value)
	if val == "" {
		return time.Time{}, false, fmt.Errorf("empty date value")
	}

	isDateOnly := !strings.Contains(val, "T")
	if params := prop.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			isDateOnly = true
		}
	}

	if isDateOnly {
		t, err := time.ParseInLocation("20060102", val, time.UTC)
		return t, true, err
	}

	if strings.HasSuffix(val, "Z") {
		t, err := time.Parse("20060102T150405Z", val)
		return t, false, err
	}

	loc := p.Location
	if params := prop.ICalParameters; params != nil {
		if tzs, ok := params["TZID"]; ok && len(tzs) > 0 {
			if tzLoc, err := time.LoadLocation(tzs[0]); err == nil {
				loc = tzLoc
			}
		}
	}
	t, err := time.ParseInLocation("20060102T150405", val, loc)
	return t, false, err
}
