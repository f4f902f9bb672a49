package service

import (
	"vendorhub/modules/calendar/entity"
)

// ApplyPrivacy redacts event detail fields according to the vendor's privacy
// settings. Pure and total: the input slice is never mutated, and applying
// the filter twice gives the same result as applying it once.
//
// Title is intentionally retained even when details are hidden; it drives
// the day-cell badge and tooltip. Only description and location are redacted.
func ApplyPrivacy(events []entity.ExternalEvent, settings entity.PrivacySettings) []entity.ExternalEvent {
	out := make([]entity.ExternalEvent, len(events))
	copy(out, events)
	if settings.ShowEventDetails {
		return out
	}
	for i := range out {
		out[i].Description = ""
		out[i].Location = ""
	}
	return out
}
