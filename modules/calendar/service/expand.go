package service

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"vendorhub/core/constants"
	"vendorhub/core/logger"
	"vendorhub/modules/calendar/entity"
)

// ExpandRecurring replaces RRULE-bearing events with their concrete
// instances inside [rangeStart, rangeEnd]. Non-recurring events pass through
// untouched. A rule that fails to parse keeps the base event as-is rather
// than dropping it.
func ExpandRecurring(events []entity.ExternalEvent, rangeStart, rangeEnd time.Time) []entity.ExternalEvent {
	out := make([]entity.ExternalEvent, 0, len(events))
	for _, ev := range events {
		if ev.RawRRule == "" {
			out = append(out, ev)
			continue
		}
		out = append(out, expandOne(ev, rangeStart, rangeEnd)...)
	}
	return out
}

func expandOne(ev entity.ExternalEvent, rangeStart, rangeEnd time.Time) []entity.ExternalEvent {
	opt, err := rrule.StrToROption(ev.RawRRule)
	if err != nil {
		logger.Warn("ExpandRecurring:BadRRule", "event_id", ev.ID, "error", err)
		ev.RawRRule = ""
		return []entity.ExternalEvent{ev}
	}
	opt.Dtstart = ev.Start

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		logger.Warn("ExpandRecurring:BadRRule", "event_id", ev.ID, "error", err)
		ev.RawRRule = ""
		return []entity.ExternalEvent{ev}
	}

	duration := ev.End.Sub(ev.Start)
	starts := rule.Between(rangeStart, rangeEnd, true)
	if len(starts) > constants.MaxRecurrenceInstances {
		starts = starts[:constants.MaxRecurrenceInstances]
	}

	instances := make([]entity.ExternalEvent, 0, len(starts))
	for _, start := range starts {
		inst := ev
		inst.RawRRule = ""
		inst.Start = start
		inst.End = start.Add(duration)
		inst.ID = fmt.Sprintf("%s-%s", ev.ID, start.Format("20060102T150405"))
		instances = append(instances, inst)
	}
	return instances
}
