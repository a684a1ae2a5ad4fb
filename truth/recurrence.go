package truth

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// defaultExpansionCeiling is the fixed bound used when the caller requests
// no explicit instance count (spec §5).
const defaultExpansionCeiling = 500

// RuleOptions is the input to ExpandRule.
type RuleOptions struct {
	// Rule is an RFC 5545 RRULE value string, e.g.
	// "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=10". Grammar parsing is delegated
	// entirely to rrule-go; this wrapper only handles DTSTART injection,
	// COUNT/UNTIL reconciliation, EXDATE buffering, and duration
	// application (spec §1 Non-goals, §5).
	Rule string
	// DTStart is the first occurrence's start instant. A zoned DTStart
	// (non-UTC Location) drives DST-aware duration application.
	DTStart time.Time
	// Duration is the fixed clock-time length of every occurrence.
	Duration time.Duration
	// ExDates are excluded occurrence start instants, compared by exact
	// instant after normalizing to UTC.
	ExDates []time.Time
	// MaxCount is the caller's requested instance count. Zero means "use
	// the default ceiling" (spec §5).
	MaxCount int
}

// ExpandRule expands a recurrence rule into concrete UTC instants (spec §5
// "the recurrence-rule wrapper"). The underlying RFC 5545 grammar is
// evaluated entirely by rrule-go; this function only implements the thin
// contract spec.md reserves: DTSTART injection, COUNT/UNTIL reconciliation
// against the caller's requested ceiling, EXDATE buffering, and DST-aware
// duration application.
func ExpandRule(opts RuleOptions) ([]ExpandedEvent, error) {
	if strings.TrimSpace(opts.Rule) == "" {
		return nil, newInvalidRuleError(opts.Rule, "empty rule text")
	}

	requested := opts.MaxCount
	if requested <= 0 {
		requested = defaultExpansionCeiling
	}
	libCeiling := requested + len(opts.ExDates)

	ro, err := rrule.StrToROption(opts.Rule)
	if err != nil {
		return nil, newInvalidRuleError(opts.Rule, "%s", err)
	}
	ro.Dtstart = opts.DTStart

	// COUNT/UNTIL reconciliation: a rule-supplied COUNT is honored but
	// capped at the ceiling; a rule with neither COUNT nor UNTIL gets the
	// ceiling injected as its COUNT so the underlying library terminates.
	if ro.Count > 0 {
		if ro.Count > libCeiling {
			ro.Count = libCeiling
		}
	} else if ro.Until.IsZero() {
		ro.Count = libCeiling
	}

	rule, err := rrule.NewRRule(*ro)
	if err != nil {
		return nil, newInvalidRuleError(opts.Rule, "%s", err)
	}

	instances := rule.All()

	excluded := make(map[int64]bool, len(opts.ExDates))
	for _, t := range opts.ExDates {
		excluded[t.UTC().Unix()] = true
	}

	events := make([]ExpandedEvent, 0, len(instances))
	for _, inst := range instances {
		if excluded[inst.UTC().Unix()] {
			continue
		}
		end := applyDuration(inst, opts.Duration)
		events = append(events, ExpandedEvent{Start: inst.UTC(), End: end.UTC()})
		if len(events) >= requested {
			break
		}
	}
	return events, nil
}

// applyDuration adds d to start as wall-clock arithmetic in start's own
// zone rather than as a raw instant offset, so a fixed clock-time duration
// (e.g. "1 hour") crossing a daylight-saving transition still ends at the
// intended local wall-clock time instead of gaining or losing the DST
// offset (the original's DST-aware duration application).
func applyDuration(start time.Time, d time.Duration) time.Time {
	loc := start.Location()
	if loc == nil || loc == time.UTC {
		return start.Add(d)
	}
	h := int(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second

	end := time.Date(
		start.Year(), start.Month(), start.Day(),
		start.Hour()+h, start.Minute()+m, start.Second()+s,
		start.Nanosecond()+int(d),
		loc,
	)
	// A wall-clock time inside a spring-forward gap does not exist and
	// time.Date resolves it to an earlier instant; move it past the gap.
	wall := time.Date(start.Year(), start.Month(), start.Day(),
		start.Hour()+h, start.Minute()+m, start.Second()+s, start.Nanosecond()+int(d), time.UTC)
	got := time.Date(end.Year(), end.Month(), end.Day(),
		end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), time.UTC)
	if got.Before(wall) {
		end = end.Add(wall.Sub(got))
	}
	return end
}

// ResolveTimezone validates and loads an IANA zone identifier (spec §7
// InvalidTimezone). time.LoadLocation is the standard-library mechanism
// for this; no third-party IANA tzdata lookup library appears anywhere in
// the retrieved corpus, so there is nothing to wire here instead.
func ResolveTimezone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, newInvalidTimezoneError(name, "%s", err)
	}
	return loc, nil
}
