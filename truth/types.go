package truth

import "time"

// ExpandedEvent is a concrete calendar instance: a pair of UTC instants
// produced by evaluating a recurrence rule at a specific base time and
// duration (or supplied directly by a caller with no recurrence at all).
type ExpandedEvent struct {
	Start time.Time
	End   time.Time
}

// EventStream is a named bag of ExpandedEvents from one source calendar.
// Events need not be sorted or non-overlapping within a stream.
type EventStream struct {
	StreamID string
	Events   []ExpandedEvent
}

// PrivacyLevel controls whether a BusyBlock reports how many streams
// contributed to it.
type PrivacyLevel int

const (
	Full PrivacyLevel = iota
	Opaque
)

func (p PrivacyLevel) String() string {
	if p == Opaque {
		return "opaque"
	}
	return "full"
}

// BusyBlock is one disjoint, merged busy interval. SourceCount is the
// number of distinct streams contributing an overlapping event, or 0 when
// privacy is Opaque.
type BusyBlock struct {
	Start       time.Time
	End         time.Time
	SourceCount int
}

// FreeSlot is one disjoint gap between busy intervals (or the whole window,
// if there is no busy interval at all).
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int64
}

// Conflict is one overlapping pair drawn from two event lists.
type Conflict struct {
	A              ExpandedEvent
	B              ExpandedEvent
	OverlapMinutes int64
}

// UnifiedAvailability is the result of merging multiple event streams over
// a window: busy and free intervals that exactly tile [WindowStart,
// WindowEnd] with no gaps and no overlaps.
type UnifiedAvailability struct {
	Busy        []BusyBlock
	Free        []FreeSlot
	WindowStart time.Time
	WindowEnd   time.Time
	Privacy     PrivacyLevel
}

func newFreeSlot(start, end time.Time) FreeSlot {
	return FreeSlot{Start: start, End: end, DurationMinutes: int64(end.Sub(start).Minutes())}
}

// interval is the package-private working type shared by the clip/sort/
// merge pipeline used by find_free_slots and merge_availability alike
// (spec §4.5 Contract A steps 1-3, reused verbatim by Contract D step 2).
type interval struct {
	start time.Time
	end   time.Time
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// overlapsStrict reports whether two intervals overlap under the strict
// inequality used throughout this package: touching at a boundary is not
// an overlap.
func overlapsStrict(a, b interval) bool {
	return a.start.Before(b.end) && b.start.Before(a.end)
}
