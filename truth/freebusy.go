package truth

import "time"

// flattenStreams concatenates every stream's events into one list,
// discarding stream attribution (used by the free-busy contracts, which
// don't report source counts).
func flattenStreams(streams []EventStream) []ExpandedEvent {
	var out []ExpandedEvent
	for _, s := range streams {
		out = append(out, s.Events...)
	}
	return out
}

// FindFirstFreeAcross is spec §4.5 Contract E: flatten every stream, then
// delegate to Contract B.
//
// When streams is empty, the whole window is free; short-circuiting here
// avoids walking an empty interval list for what is definitionally the
// entire window. The result is the same as the unconditional path.
func FindFirstFreeAcross(streams []EventStream, windowStart, windowEnd time.Time, minMinutes int64) *FreeSlot {
	if len(streams) == 0 {
		if !windowStart.Before(windowEnd) {
			return nil
		}
		slot := newFreeSlot(windowStart, windowEnd)
		if slot.DurationMinutes < minMinutes {
			return nil
		}
		return &slot
	}
	return FindFirstFreeSlot(flattenStreams(streams), windowStart, windowEnd, minMinutes)
}
