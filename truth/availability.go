package truth

import (
	"sort"
	"time"
)

// clipAndSort implements spec §4.5 Contract A steps 1-2: discard events
// entirely outside [ws, we], clamp survivors to the window, and sort
// ascending by start (tie-break by end).
func clipAndSort(events []ExpandedEvent, ws, we time.Time) []interval {
	var out []interval
	for _, e := range events {
		if !e.Start.Before(we) || !e.End.After(ws) {
			continue
		}
		s, en := e.Start, e.End
		if s.Before(ws) {
			s = ws
		}
		if en.After(we) {
			en = we
		}
		out = append(out, interval{start: s, end: en})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].start.Equal(out[j].start) {
			return out[i].start.Before(out[j].start)
		}
		return out[i].end.Before(out[j].end)
	})
	return out
}

// mergeIntervals implements spec §4.5 Contract A step 3: fold overlapping
// or touching intervals (already sorted by clipAndSort) into maximal busy
// intervals.
func mergeIntervals(sorted []interval) []interval {
	if len(sorted) == 0 {
		return nil
	}
	merged := []interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// freeSlotsFromBusy implements spec §4.5 Contract A step 4: a cursor walk
// over window-sorted busy intervals, emitting the gaps.
func freeSlotsFromBusy(busy []interval, ws, we time.Time) []FreeSlot {
	var slots []FreeSlot
	cursor := ws
	for _, b := range busy {
		if cursor.Before(b.start) {
			slots = append(slots, newFreeSlot(cursor, b.start))
		}
		if b.end.After(cursor) {
			cursor = b.end
		}
	}
	if cursor.Before(we) {
		slots = append(slots, newFreeSlot(cursor, we))
	}
	return slots
}

// FindFreeSlots is spec §4.5 Contract A.
func FindFreeSlots(events []ExpandedEvent, windowStart, windowEnd time.Time) []FreeSlot {
	if !windowStart.Before(windowEnd) {
		return nil
	}
	busy := mergeIntervals(clipAndSort(events, windowStart, windowEnd))
	return freeSlotsFromBusy(busy, windowStart, windowEnd)
}

// FindFirstFreeSlot is spec §4.5 Contract B.
func FindFirstFreeSlot(events []ExpandedEvent, windowStart, windowEnd time.Time, minMinutes int64) *FreeSlot {
	for _, slot := range FindFreeSlots(events, windowStart, windowEnd) {
		if slot.DurationMinutes >= minMinutes {
			s := slot
			return &s
		}
	}
	return nil
}

// taggedInterval is a window-clipped event interval tagged by clipAndTag
// with its stream index, so MergeAvailability can attribute busy blocks
// back to sources.
type taggedInterval struct {
	interval
	streamIdx int
}

func clipAndTag(streams []EventStream, ws, we time.Time) []taggedInterval {
	var out []taggedInterval
	for si, s := range streams {
		for _, e := range s.Events {
			if !e.Start.Before(we) || !e.End.After(ws) {
				continue
			}
			start, end := e.Start, e.End
			if start.Before(ws) {
				start = ws
			}
			if end.After(we) {
				end = we
			}
			out = append(out, taggedInterval{interval: interval{start: start, end: end}, streamIdx: si})
		}
	}
	return out
}

// MergeAvailability is spec §4.5 Contract D.
func MergeAvailability(streams []EventStream, windowStart, windowEnd time.Time, privacy PrivacyLevel) UnifiedAvailability {
	result := UnifiedAvailability{WindowStart: windowStart, WindowEnd: windowEnd, Privacy: privacy}
	if !windowStart.Before(windowEnd) {
		return result
	}

	tagged := clipAndTag(streams, windowStart, windowEnd)
	if len(tagged) == 0 {
		result.Free = []FreeSlot{newFreeSlot(windowStart, windowEnd)}
		return result
	}

	plain := make([]interval, len(tagged))
	for i, t := range tagged {
		plain[i] = t.interval
	}
	sort.Slice(plain, func(i, j int) bool {
		if !plain[i].start.Equal(plain[j].start) {
			return plain[i].start.Before(plain[j].start)
		}
		return plain[i].end.Before(plain[j].end)
	})
	merged := mergeIntervals(plain)

	busy := make([]BusyBlock, len(merged))
	for i, m := range merged {
		count := 0
		if privacy == Full {
			seen := make(map[int]bool)
			for _, t := range tagged {
				if overlapsStrict(t.interval, m) {
					seen[t.streamIdx] = true
				}
			}
			count = len(seen)
		}
		busy[i] = BusyBlock{Start: m.start, End: m.end, SourceCount: count}
	}
	result.Busy = busy
	result.Free = freeSlotsFromBusy(merged, windowStart, windowEnd)
	return result
}
