package truth

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFreeSlotsBasic(t *testing.T) {
	events := []ExpandedEvent{
		{Start: mkTime(9, 0), End: mkTime(11, 0)},
	}
	slots := FindFreeSlots(events, mkTime(8, 0), mkTime(17, 0))
	require.Len(t, slots, 2)
	assert.Equal(t, mkTime(8, 0), slots[0].Start)
	assert.Equal(t, mkTime(9, 0), slots[0].End)
	assert.Equal(t, int64(60), slots[0].DurationMinutes)
	assert.Equal(t, mkTime(11, 0), slots[1].Start)
	assert.Equal(t, mkTime(17, 0), slots[1].End)
	assert.Equal(t, int64(360), slots[1].DurationMinutes)
}

func TestFindFreeSlotsSortedNonOverlappingInsideWindow(t *testing.T) {
	events := []ExpandedEvent{
		{Start: mkTime(13, 0), End: mkTime(14, 0)},
		{Start: mkTime(9, 0), End: mkTime(10, 0)},
	}
	slots := FindFreeSlots(events, mkTime(8, 0), mkTime(17, 0))
	for i := 1; i < len(slots); i++ {
		assert.True(t, !slots[i].Start.Before(slots[i-1].End))
	}
	for _, s := range slots {
		assert.False(t, s.Start.Before(mkTime(8, 0)))
		assert.False(t, s.End.After(mkTime(17, 0)))
	}
}

func TestMergeAvailabilityScenario(t *testing.T) {
	streamA := EventStream{StreamID: "A", Events: []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(11, 0)}}}
	streamB := EventStream{StreamID: "B", Events: []ExpandedEvent{{Start: mkTime(10, 0), End: mkTime(12, 0)}}}

	result := MergeAvailability([]EventStream{streamA, streamB}, mkTime(8, 0), mkTime(17, 0), Full)

	require.Len(t, result.Busy, 1)
	assert.Equal(t, mkTime(9, 0), result.Busy[0].Start)
	assert.Equal(t, mkTime(12, 0), result.Busy[0].End)
	assert.Equal(t, 2, result.Busy[0].SourceCount)

	require.Len(t, result.Free, 2)
	assert.Equal(t, int64(60), result.Free[0].DurationMinutes)
	assert.Equal(t, int64(300), result.Free[1].DurationMinutes)
}

func TestMergeAvailabilityOpaquePrivacyZeroesSourceCount(t *testing.T) {
	streamA := EventStream{StreamID: "A", Events: []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(11, 0)}}}
	result := MergeAvailability([]EventStream{streamA}, mkTime(8, 0), mkTime(17, 0), Opaque)
	require.Len(t, result.Busy, 1)
	assert.Equal(t, 0, result.Busy[0].SourceCount)
}

func TestMergeAvailabilityDegenerateWindow(t *testing.T) {
	result := MergeAvailability(nil, mkTime(10, 0), mkTime(9, 0), Full)
	assert.Empty(t, result.Busy)
	assert.Empty(t, result.Free)
}

func TestMergeAvailabilityNoEventsWholeWindowFree(t *testing.T) {
	result := MergeAvailability(nil, mkTime(8, 0), mkTime(17, 0), Full)
	assert.Empty(t, result.Busy)
	require.Len(t, result.Free, 1)
	assert.Equal(t, mkTime(8, 0), result.Free[0].Start)
	assert.Equal(t, mkTime(17, 0), result.Free[0].End)
}

func TestAvailabilityTilesWindowExactly(t *testing.T) {
	streamA := EventStream{StreamID: "A", Events: []ExpandedEvent{
		{Start: mkTime(9, 0), End: mkTime(10, 0)},
		{Start: mkTime(13, 0), End: mkTime(14, 30)},
	}}
	ws, we := mkTime(8, 0), mkTime(17, 0)
	result := MergeAvailability([]EventStream{streamA}, ws, we, Full)

	type span struct {
		start, end time.Time
	}
	var spans []span
	for _, b := range result.Busy {
		spans = append(spans, span{b.Start, b.End})
	}
	for _, f := range result.Free {
		spans = append(spans, span{f.Start, f.End})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

	require.NotEmpty(t, spans)
	assert.True(t, spans[0].start.Equal(ws))
	assert.True(t, spans[len(spans)-1].end.Equal(we))
	for i := 1; i < len(spans); i++ {
		assert.True(t, spans[i].start.Equal(spans[i-1].end), "gap or overlap between spans %d and %d", i-1, i)
	}
}

func mkTime(hour, min int) time.Time {
	return time.Date(2026, 1, 1, hour, min, 0, 0, time.UTC)
}
