package truth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflictsAdjacencyIsNotConflict(t *testing.T) {
	a := []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(10, 0)}}
	b := []ExpandedEvent{{Start: mkTime(10, 0), End: mkTime(11, 0)}}
	assert.Empty(t, FindConflicts(a, b))
}

func TestFindConflictsOverlap(t *testing.T) {
	a := []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(12, 0)}}
	b := []ExpandedEvent{{Start: mkTime(10, 0), End: mkTime(11, 0)}}
	conflicts := FindConflicts(a, b)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(60), conflicts[0].OverlapMinutes)
}

func TestFindConflictsSymmetric(t *testing.T) {
	a := []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(12, 0)}}
	b := []ExpandedEvent{{Start: mkTime(10, 0), End: mkTime(11, 0)}}
	ab := FindConflicts(a, b)
	ba := FindConflicts(b, a)
	require.Len(t, ab, len(ba))
	assert.Equal(t, ab[0].OverlapMinutes, ba[0].OverlapMinutes)
}

func TestFindConflictsIdenticalEventsConflictFully(t *testing.T) {
	events := []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(10, 30)}}
	conflicts := FindConflicts(events, events)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(90), conflicts[0].OverlapMinutes)
}

func TestFindConflictsOverlapNeverNegative(t *testing.T) {
	a := []ExpandedEvent{{Start: mkTime(9, 0), End: mkTime(9, 30)}}
	b := []ExpandedEvent{{Start: mkTime(9, 15), End: mkTime(9, 45)}}
	conflicts := FindConflicts(a, b)
	require.Len(t, conflicts, 1)
	assert.GreaterOrEqual(t, conflicts[0].OverlapMinutes, int64(0))
}
