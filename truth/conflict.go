package truth

// FindConflicts is spec §4.5 Contract C: the quadratic pairwise overlap
// test between two event lists. Touching at a boundary is not a conflict.
//
// Two identical events (a == b) report OverlapMinutes equal to the full
// event duration rather than zero: overlapStart = max(a.Start, b.Start) =
// a.Start and overlapEnd = min(a.End, b.End) = a.End when the pair is
// identical, so the general formula already produces the full-duration
// result with no special case needed.
func FindConflicts(a, b []ExpandedEvent) []Conflict {
	var conflicts []Conflict
	for _, ea := range a {
		for _, eb := range b {
			ia := interval{start: ea.Start, end: ea.End}
			ib := interval{start: eb.Start, end: eb.End}
			if !overlapsStrict(ia, ib) {
				continue
			}
			overlapStart := maxTime(ea.Start, eb.Start)
			overlapEnd := minTime(ea.End, eb.End)
			conflicts = append(conflicts, Conflict{
				A:              ea,
				B:              eb,
				OverlapMinutes: int64(overlapEnd.Sub(overlapStart).Minutes()),
			})
		}
	}
	return conflicts
}
