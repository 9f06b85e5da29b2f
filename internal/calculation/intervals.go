package calculation

import (
	"sort"

	"github.com/rgehrsitz/payoutopt/internal/domain"
)

// MergeIntervals normalizes, sorts and coalesces intervals into a disjoint
// ascending set. Touching intervals are joined; empty ones are dropped.
func MergeIntervals(intervals []domain.Interval) []domain.Interval {
	norm := make([]domain.Interval, 0, len(intervals))
	for _, iv := range intervals {
		s, e := iv.Start, iv.End
		if s > e {
			s, e = e, s
		}
		if e > s {
			norm = append(norm, domain.Interval{Start: s, End: e})
		}
	}
	if len(norm) == 0 {
		return nil
	}
	sort.SliceStable(norm, func(i, j int) bool { return norm[i].Start < norm[j].Start })

	merged := []domain.Interval{norm[0]}
	for _, cur := range norm[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// UnionLength is the total number of years covered by the intervals.
func UnionLength(intervals []domain.Interval) int {
	total := 0
	for _, iv := range MergeIntervals(intervals) {
		total += iv.Length()
	}
	return total
}

// OverlapLength is the number of years covered by both sets.
func OverlapLength(a, b []domain.Interval) int {
	ma, mb := MergeIntervals(a), MergeIntervals(b)
	overlap := 0
	for i, j := 0, 0; i < len(ma) && j < len(mb); {
		s := max(ma[i].Start, mb[j].Start)
		e := min(ma[i].End, mb[j].End)
		if e > s {
			overlap += e - s
		}
		if ma[i].End < mb[j].End {
			i++
		} else {
			j++
		}
	}
	return overlap
}
