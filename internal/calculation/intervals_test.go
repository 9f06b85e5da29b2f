package calculation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/stretchr/testify/assert"
)

func iv(s, e int) domain.Interval { return domain.Interval{Start: s, End: e} }

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name     string
		in       []domain.Interval
		expected []domain.Interval
	}{
		{"empty", nil, nil},
		{"single", []domain.Interval{iv(22, 60)}, []domain.Interval{iv(22, 60)}},
		{"inverted is normalized", []domain.Interval{iv(60, 22)}, []domain.Interval{iv(22, 60)}},
		{"zero length dropped", []domain.Interval{iv(10, 10)}, nil},
		{
			"overlapping and touching coalesce",
			[]domain.Interval{iv(5, 3), iv(1, 2), iv(2, 4), iv(10, 10), iv(8, 9)},
			[]domain.Interval{iv(1, 5), iv(8, 9)},
		},
		{
			"contained interval absorbed",
			[]domain.Interval{iv(30, 60), iv(22, 65), iv(40, 50)},
			[]domain.Interval{iv(22, 65)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeIntervals(tt.in)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("MergeIntervals() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeIntervals_DoesNotMutateInput(t *testing.T) {
	in := []domain.Interval{iv(5, 3), iv(1, 2)}
	MergeIntervals(in)
	assert.Equal(t, []domain.Interval{iv(5, 3), iv(1, 2)}, in)
}

func TestUnionLength(t *testing.T) {
	assert.Equal(t, 0, UnionLength(nil))
	assert.Equal(t, 38, UnionLength([]domain.Interval{iv(22, 60)}))
	assert.Equal(t, 5, UnionLength([]domain.Interval{iv(1, 3), iv(2, 5), iv(5, 6)}))
	assert.Equal(t, 38, UnionLength([]domain.Interval{iv(22, 60), iv(30, 60), iv(40, 60)}))
}

func TestOverlapLength(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []domain.Interval
		expected int
	}{
		{"disjoint", []domain.Interval{iv(0, 10)}, []domain.Interval{iv(10, 20)}, 0},
		{"nested", []domain.Interval{iv(22, 60)}, []domain.Interval{iv(30, 60)}, 30},
		{
			"multiple segments",
			[]domain.Interval{iv(0, 10), iv(5, 15), iv(20, 30)},
			[]domain.Interval{iv(8, 22)},
			9,
		},
		{"empty side", nil, []domain.Interval{iv(1, 2)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OverlapLength(tt.a, tt.b))
			assert.Equal(t, tt.expected, OverlapLength(tt.b, tt.a), "overlap is symmetric")
		})
	}
}

func TestOverlapLength_BoundedByUnion(t *testing.T) {
	sets := [][]domain.Interval{
		{iv(22, 60)},
		{iv(30, 45), iv(50, 70)},
		{iv(0, 5), iv(3, 8), iv(40, 41)},
		{iv(60, 20)},
		nil,
	}
	for _, a := range sets {
		for _, b := range sets {
			o := OverlapLength(a, b)
			assert.LessOrEqual(t, o, min(UnionLength(a), UnionLength(b)))
		}
	}
}
