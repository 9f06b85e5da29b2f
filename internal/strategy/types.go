package strategy

import (
	"sort"

	"github.com/rgehrsitz/payoutopt/internal/domain"
)

const (
	// MinReceiptAge is the earliest age a DC or iDeCo balance can be paid.
	MinReceiptAge = 60
	// MaxReceiptAge is the latest lump-sum receipt age considered.
	MaxReceiptAge = 75
	// ruleGapYears is the receipt gap after severance that restores the full
	// retirement income deduction.
	ruleGapYears = 20
	// fixedLumpSeveranceAge is the last severance age for which the lump age
	// is pinned to severance + ruleGapYears.
	fixedLumpSeveranceAge = 54
)

// Family is one way of combining DC and iDeCo payout modes.
type Family interface {
	Code() string
	Name() string
	Describe(c domain.Candidate, p domain.Profile) string
	Candidates(space SearchSpace) []domain.Candidate
}

// SearchSpace lists the ages each side of a candidate may use.
type SearchSpace struct {
	LumpAges         []int
	PensionStartAges []int
}

// NewSearchSpace derives the candidate ages for a profile. Lump ages are
// pinned to severance+20 (clamped to the receipt window) when severance is
// early, otherwise to 60; severance+20 is offered as an alternative whenever
// it falls inside the window. Pension payments always start at 60.
func NewSearchSpace(p domain.Profile) SearchSpace {
	sevAge := p.SeveranceAge()
	maxLump := min(MaxReceiptAge, p.EndAge)
	plus20 := sevAge + ruleGapYears

	fixed := MinReceiptAge
	if sevAge <= fixedLumpSeveranceAge {
		fixed = max(MinReceiptAge, min(plus20, maxLump))
	}
	ages := []int{fixed}
	if plus20 >= MinReceiptAge && plus20 <= maxLump {
		ages = append([]int{plus20}, ages...)
	}

	return SearchSpace{
		LumpAges:         uniqueFrom(ages, MinReceiptAge),
		PensionStartAges: []int{MinReceiptAge},
	}
}

// uniqueFrom returns the sorted distinct ages not below floor.
func uniqueFrom(ages []int, floor int) []int {
	seen := make(map[int]bool, len(ages))
	var out []int
	for _, a := range ages {
		if a >= floor && !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	sort.Ints(out)
	return out
}
