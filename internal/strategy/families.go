package strategy

import (
	"fmt"

	"github.com/rgehrsitz/payoutopt/internal/domain"
)

const (
	ruleNote = "optimized for the 19-year rule, earliest age preferred"
	ageNote  = "earliest age preferred"
)

// cross builds every DC/iDeCo pairing of the given receipts.
func cross(dc, ideco []domain.Receipt) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(dc)*len(ideco))
	for _, d := range dc {
		for _, i := range ideco {
			out = append(out, domain.Candidate{DC: d, IDeCo: i})
		}
	}
	return out
}

func receipts(mode domain.Mode, ages []int) []domain.Receipt {
	out := make([]domain.Receipt, len(ages))
	for i, a := range ages {
		out[i] = domain.Receipt{Mode: mode, Age: a}
	}
	return out
}

// LumpSumFocus takes both plans as lump sums (strategy A).
type LumpSumFocus struct{}

func NewLumpSumFocus() *LumpSumFocus { return &LumpSumFocus{} }

func (LumpSumFocus) Code() string { return "A" }
func (LumpSumFocus) Name() string { return "Strategy A: Lump-sum focus" }

func (LumpSumFocus) Describe(c domain.Candidate, p domain.Profile) string {
	return fmt.Sprintf("Severance at %d. DC lump sum at %d, iDeCo lump sum at %d (%s)",
		p.SeveranceAge(), c.DC.Age, c.IDeCo.Age, ruleNote)
}

func (LumpSumFocus) Candidates(space SearchSpace) []domain.Candidate {
	return cross(receipts(domain.ModeLump, space.LumpAges), receipts(domain.ModeLump, space.LumpAges))
}

// DCLumpSplit takes DC as a lump sum and iDeCo as a pension (strategy B).
type DCLumpSplit struct{}

func NewDCLumpSplit() *DCLumpSplit { return &DCLumpSplit{} }

func (DCLumpSplit) Code() string { return "B" }
func (DCLumpSplit) Name() string { return "Strategy B: Split, DC lump sum" }

func (DCLumpSplit) Describe(c domain.Candidate, p domain.Profile) string {
	return fmt.Sprintf("Severance at %d. DC lump sum at %d, iDeCo pension from %d (%s)",
		p.SeveranceAge(), c.DC.Age, c.IDeCo.Age, ruleNote)
}

func (DCLumpSplit) Candidates(space SearchSpace) []domain.Candidate {
	return cross(receipts(domain.ModeLump, space.LumpAges), receipts(domain.ModePension, space.PensionStartAges))
}

// IDeCoLumpSplit takes DC as a pension and iDeCo as a lump sum (strategy C).
type IDeCoLumpSplit struct{}

func NewIDeCoLumpSplit() *IDeCoLumpSplit { return &IDeCoLumpSplit{} }

func (IDeCoLumpSplit) Code() string { return "C" }
func (IDeCoLumpSplit) Name() string { return "Strategy C: Split, iDeCo lump sum" }

func (IDeCoLumpSplit) Describe(c domain.Candidate, p domain.Profile) string {
	return fmt.Sprintf("Severance at %d. DC pension from %d, iDeCo lump sum at %d (%s)",
		p.SeveranceAge(), c.DC.Age, c.IDeCo.Age, ruleNote)
}

func (IDeCoLumpSplit) Candidates(space SearchSpace) []domain.Candidate {
	return cross(receipts(domain.ModePension, space.PensionStartAges), receipts(domain.ModeLump, space.LumpAges))
}

// PensionFocus takes both plans as pensions (strategy D).
type PensionFocus struct{}

func NewPensionFocus() *PensionFocus { return &PensionFocus{} }

func (PensionFocus) Code() string { return "D" }
func (PensionFocus) Name() string { return "Strategy D: Pension focus" }

func (PensionFocus) Describe(c domain.Candidate, p domain.Profile) string {
	return fmt.Sprintf("Severance at %d. DC pension from %d, iDeCo pension from %d (%s)",
		p.SeveranceAge(), c.DC.Age, c.IDeCo.Age, ageNote)
}

func (PensionFocus) Candidates(space SearchSpace) []domain.Candidate {
	return cross(receipts(domain.ModePension, space.PensionStartAges), receipts(domain.ModePension, space.PensionStartAges))
}
