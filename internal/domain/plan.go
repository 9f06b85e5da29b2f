package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode is how a defined-contribution balance is paid out.
type Mode string

const (
	ModeLump    Mode = "lump"
	ModePension Mode = "pension"
)

// EventKind identifies the source of a lump-sum payment.
type EventKind string

const (
	KindSeverance EventKind = "severance"
	KindDC        EventKind = "dc"
	KindIDeCo     EventKind = "ideco"
)

// IsPensionType reports whether the kind is one of the defined-contribution plans.
func (k EventKind) IsPensionType() bool {
	return k == KindDC || k == KindIDeCo
}

// Interval is a half-open year range [Start, End) of service or plan coverage.
type Interval struct {
	Start int `yaml:"start" json:"startAge"`
	End   int `yaml:"end" json:"endAge"`
}

// Length returns End-Start, or zero for empty and inverted intervals.
func (iv Interval) Length() int {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// LumpSumItem is one labelled payment within a lump-sum event.
type LumpSumItem struct {
	Label  string          `json:"item"`
	Age    int             `json:"age"`
	Amount decimal.Decimal `json:"amount"`
}

// LumpSumEvent is a taxable retirement-income event. Payments received at the
// same age are merged into a single event before deduction and tax.
type LumpSumEvent struct {
	Kind    EventKind       `json:"kind"`
	Age     int             `json:"age"`
	Items   []LumpSumItem   `json:"items"`
	Amount  decimal.Decimal `json:"amount"`
	Periods []Interval      `json:"periods"`
}

// Receipt is the payout choice for one plan. Age is the receipt age for a lump
// sum or the first payment age for a pension.
type Receipt struct {
	Mode Mode `yaml:"mode" json:"mode"`
	Age  int  `yaml:"age" json:"age"`
}

// Lump builds a lump-sum receipt at age.
func Lump(age int) Receipt { return Receipt{Mode: ModeLump, Age: age} }

// Pension builds a pension receipt starting at age.
func Pension(age int) Receipt { return Receipt{Mode: ModePension, Age: age} }

// Candidate is one concrete payout plan for the DC and iDeCo balances.
type Candidate struct {
	DC    Receipt `yaml:"dc" json:"dc"`
	IDeCo Receipt `yaml:"ideco" json:"ideco"`
}

// ChosenAges lists the receipt and start ages picked by the candidate, DC first.
func (c Candidate) ChosenAges() []int {
	var ages []int
	for _, r := range []Receipt{c.DC, c.IDeCo} {
		if r.Mode == ModeLump || r.Mode == ModePension {
			ages = append(ages, r.Age)
		}
	}
	return ages
}

func (c Candidate) String() string {
	return fmt.Sprintf("dc=%s@%d ideco=%s@%d", c.DC.Mode, c.DC.Age, c.IDeCo.Mode, c.IDeCo.Age)
}
