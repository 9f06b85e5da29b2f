package config

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MaxEndAge is the oldest terminal age accepted.
	MaxEndAge = 120
	// MinEndAge is the terminal age a profile must exceed; pension income is
	// projected from 60 onwards.
	MinEndAge = 60
)

// ValidationError collects every consistency problem found in a profile.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return fmt.Sprintf("%d issues: %s", len(e.Issues), strings.Join(e.Issues, "; "))
}

// ValidateProfile checks a profile for consistency. It returns nil or a
// *ValidationError listing all issues in a stable order.
func ValidateProfile(p *domain.Profile) error {
	if p == nil {
		return &ValidationError{Issues: []string{"profile is required"}}
	}
	if issues := Issues(p); len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Issues lists the consistency problems of a profile.
func Issues(p *domain.Profile) []string {
	var issues []string
	add := func(format string, args ...interface{}) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	ages := []struct {
		name  string
		value int
	}{
		{"current age", p.CurrentAge},
		{"retirement age", p.RetirementAge},
		{"join age", p.JoinAge},
		{"service years", p.ServiceYears},
		{"severance receive age", p.SeveranceReceiveAge},
		{"DC start age", p.DCStartAge},
		{"DC contribution end age", p.DCEndAge},
		{"iDeCo start age", p.IDeCoStartAge},
		{"iDeCo contribution end age", p.IDeCoEndAge},
		{"end age", p.EndAge},
	}
	for _, f := range ages {
		if f.value < 0 {
			add("%s must not be negative (got %d)", f.name, f.value)
		}
	}

	if p.CurrentAge > p.RetirementAge {
		add("current age (%d) must not exceed retirement age (%d)", p.CurrentAge, p.RetirementAge)
	}
	if p.JoinAge > p.RetirementAge {
		add("join age (%d) must not exceed retirement age (%d)", p.JoinAge, p.RetirementAge)
	}
	if p.ServiceYears > 0 && p.RetirementAge > 0 && p.JoinAge > 0 && p.JoinAge+p.ServiceYears != p.RetirementAge {
		add("join age + service years (%d + %d) does not match retirement age (%d)", p.JoinAge, p.ServiceYears, p.RetirementAge)
	}

	if p.DCStartAge > p.DCEndAge {
		add("DC start age (%d) must not exceed DC contribution end age (%d)", p.DCStartAge, p.DCEndAge)
	}
	if p.IDeCoStartAge > p.IDeCoEndAge {
		add("iDeCo start age (%d) must not exceed iDeCo contribution end age (%d)", p.IDeCoStartAge, p.IDeCoEndAge)
	}

	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"DC return rate", p.DCReturnRate},
		{"iDeCo return rate", p.IDeCoReturnRate},
		{"severance pay", p.SeverancePay},
		{"DC balance", p.DCCurrentBalance},
		{"DC monthly contribution", p.DCMonthlyContribution},
		{"iDeCo balance", p.IDeCoCurrentBalance},
		{"iDeCo monthly contribution", p.IDeCoMonthlyContribution},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			add("%s must not be negative (got %s)", f.name, f.value)
		}
	}

	if p.CurrentAge > p.EndAge {
		add("current age (%d) must not exceed end age (%d)", p.CurrentAge, p.EndAge)
	}
	if p.EndAge > MaxEndAge {
		add("end age (%d) must be %d or less", p.EndAge, MaxEndAge)
	}
	if p.EndAge <= MinEndAge {
		add("end age (%d) must be greater than %d", p.EndAge, MinEndAge)
	}

	if p.PensionExemption && p.IDeCoContinueContribution {
		add("national pension exemption cannot be combined with continued iDeCo contributions")
	}

	return issues
}
