package transform

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// PostponeRetirement works Years more. Service years grow with it, and the
// severance receipt age and contribution end ages that coincided with the
// old retirement age move along.
type PostponeRetirement struct {
	Years int
}

func (pr *PostponeRetirement) Name() string { return "postpone_retirement" }

func (pr *PostponeRetirement) Description() string {
	return fmt.Sprintf("Postpone retirement by %d years", pr.Years)
}

func (pr *PostponeRetirement) Validate(base *domain.Profile) error {
	if base == nil {
		return NewTransformError(pr.Name(), "validate", "base profile cannot be nil", nil)
	}
	if pr.Years < 0 {
		return NewTransformError(pr.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", pr.Years), nil)
	}
	if base.RetirementAge+pr.Years >= base.EndAge {
		return NewTransformError(pr.Name(), "validate",
			fmt.Sprintf("retirement at %d would not precede end age %d", base.RetirementAge+pr.Years, base.EndAge), nil)
	}
	return nil
}

func (pr *PostponeRetirement) Apply(base *domain.Profile) (*domain.Profile, error) {
	p := base.Clone()
	old := base.RetirementAge
	shift := func(age *int) {
		if *age == old {
			*age += pr.Years
		}
	}

	p.RetirementAge += pr.Years
	if p.ServiceYears > 0 {
		p.ServiceYears += pr.Years
	}
	shift(&p.SeveranceReceiveAge)
	shift(&p.DCEndAge)
	shift(&p.IDeCoEndAge)
	return p, nil
}

// SetSeveranceAge receives the severance payment at Age.
type SetSeveranceAge struct {
	Age int
}

func (ss *SetSeveranceAge) Name() string { return "set_severance_age" }

func (ss *SetSeveranceAge) Description() string {
	return fmt.Sprintf("Receive severance at age %d", ss.Age)
}

func (ss *SetSeveranceAge) Validate(base *domain.Profile) error {
	if base == nil {
		return NewTransformError(ss.Name(), "validate", "base profile cannot be nil", nil)
	}
	if ss.Age < base.RetirementAge || ss.Age >= base.EndAge {
		return NewTransformError(ss.Name(), "validate",
			fmt.Sprintf("age %d must be between retirement age %d and end age %d", ss.Age, base.RetirementAge, base.EndAge), nil)
	}
	return nil
}

func (ss *SetSeveranceAge) Apply(base *domain.Profile) (*domain.Profile, error) {
	p := base.Clone()
	p.SeveranceReceiveAge = ss.Age
	return p, nil
}

// Account selects which defined-contribution account a transform touches.
type Account string

const (
	AccountDC    Account = "dc"
	AccountIDeCo Account = "ideco"
	AccountBoth  Account = "both"
)

// ParseAccount accepts dc, ideco or both in any case.
func ParseAccount(s string) (Account, error) {
	switch a := Account(strings.ToLower(strings.TrimSpace(s))); a {
	case AccountDC, AccountIDeCo, AccountBoth:
		return a, nil
	case "":
		return AccountBoth, nil
	default:
		return "", fmt.Errorf("unknown account %q (valid: dc, ideco, both)", s)
	}
}

// AdjustReturnRate sets the annual return rate of one or both accounts.
type AdjustReturnRate struct {
	Account Account
	Rate    decimal.Decimal
}

func (ar *AdjustReturnRate) Name() string { return "adjust_return_rate" }

func (ar *AdjustReturnRate) Description() string {
	return fmt.Sprintf("Set %s return rate to %s%%", ar.Account, ar.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
}

func (ar *AdjustReturnRate) Validate(base *domain.Profile) error {
	if base == nil {
		return NewTransformError(ar.Name(), "validate", "base profile cannot be nil", nil)
	}
	if ar.Rate.IsNegative() {
		return NewTransformError(ar.Name(), "validate", fmt.Sprintf("rate must be non-negative, got %s", ar.Rate), nil)
	}
	if _, err := ParseAccount(string(ar.Account)); err != nil {
		return NewTransformError(ar.Name(), "validate", "invalid account", err)
	}
	return nil
}

func (ar *AdjustReturnRate) Apply(base *domain.Profile) (*domain.Profile, error) {
	p := base.Clone()
	account, _ := ParseAccount(string(ar.Account))
	if account != AccountIDeCo {
		p.DCReturnRate = ar.Rate
	}
	if account != AccountDC {
		p.IDeCoReturnRate = ar.Rate
	}
	return p, nil
}

// SetPensionExemption toggles the national pension premium exemption. Turning
// it on also stops continued iDeCo contributions, which the exemption rules out.
type SetPensionExemption struct {
	Enabled bool
}

func (se *SetPensionExemption) Name() string { return "set_pension_exemption" }

func (se *SetPensionExemption) Description() string {
	if se.Enabled {
		return "Take the national pension premium exemption"
	}
	return "Pay national pension premiums in full"
}

func (se *SetPensionExemption) Validate(base *domain.Profile) error {
	if base == nil {
		return NewTransformError(se.Name(), "validate", "base profile cannot be nil", nil)
	}
	return nil
}

func (se *SetPensionExemption) Apply(base *domain.Profile) (*domain.Profile, error) {
	p := base.Clone()
	p.PensionExemption = se.Enabled
	if se.Enabled {
		p.IDeCoContinueContribution = false
	}
	return p, nil
}

// ContinueIDeCo keeps contributing to iDeCo until Until.
type ContinueIDeCo struct {
	Until int
}

func (ci *ContinueIDeCo) Name() string { return "continue_ideco" }

func (ci *ContinueIDeCo) Description() string {
	return fmt.Sprintf("Keep contributing to iDeCo until age %d", ci.Until)
}

func (ci *ContinueIDeCo) Validate(base *domain.Profile) error {
	if base == nil {
		return NewTransformError(ci.Name(), "validate", "base profile cannot be nil", nil)
	}
	if base.PensionExemption {
		return NewTransformError(ci.Name(), "validate", "continued contributions are not allowed with the pension exemption", nil)
	}
	if ci.Until < base.IDeCoStartAge || ci.Until >= base.EndAge {
		return NewTransformError(ci.Name(), "validate",
			fmt.Sprintf("age %d must be between iDeCo start age %d and end age %d", ci.Until, base.IDeCoStartAge, base.EndAge), nil)
	}
	return nil
}

func (ci *ContinueIDeCo) Apply(base *domain.Profile) (*domain.Profile, error) {
	p := base.Clone()
	p.IDeCoContinueContribution = true
	p.IDeCoEndAge = ci.Until
	return p, nil
}
