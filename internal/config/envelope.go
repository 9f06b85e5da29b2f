package config

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// AppVersion tags exported envelopes.
const AppVersion = "payoutopt/1.0"

// ErrNotObject is returned when an imported document is not a JSON object.
var ErrNotObject = errors.New("profile document must be a JSON object")

// Envelope is the persisted form of a profile.
type Envelope struct {
	AppVersion string          `json:"app_version"`
	Input      *domain.Profile `json:"input"`
}

// Export encodes a profile as an indented envelope.
func Export(p *domain.Profile) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("export: profile is required")
	}
	return json.MarshalIndent(Envelope{AppVersion: AppVersion, Input: p}, "", "  ")
}

// Import decodes an envelope or a bare profile object. Unknown keys are
// ignored and malformed numbers fall back to zero.
func Import(data []byte) (*domain.Profile, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	if inner, ok := obj["input"]; ok {
		m, ok := inner.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("import: %w", ErrNotObject)
		}
		obj = m
	}
	return DecodeProfile(obj), nil
}

func decodeObject(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("import: invalid JSON: %w", err)
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("import: %w", ErrNotObject)
	}
	return obj, nil
}

var intFields = map[string]func(*domain.Profile) *int{
	"currentAge":          func(p *domain.Profile) *int { return &p.CurrentAge },
	"retirementAge":       func(p *domain.Profile) *int { return &p.RetirementAge },
	"joinAge":             func(p *domain.Profile) *int { return &p.JoinAge },
	"serviceYears":        func(p *domain.Profile) *int { return &p.ServiceYears },
	"severanceReceiveAge": func(p *domain.Profile) *int { return &p.SeveranceReceiveAge },
	"dcStartAge":          func(p *domain.Profile) *int { return &p.DCStartAge },
	"dcEndAge":            func(p *domain.Profile) *int { return &p.DCEndAge },
	"idecoStartAge":       func(p *domain.Profile) *int { return &p.IDeCoStartAge },
	"idecoEndAge":         func(p *domain.Profile) *int { return &p.IDeCoEndAge },
	"endAge":              func(p *domain.Profile) *int { return &p.EndAge },
}

var decimalFields = map[string]func(*domain.Profile) *decimal.Decimal{
	"severancePay":             func(p *domain.Profile) *decimal.Decimal { return &p.SeverancePay },
	"dcCurrentBalance":         func(p *domain.Profile) *decimal.Decimal { return &p.DCCurrentBalance },
	"dcMonthlyContribution":    func(p *domain.Profile) *decimal.Decimal { return &p.DCMonthlyContribution },
	"dcReturnRate":             func(p *domain.Profile) *decimal.Decimal { return &p.DCReturnRate },
	"idecoCurrentBalance":      func(p *domain.Profile) *decimal.Decimal { return &p.IDeCoCurrentBalance },
	"idecoMonthlyContribution": func(p *domain.Profile) *decimal.Decimal { return &p.IDeCoMonthlyContribution },
	"idecoReturnRate":          func(p *domain.Profile) *decimal.Decimal { return &p.IDeCoReturnRate },
	"currentSalary":            func(p *domain.Profile) *decimal.Decimal { return &p.CurrentSalary },
	"avgSalary":                func(p *domain.Profile) *decimal.Decimal { return &p.AvgSalary },
}

var boolFields = map[string]func(*domain.Profile) *bool{
	"pensionExemption":          func(p *domain.Profile) *bool { return &p.PensionExemption },
	"idecoContinueContribution": func(p *domain.Profile) *bool { return &p.IDeCoContinueContribution },
}

// DecodeProfile builds a profile from a decoded JSON object keyed by the
// camelCase field names.
func DecodeProfile(obj map[string]interface{}) *domain.Profile {
	p := &domain.Profile{}
	for key, field := range intFields {
		*field(p) = calculation.SafeInt(obj[key], 0)
	}
	for key, field := range decimalFields {
		*field(p) = calculation.SafeNumber(obj[key], decimal.Zero)
	}
	for key, field := range boolFields {
		*field(p) = safeBool(obj[key])
	}
	if p.SeveranceReceiveAge == 0 {
		p.SeveranceReceiveAge = p.RetirementAge
	}
	return p
}

func safeBool(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return err == nil && b
	case nil:
		return false
	default:
		return !calculation.SafeNumber(x, decimal.Zero).IsZero()
	}
}
