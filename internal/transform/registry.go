package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry creates transforms from string parameters, for CLI use.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory creates a transform from parameters.
type TransformFactory func(params map[string]string) (ProfileTransform, error)

// NewTransformRegistry creates a registry with every built-in transform.
func NewTransformRegistry() *TransformRegistry {
	r := &TransformRegistry{factories: make(map[string]TransformFactory)}
	r.Register("postpone_retirement", createPostponeRetirement)
	r.Register("set_severance_age", createSetSeveranceAge)
	r.Register("adjust_return_rate", createAdjustReturnRate)
	r.Register("set_pension_exemption", createSetPensionExemption)
	r.Register("continue_ideco", createContinueIDeCo)
	return r
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ProfileTransform, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns the registered transform names, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses "name:key=value,key=value", for example
// "set_severance_age:age=65". Transforms without parameters may omit the colon.
func (r *TransformRegistry) ParseTransformSpec(spec string) (ProfileTransform, error) {
	name, rest, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)

	params := map[string]string{}
	if rest = strings.TrimSpace(rest); rest != "" {
		for _, pair := range strings.Split(rest, ",") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter %q in transform spec %q, expected key=value", pair, spec)
			}
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return r.Create(name, params)
}

func intParam(params map[string]string, key string) (int, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing required parameter: %s", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func createPostponeRetirement(params map[string]string) (ProfileTransform, error) {
	years, err := intParam(params, "years")
	if err != nil {
		return nil, err
	}
	return &PostponeRetirement{Years: years}, nil
}

func createSetSeveranceAge(params map[string]string) (ProfileTransform, error) {
	age, err := intParam(params, "age")
	if err != nil {
		return nil, err
	}
	return &SetSeveranceAge{Age: age}, nil
}

func createAdjustReturnRate(params map[string]string) (ProfileTransform, error) {
	v, ok := params["rate"]
	if !ok {
		return nil, fmt.Errorf("missing required parameter: rate")
	}
	rate, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", v, err)
	}
	account, err := ParseAccount(params["account"])
	if err != nil {
		return nil, err
	}
	return &AdjustReturnRate{Account: account, Rate: rate}, nil
}

func createSetPensionExemption(params map[string]string) (ProfileTransform, error) {
	enabled := true
	if v, ok := params["enabled"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid enabled %q: %w", v, err)
		}
		enabled = b
	}
	return &SetPensionExemption{Enabled: enabled}, nil
}

func createContinueIDeCo(params map[string]string) (ProfileTransform, error) {
	until, err := intParam(params, "until")
	if err != nil {
		return nil, err
	}
	return &ContinueIDeCo{Until: until}, nil
}
