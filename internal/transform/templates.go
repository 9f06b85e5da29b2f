package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages named what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ProfileTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a registry of common what-if variations.
// Templates that depend on the profile (severance five years after
// retirement) are resolved against p.
func CreateBuiltInTemplates(p *domain.Profile) *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "postpone_1yr",
		Description: "Work one more year",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: 1}},
	})
	registry.Register(Template{
		Name:        "postpone_3yr",
		Description: "Work three more years",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: 3}},
	})
	registry.Register(Template{
		Name:        "severance_plus5",
		Description: "Receive severance five years after retirement",
		Transforms:  []ProfileTransform{&SetSeveranceAge{Age: p.RetirementAge + 5}},
	})
	registry.Register(Template{
		Name:        "conservative",
		Description: "1% annual return on both accounts",
		Transforms:  []ProfileTransform{&AdjustReturnRate{Account: AccountBoth, Rate: decimal.RequireFromString("0.01")}},
	})
	registry.Register(Template{
		Name:        "aggressive",
		Description: "5% annual return on both accounts",
		Transforms:  []ProfileTransform{&AdjustReturnRate{Account: AccountBoth, Rate: decimal.RequireFromString("0.05")}},
	})
	registry.Register(Template{
		Name:        "pension_exemption",
		Description: "Take the national pension premium exemption",
		Transforms:  []ProfileTransform{&SetPensionExemption{Enabled: true}},
	})
	registry.Register(Template{
		Name:        "ideco_to_65",
		Description: "Keep contributing to iDeCo until 65",
		Transforms:  []ProfileTransform{&ContinueIDeCo{Until: 65}},
	})

	return registry
}

// ApplyTemplate applies all transforms of a template to a profile
func ApplyTemplate(base *domain.Profile, template Template) (*domain.Profile, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList splits a comma-separated template list, dropping blanks.
func ParseTemplateList(templateList string) []string {
	var names []string
	for _, n := range strings.Split(templateList, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// GetTemplateHelp lists the templates with their descriptions.
func GetTemplateHelp(registry *TemplateRegistry) string {
	var sb strings.Builder
	sb.WriteString("Available what-if templates:\n\n")
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		fmt.Fprintf(&sb, "  %-20s %s\n", t.Name, t.Description)
	}
	return sb.String()
}
