package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for profile files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported profile format")

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML file or a JSON envelope and
// validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile *domain.Profile
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		profile, err = ip.ParseYAML(data)
	case ".json":
		profile, err = Import(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, nil
}

// ParseYAML decodes a YAML profile. A missing severance receipt age defaults
// to the retirement age.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Profile, error) {
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if profile.SeveranceReceiveAge == 0 {
		profile.SeveranceReceiveAge = profile.RetirementAge
	}
	return &profile, nil
}

// SaveToFile writes the profile as YAML, or as a JSON envelope when the file
// name ends in .json.
func (ip *InputParser) SaveToFile(profile *domain.Profile, filename string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(profile)
	case ".json":
		data, err = Export(profile)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
