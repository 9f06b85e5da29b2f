// Package transform derives what-if profiles from a base profile.
package transform

import (
	"fmt"

	"github.com/rgehrsitz/payoutopt/internal/domain"
)

// ProfileTransform is a composable change to a profile. Apply never mutates
// its argument.
type ProfileTransform interface {
	// Apply returns a modified copy of base.
	Apply(base *domain.Profile) (*domain.Profile, error)

	// Name returns a short identifier (e.g. "postpone_retirement").
	Name() string

	// Description returns a human-readable summary of the change.
	Description() string

	// Validate checks the parameters against base without applying them.
	Validate(base *domain.Profile) error
}

// ApplyTransforms applies transforms in order, each receiving the output of
// the previous one. With no transforms a copy of base is returned.
func ApplyTransforms(base *domain.Profile, transforms []ProfileTransform) (*domain.Profile, error) {
	if base == nil {
		return nil, fmt.Errorf("base profile cannot be nil")
	}

	current := base.Clone()
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
