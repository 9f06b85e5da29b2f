package breakeven

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints_Validate(t *testing.T) {
	tests := []struct {
		name        string
		constraints Constraints
		wantErr     string
	}{
		{"empty", Constraints{}, ""},
		{"valid ages", Constraints{MinAge: intPtr(60), MaxAge: intPtr(65)}, ""},
		{"inverted ages", Constraints{MinAge: intPtr(66), MaxAge: intPtr(65)}, "min_age cannot be greater than max_age"},
		{"negative rate", Constraints{MinRate: decPtr("-0.01")}, "min_rate cannot be negative"},
		{"inverted rates", Constraints{MinRate: decPtr("0.05"), MaxRate: decPtr("0.01")}, "min_rate cannot be greater than max_rate"},
		{"bad account", Constraints{Account: "bank"}, "invalid account"},
		{"negative target", Constraints{TargetNet: decPtr("-1")}, "target_net cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constraints.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTargetAndGoal(t *testing.T) {
	target, err := ParseTarget(" Severance_Age ")
	require.NoError(t, err)
	assert.Equal(t, OptimizeSeveranceAge, target)

	_, err = ParseTarget("ss_age")
	assert.Error(t, err)

	goal, err := ParseGoal("MATCH_NET")
	require.NoError(t, err)
	assert.Equal(t, GoalMatchNet, goal)

	_, err = ParseGoal("maximize_longevity")
	assert.Error(t, err)
}

func TestBreakEvenError(t *testing.T) {
	cause := errors.New("boom")
	err := &BreakEvenError{Operation: "optimize", Message: "failed", Cause: cause}
	assert.Equal(t, "optimize: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "optimize: failed", (&BreakEvenError{Operation: "optimize", Message: "failed"}).Error())
}
