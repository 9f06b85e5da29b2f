package config

import (
	"testing"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	p := &domain.Profile{RetirementAge: 60, SeveranceReceiveAge: 60, SeverancePay: decimal.NewFromInt(2000), EndAge: 90}

	data, err := Export(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app_version": "payoutopt/1.0"`)
	assert.Contains(t, string(data), `"retirementAge": 60`)

	back, err := Import(data)
	require.NoError(t, err)
	assertSameProfile(t, p, back)

	_, err = Export(nil)
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, p *domain.Profile)
	}{
		{
			name:  "bare object",
			input: `{"retirementAge": 62, "severancePay": 1500.5}`,
			check: func(t *testing.T, p *domain.Profile) {
				assert.Equal(t, 62, p.RetirementAge)
				assert.True(t, p.SeverancePay.Equal(decimal.RequireFromString("1500.5")))
			},
		},
		{
			name:  "missing receipt age defaults to retirement age",
			input: `{"input": {"retirementAge": 63}}`,
			check: func(t *testing.T, p *domain.Profile) {
				assert.Equal(t, 63, p.SeveranceReceiveAge)
			},
		},
		{
			name:  "explicit receipt age kept",
			input: `{"input": {"retirementAge": 60, "severanceReceiveAge": 58}}`,
			check: func(t *testing.T, p *domain.Profile) {
				assert.Equal(t, 58, p.SeveranceReceiveAge)
			},
		},
		{
			name:  "missing flags default to false",
			input: `{"input": {}}`,
			check: func(t *testing.T, p *domain.Profile) {
				assert.False(t, p.PensionExemption)
				assert.False(t, p.IDeCoContinueContribution)
				assert.True(t, p.AvgSalary.IsZero())
			},
		},
		{
			name:  "numeric noise is coerced",
			input: `{"currentAge": "45.9", "dcReturnRate": "abc", "endAge": 85.2, "pensionExemption": "true", "idecoContinueContribution": 0}`,
			check: func(t *testing.T, p *domain.Profile) {
				assert.Equal(t, 45, p.CurrentAge)
				assert.True(t, p.DCReturnRate.IsZero())
				assert.Equal(t, 85, p.EndAge)
				assert.True(t, p.PensionExemption)
				assert.False(t, p.IDeCoContinueContribution)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Import([]byte(tt.input))
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestImport_Errors(t *testing.T) {
	_, err := Import([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = Import([]byte(`{"input": 5}`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = Import([]byte(`{not json`))
	assert.Error(t, err)
}
