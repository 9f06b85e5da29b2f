package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/strategy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport(t *testing.T) *Report {
	t.Helper()
	profile := &domain.Profile{
		CurrentAge:               50,
		RetirementAge:            60,
		JoinAge:                  22,
		ServiceYears:             38,
		SeverancePay:             decimal.NewFromInt(2000),
		DCStartAge:               30,
		DCEndAge:                 60,
		DCCurrentBalance:         decimal.NewFromInt(500),
		DCMonthlyContribution:    decimal.NewFromInt(2),
		DCReturnRate:             decimal.RequireFromString("0.02"),
		IDeCoStartAge:            40,
		IDeCoEndAge:              60,
		IDeCoCurrentBalance:      decimal.NewFromInt(200),
		IDeCoMonthlyContribution: decimal.RequireFromString("2.3"),
		IDeCoReturnRate:          decimal.RequireFromString("0.02"),
		AvgSalary:                decimal.NewFromInt(40),
		EndAge:                   90,
	}
	result, err := calculation.NewCalculationEngine().Calculate(context.Background(), profile)
	require.NoError(t, err)
	return BuildReport(result)
}

func fallbackReport() *Report {
	fb := strategy.Fallback(strategy.NewLumpSumFocus())
	return BuildReport(&domain.Result{
		Input:      domain.Profile{RetirementAge: 60, EndAge: 90},
		Strategies: []domain.Evaluation{fb},
		Best:       fb,
	})
}

func TestBuildReport(t *testing.T) {
	r := buildTestReport(t)

	require.Len(t, r.Bands, 2)
	assert.Equal(t, 60, r.Bands[0].StartAge)
	assert.Equal(t, 65, r.Bands[0].EndAge)
	assert.Equal(t, 90, r.Bands[1].EndAge)
	assert.Equal(t, 5, r.Bands[0].Components.Years)
	assert.Equal(t, 25, r.Bands[1].Components.Years)
	assert.True(t, r.Bands[1].Components.PublicMonthly.IsPositive())
	assert.True(t, r.Bands[1].GrossMonthly.Round(8).Equal(r.Bands[1].Components.TotalMonthly.Round(8)),
		"band gross %s vs components %s", r.Bands[1].GrossMonthly, r.Bands[1].Components.TotalMonthly)

	assert.NotEmpty(t, r.Cashflow)
	assert.Equal(t, DefaultAssumptions, r.Assumptions)
}

func TestBuildReport_Fallback(t *testing.T) {
	r := fallbackReport()
	assert.Empty(t, r.Cashflow)
	assert.True(t, r.Bands[0].Components.TotalMonthly.IsZero())
}

func TestFormatMan(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "0.0万円"},
		{"950.25", "950.3万円"},
		{"1234.5", "1,234.5万円"},
		{"1234567", "1,234,567.0万円"},
		{"-4638", "-4,638.0万円"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMan(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "1.18%", FormatPercentage(decimal.RequireFromString("0.01179")))
}

func TestFormatterFunc(t *testing.T) {
	called := false
	f := FormatterFunc{ID: "test-formatter", F: func(r *Report) ([]byte, error) {
		called = true
		return []byte("test output"), nil
	}}

	out, err := f.Format(&Report{})
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "test output", string(out))
	assert.Equal(t, "test-formatter", f.Name())
}

func TestWriteFormatted(t *testing.T) {
	t.Chdir(t.TempDir())

	f := FormatterFunc{ID: "test", F: func(*Report) ([]byte, error) { return []byte("content"), nil }}
	filename, err := WriteFormatted(f, &Report{}, "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "payout_report_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	failing := FormatterFunc{ID: "err", F: func(*Report) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}
	filename, err = WriteFormatted(failing, &Report{}, "txt")
	assert.ErrorContains(t, err, "formatter error")
	assert.Empty(t, filename)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"cashflow-csv", "console", "csv", "html", "json"}, AvailableFormatterNames())
	assert.Equal(t, []string{"table", "text", "verbose"}, AvailableFormatAliases())

	assert.Equal(t, "console", GetFormatterByName("verbose").Name())
	assert.Equal(t, "json", GetFormatterByName("json").Name())
	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestConsoleFormatter_Format(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	content := string(out)
	for _, want := range []string{
		"RETIREMENT PAYOUT OPTIMIZATION",
		"RECOMMENDED: Strategy",
		"LUMP SUMS:",
		"Severance lump sum",
		"MONTHLY PENSION INCOME:",
		"STRATEGY COMPARISON:",
		"CASHFLOW",
		"KEY ASSUMPTIONS:",
	} {
		assert.Contains(t, content, want)
	}
}

func TestConsoleFormatter_Format_Fallback(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(fallbackReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, strategy.FallbackDescription)
	assert.NotContains(t, content, "LUMP SUMS:")
}

func TestCSVFormatter_Format(t *testing.T) {
	r := buildTestReport(t)
	out, err := CSVFormatter{}.Format(r)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Code", records[0][0])

	recommended := 0
	for _, rec := range records[1:] {
		if rec[2] == "true" {
			recommended++
			assert.Equal(t, r.Recommended().Code, rec[0])
		}
	}
	assert.Equal(t, 1, recommended)
}

func TestCashflowCSVFormatter_Format(t *testing.T) {
	r := buildTestReport(t)
	out, err := CashflowCSVFormatter{}.Format(r)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(r.Cashflow)+1)
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := JSONFormatter{Indent: "  "}.Format(buildTestReport(t))
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Strategies []struct {
				Strategy struct {
					Code string `json:"code"`
				} `json:"strategy"`
			} `json:"strategies"`
			Best struct {
				Candidate *domain.Candidate `json:"candidate"`
			} `json:"best"`
		} `json:"result"`
		Bands []Band `json:"bands"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Result.Strategies, 4)
	assert.Equal(t, "A", decoded.Result.Strategies[0].Strategy.Code)
	assert.NotNil(t, decoded.Result.Best.Candidate)
	assert.Len(t, decoded.Bands, 2)
	assert.Contains(t, string(out), `"monthlyIncome65plusNet"`)
}

func TestHTMLFormatter_Format(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>Retirement Payout Plan</title>")
	assert.Contains(t, content, `class="best"`)
	assert.Contains(t, content, "Cashflow")

	out, err = HTMLFormatter{}.Format(fallbackReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), strategy.FallbackDescription)
}
