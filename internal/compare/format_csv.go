package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Code",
		"Strategy",
		"Type",
		"Feasible",
		"Total Gross",
		"Total Tax",
		"Total Net",
		"Tax Rate",
		"Monthly Net 60-65",
		"Monthly Net 65+",
		"Net Diff from Base",
		"Net % Change",
		"Tax Diff from Base",
		"Tax Rate Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	return []string{
		result.Code,
		result.Name,
		rowType,
		strconv.FormatBool(result.Feasible),
		result.TotalGross.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.TotalNet.StringFixed(2),
		result.Efficiency.StringFixed(6),
		result.Monthly60to65Net.StringFixed(2),
		result.Monthly65PlusNet.StringFixed(2),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.EfficiencyDiffFromBase.StringFixed(6),
	}
}
