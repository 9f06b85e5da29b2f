package breakeven

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(&sb, "Optimization Target: %s\n", result.Target)
	fmt.Fprintf(&sb, "Optimization Goal:   %s\n", result.Goal)
	fmt.Fprintf(&sb, "Status:              %s\n", formatStatus(result.Success))
	fmt.Fprintf(&sb, "Iterations:          %d\n", result.Iterations)
	if result.ConvergenceInfo != "" {
		fmt.Fprintf(&sb, "Convergence:         %s\n", result.ConvergenceInfo)
	}
	sb.WriteString("\n")

	sb.WriteString("OPTIMAL PARAMETERS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if result.OptimalAge != nil {
		label := "Retirement Age:"
		if result.Target == OptimizeSeveranceAge {
			label = "Severance Age:"
		}
		fmt.Fprintf(&sb, "%-21s%d\n", label, *result.OptimalAge)
	}
	if result.OptimalRate != nil {
		fmt.Fprintf(&sb, "%-21s%s\n", "Return Rate:", output.FormatPercentage(*result.OptimalRate))
	}
	sb.WriteString("\n")

	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	fmt.Fprintf(&sb, "Recommended Strategy: %s %s\n", result.BestCode, result.BestName)
	fmt.Fprintf(&sb, "Lifetime Net:         %s\n", output.FormatMan(result.TotalNet))
	fmt.Fprintf(&sb, "Lifetime Tax:         %s\n", output.FormatMan(result.TotalTax))
	sb.WriteString("\n")

	sb.WriteString("COMPARISON TO BASE PROFILE\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	fmt.Fprintf(&sb, "Net Change:           %s\n", signedMan(result.NetDiffFromBase))
	fmt.Fprintf(&sb, "Tax Change:           %s\n", signedMan(result.TaxDiffFromBase))
	sb.WriteString("\n")

	if result.Goal == GoalMatchNet && result.Request.Constraints.TargetNet != nil {
		target := *result.Request.Constraints.TargetNet
		sb.WriteString("TARGET NET MATCH\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		fmt.Fprintf(&sb, "Target Net:   %s\n", output.FormatMan(target))
		fmt.Fprintf(&sb, "Achieved Net: %s\n", output.FormatMan(result.TotalNet))
		fmt.Fprintf(&sb, "Difference:   %s\n", signedMan(result.TotalNet.Sub(target)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMultiDimensional formats results from multiple optimizations
func (tf *TableFormatter) FormatMultiDimensional(result *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("MULTI-DIMENSIONAL OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	fmt.Fprintf(&sb, "%-16s %-14s %-10s %5s %16s %16s\n", "Target", "Goal", "Value", "Code", "Lifetime Net", "Lifetime Tax")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, res := range result.Results {
		fmt.Fprintf(&sb, "%-16s %-14s %-10s %5s %16s %16s\n",
			res.Target, res.Goal, parameterValue(&res), res.BestCode,
			output.FormatMan(res.TotalNet), output.FormatMan(res.TotalTax))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&sb, "• %s\n", rec)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiDimensional formats multi-dimensional results as JSON
func (jf *JSONFormatter) FormatMultiDimensional(result *MultiDimensionalResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func parameterValue(r *OptimizationResult) string {
	switch {
	case r.OptimalAge != nil:
		return fmt.Sprintf("%d", *r.OptimalAge)
	case r.OptimalRate != nil:
		return output.FormatPercentage(*r.OptimalRate)
	default:
		return "-"
	}
}

// signedMan formats a delta in 万円 with an explicit sign.
func signedMan(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return output.FormatMan(delta)
	}
	return "+" + output.FormatMan(delta)
}
