package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing strategies
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("PAYOUT STRATEGY COMPARISON (万円)\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Strategy: %s\n", compSet.BaseCode))
	if compSet.ProfilePath != "" {
		sb.WriteString(fmt.Sprintf("Profile: %s\n", compSet.ProfilePath))
	}
	sb.WriteString("\n")

	nameWidth := 36
	numWidth := 10

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Gross",
		numWidth, "Tax",
		numWidth, "Net",
		numWidth, "Tax Rate"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Name))
			if !alt.Feasible {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
				continue
			}

			sb.WriteString(fmt.Sprintf("  Net Income:       %s%s (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				tf.formatDecimal(alt.NetDiffFromBase),
				alt.NetPctFromBase.StringFixed(2)))

			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax Impact:       %s%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					tf.formatDecimal(alt.TaxDiffFromBase)))
			}
			sb.WriteString(fmt.Sprintf("  Tax Rate:         %s%s pt\n",
				tf.deltaSymbol(alt.EfficiencyDiffFromBase),
				alt.EfficiencyDiffFromBase.Mul(decimal.NewFromInt(100)).StringFixed(2)))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single strategy row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Name
	if isBase {
		name += " (base)"
	}
	if !result.Feasible {
		return fmt.Sprintf("%-*s %s\n", nameWidth, tf.truncate(name, nameWidth), result.Description)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.TotalGross),
		numWidth, tf.formatDecimal(result.TotalTax),
		numWidth, tf.formatDecimal(result.TotalNet),
		numWidth, result.Efficiency.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%")
}

// formatDecimal formats an amount in 万円, switching to 億円 above 10,000
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		return d.Div(decimal.NewFromInt(10000)).StringFixed(2) + "億"
	}
	return d.StringFixed(1)
}

// deltaSymbol returns "+" for positive deltas; negative values carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate shortens s to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line summary of the net deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseCode))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		switch {
		case !alt.Feasible:
			change = "n/a"
		case alt.NetDiffFromBase.IsPositive():
			change = "+" + tf.formatDecimal(alt.NetDiffFromBase)
		case alt.NetDiffFromBase.IsNegative():
			change = tf.formatDecimal(alt.NetDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.Code, change))
	}

	return sb.String()
}
