package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/strategy"
)

// ConsoleFormatter renders the full plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	res := report.Result
	p := res.Input

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "RETIREMENT PAYOUT OPTIMIZATION")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROFILE:")
	fmt.Fprintf(&buf, "  Age %d, retiring at %d after %d years of service\n", p.CurrentAge, p.RetirementAge, p.YearsOfService())
	fmt.Fprintf(&buf, "  Severance:            %s at %d\n", FormatMan(p.SeverancePay), p.SeveranceAge())
	fmt.Fprintf(&buf, "  Corporate DC:         %s now, %s/month, %s return (%d-%d)\n",
		FormatMan(p.DCCurrentBalance), FormatMan(p.DCMonthlyContribution), FormatPercentage(p.DCReturnRate), p.DCStartAge, p.DCEndAge)
	fmt.Fprintf(&buf, "  iDeCo:                %s now, %s/month, %s return (%d-%d)\n",
		FormatMan(p.IDeCoCurrentBalance), FormatMan(p.IDeCoMonthlyContribution), FormatPercentage(p.IDeCoReturnRate), p.IDeCoStartAge, p.IDeCoEndAge)
	fmt.Fprintf(&buf, "  Public pension:       %s/year from 65\n", FormatMan(res.PublicPensionAnnual))
	fmt.Fprintf(&buf, "  Projection ends at:   %d\n", p.EndAge)
	fmt.Fprintln(&buf)

	best := report.Recommended()
	fmt.Fprintf(&buf, "RECOMMENDED: %s\n", best.Name)
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	fmt.Fprintf(&buf, "  %s\n", best.Description)
	if res.Best.Feasible() {
		fmt.Fprintf(&buf, "  Total gross:  %s\n", FormatMan(best.TotalGross))
		fmt.Fprintf(&buf, "  Total tax:    %s (%s)\n", FormatMan(best.TotalTax), FormatPercentage(best.Efficiency()))
		fmt.Fprintf(&buf, "  Total net:    %s\n", FormatMan(best.TotalNet))
		fmt.Fprintln(&buf)
		writeLumpSums(&buf, best.Lumpsum)
		writeBands(&buf, report.Bands)
	}
	fmt.Fprintln(&buf)

	writeStrategyTable(&buf, res.Strategies, best.Code)

	if len(report.Cashflow) > 0 {
		writeCashflow(&buf, report.Cashflow)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range report.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeLumpSums(buf *bytes.Buffer, items []domain.LumpSumBreakdown) {
	fmt.Fprintln(buf, "  LUMP SUMS:")
	fmt.Fprintf(buf, "    %-24s %4s %14s %14s %14s\n", "Item", "Age", "Amount", "Tax", "Net")
	for _, it := range items {
		fmt.Fprintf(buf, "    %-24s %4d %14s %14s %14s\n", it.Item, it.Age, FormatMan(it.Amount), FormatMan(it.Tax), FormatMan(it.Net))
	}
	fmt.Fprintln(buf)
}

func writeBands(buf *bytes.Buffer, bands []Band) {
	fmt.Fprintln(buf, "  MONTHLY PENSION INCOME:")
	for _, b := range bands {
		c := b.Components
		fmt.Fprintf(buf, "    %-6s gross %s, net %s (public %s, DC %s, iDeCo %s)\n",
			b.Label, FormatMan(b.GrossMonthly), FormatMan(b.NetMonthly),
			FormatMan(c.PublicMonthly), FormatMan(c.DCMonthly), FormatMan(c.IDeCoMonthly))
	}
}

func writeStrategyTable(buf *bytes.Buffer, evals []domain.Evaluation, bestCode string) {
	fmt.Fprintln(buf, "STRATEGY COMPARISON:")
	fmt.Fprintf(buf, "  %-4s %-36s %14s %14s %8s\n", "", "Strategy", "Net", "Tax", "Rate")
	for _, e := range evals {
		s := e.Strategy
		mark := " "
		if s.Code == bestCode {
			mark = "*"
		}
		if !e.Feasible() {
			fmt.Fprintf(buf, "  %-4s %-36s %s\n", mark+s.Code, s.Name, strategy.FallbackDescription)
			continue
		}
		fmt.Fprintf(buf, "  %-4s %-36s %14s %14s %8s\n", mark+s.Code, s.Name, FormatMan(s.TotalNet), FormatMan(s.TotalTax), FormatPercentage(s.Efficiency()))
	}
	fmt.Fprintln(buf)
}

func writeCashflow(buf *bytes.Buffer, rows []domain.CashflowYear) {
	fmt.Fprintln(buf, "CASHFLOW (recommended strategy):")
	fmt.Fprintf(buf, "  %4s %14s %12s %12s %12s %12s %14s\n", "Age", "Lump sum", "Public", "DC", "iDeCo", "Tax", "Net")
	for _, r := range rows {
		fmt.Fprintf(buf, "  %4d %14s %12s %12s %12s %12s %14s\n", r.Age,
			FormatMan(r.LumpSumGross), FormatMan(r.Public), FormatMan(r.DC), FormatMan(r.IDeCo),
			FormatMan(r.LumpSumTax.Add(r.PensionTax)), FormatMan(r.Net))
	}
	fmt.Fprintln(buf)
}
