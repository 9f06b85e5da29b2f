package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/rgehrsitz/payoutopt/internal/strategy"
	"github.com/rgehrsitz/payoutopt/internal/tui/tuistyles"
)

func styled(t table.Model) table.Model {
	s := table.DefaultStyles()
	s.Header = tuistyles.TableHeaderStyle
	s.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(s)
	return t
}

// StrategyRows builds one row per family. The recommended family is marked
// with a star and infeasible families show the fallback text.
func StrategyRows(evals []domain.Evaluation, bestCode string) []table.Row {
	rows := make([]table.Row, 0, len(evals))
	for _, e := range evals {
		s := e.Strategy
		code := s.Code
		if code == bestCode {
			code = "*" + code
		}
		if !e.Feasible() {
			rows = append(rows, table.Row{code, s.Name, strategy.FallbackDescription, "", "", "", ""})
			continue
		}
		rows = append(rows, table.Row{
			code, s.Name,
			output.FormatMan(s.TotalNet),
			output.FormatMan(s.TotalTax),
			output.FormatPercentage(s.Efficiency()),
			output.FormatMan(s.Monthly60to65Net),
			output.FormatMan(s.Monthly65PlusNet),
		})
	}
	return rows
}

// NewStrategyTable lists the strategy families of a result.
func NewStrategyTable(evals []domain.Evaluation, bestCode string, height int) table.Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Strategy", Width: 34},
		{Title: "Net", Width: 14},
		{Title: "Tax", Width: 12},
		{Title: "Rate", Width: 7},
		{Title: "60-65/mo", Width: 10},
		{Title: "65+/mo", Width: 10},
	}
	return styled(table.New(
		table.WithColumns(columns),
		table.WithRows(StrategyRows(evals, bestCode)),
		table.WithFocused(true),
		table.WithHeight(height),
	))
}

// CashflowRows builds one row per cashflow age.
func CashflowRows(rows []domain.CashflowYear) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			strconv.Itoa(r.Age),
			output.FormatMan(r.LumpSumGross),
			output.FormatMan(r.Public),
			output.FormatMan(r.DC),
			output.FormatMan(r.IDeCo),
			output.FormatMan(r.LumpSumTax.Add(r.PensionTax)),
			output.FormatMan(r.Net),
		})
	}
	return out
}

// NewCashflowTable lists the yearly cashflow of a candidate.
func NewCashflowTable(rows []domain.CashflowYear, height int) table.Model {
	columns := []table.Column{
		{Title: "Age", Width: 4},
		{Title: "Lump sum", Width: 12},
		{Title: "Public", Width: 10},
		{Title: "DC", Width: 10},
		{Title: "iDeCo", Width: 10},
		{Title: "Tax", Width: 10},
		{Title: "Net", Width: 12},
	}
	return styled(table.New(
		table.WithColumns(columns),
		table.WithRows(CashflowRows(rows)),
		table.WithFocused(true),
		table.WithHeight(height),
	))
}
