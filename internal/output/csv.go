package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per strategy family.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Code", "Strategy", "Recommended", "Description", "TotalGross", "TotalTax", "TotalNet", "TaxRate",
		"Monthly60to65Gross", "Monthly60to65Net", "Monthly65PlusGross", "Monthly65PlusNet"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	bestCode := report.Recommended().Code
	for _, e := range report.Result.Strategies {
		s := e.Strategy
		row := []string{
			s.Code,
			s.Name,
			strconv.FormatBool(s.Code == bestCode),
			s.Description,
			s.TotalGross.StringFixed(2),
			s.TotalTax.StringFixed(2),
			s.TotalNet.StringFixed(2),
			s.Efficiency().StringFixed(6),
			s.Monthly60to65Gross.StringFixed(2),
			s.Monthly60to65Net.StringFixed(2),
			s.Monthly65PlusGross.StringFixed(2),
			s.Monthly65PlusNet.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CashflowCSVFormatter writes the recommended strategy's cashflow by age.
type CashflowCSVFormatter struct{}

func (c CashflowCSVFormatter) Name() string { return "cashflow-csv" }

func (c CashflowCSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Age", "LumpSumGross", "LumpSumTax", "PublicPension", "DCPension", "IDeCoPension", "PensionTax", "Net"}); err != nil {
		return nil, err
	}
	for _, r := range report.Cashflow {
		row := []string{
			strconv.Itoa(r.Age),
			r.LumpSumGross.StringFixed(2),
			r.LumpSumTax.StringFixed(2),
			r.Public.StringFixed(2),
			r.DC.StringFixed(2),
			r.IDeCo.StringFixed(2),
			r.PensionTax.StringFixed(2),
			r.Net.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
