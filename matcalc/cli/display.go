package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/evaluator"
	"github.com/npillmayer/matcalc/matcalc/ui/termui"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/shopspring/decimal"
)

// Formatter displays values and command results of matcalc.
// Numbers with a fractional part are rounded to Precision decimals,
// integral numbers are shown exactly.
type Formatter struct {
	termui.DefaultFormatter
	Precision int32
}

// NewFormatter creates a formatter with the configured display precision.
func NewFormatter() Formatter {
	return Formatter{Precision: int32(matcalc.Precision())}
}

// Format writes item to w.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("Format called for item %T", item)
	switch t := item.(type) {
	case evaluator.Result:
		return f.formatResult(t, w)
	case matcalc.Value:
		return f.formatValue(t, w)
	case *matrix.Matrix:
		return f.formatValue(matcalc.FromMatrix(t), w)
	}
	return f.DefaultFormatter.Format(item, w)
}

func (f Formatter) formatResult(r evaluator.Result, w io.Writer) (bool, error) {
	switch r.Command {
	case evaluator.CmdList:
		if len(r.Names) == 0 {
			return f.DefaultFormatter.Format("no stored matrices", w)
		}
		return f.DefaultFormatter.Format(namesAsTable(r.Names), w)
	case evaluator.CmdDelete:
		return f.DefaultFormatter.Format(fmt.Sprintf("deleted %s", r.Name), w)
	case evaluator.CmdStore:
		return f.DefaultFormatter.Format(fmt.Sprintf("stored result as %s", r.Name), w)
	}
	if r.Value == nil {
		return false, nil
	}
	return f.formatValue(r.Value, w)
}

func (f Formatter) formatValue(v matcalc.Value, w io.Writer) (bool, error) {
	if v.Self().IsScalar() {
		x, _ := v.Self().AsScalar()
		return f.DefaultFormatter.Format(f.Number(x), w)
	}
	return f.DefaultFormatter.Format(f.matrixAsTable(v.Self().AsMatrix()), w)
}

// Number formats a single number for display.
func (f Formatter) Number(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	case x == math.Trunc(x) && math.Abs(x) < 1e15:
		return decimal.NewFromFloat(x).String()
	}
	return decimal.NewFromFloat(x).Round(f.Precision).String()
}

// --- Tables ----------------------------------------------------------------

func (f Formatter) matrixAsTable(m *matrix.Matrix) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("%d×%d", m.Rows(), m.Cols())
	colcfg := make([]table.ColumnConfig, m.Cols())
	for j := range colcfg {
		colcfg[j] = table.ColumnConfig{Number: j + 1, Align: prtxt.AlignRight}
	}
	tw.SetColumnConfigs(colcfg)
	for i := 0; i < m.Rows(); i++ {
		row := make(table.Row, m.Cols())
		for j, x := range m.Row(i) {
			row[j] = f.Number(x)
		}
		tw.AppendRow(row)
	}
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = true
	tw.Style().Options.SeparateRows = false
	return tw
}

func namesAsTable(names []string) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "stored matrices"})
	for i, name := range names {
		tw.AppendRow(table.Row{i + 1, name})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}
