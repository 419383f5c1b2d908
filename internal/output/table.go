package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/containerd/console"

	"alcocalc/internal/domain"
)

const (
	defaultWidth = 48
	maxWidth     = 72
)

// TableFormatter formats results as aligned label/value rows.
type TableFormatter struct {
	writer io.Writer
	width  int
}

// NewTableFormatter creates a table formatter. Rules span the terminal
// width when w is a console, up to 72 columns.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w, width: termWidth(w)}
}

type row struct{ label, value string }

// Format writes v as a table. Unknown types fall back to %+v.
func (f *TableFormatter) Format(v any) error {
	title, rows := tabulate(v)
	if rows == nil {
		_, err := fmt.Fprintf(f.writer, "%+v\n", v)
		return err
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, len(r.label))
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", f.width))
	b.WriteByte('\n')
	for _, r := range rows {
		fmt.Fprintf(&b, "%-*s  %s\n", labelWidth, r.label, r.value)
	}
	b.WriteString(strings.Repeat("─", f.width))
	b.WriteByte('\n')

	_, err := io.WriteString(f.writer, b.String())
	return err
}

func tabulate(v any) (string, []row) {
	switch r := v.(type) {
	case domain.DensityResult:
		return "Density", []row{
			{"ABV", pct(r.ABV)},
			{"Temperature", celsius(r.Temperature)},
			{"Mass fraction", num(float64(r.MassFraction))},
			{"Density", num(r.Density) + " g/mL"},
			{"Contraction factor", num(r.ContractionFactor)},
		}
	case domain.FractionConversion:
		return "Strength", []row{
			{"ABV", pct(r.ABV)},
			{"Mass fraction", num(float64(r.MassFraction))},
		}
	case domain.VolumeResult:
		return "Mass and volume", []row{
			{"Mass", num(r.MassG) + " g"},
			{"Volume", num(r.VolumeML) + " mL"},
			{"ABV", pct(r.ABV)},
			{"Temperature", celsius(r.Temperature)},
			{"Density", num(r.Density) + " g/mL"},
		}
	case domain.EthanolMassResult:
		return "Ethanol content", []row{
			{"Volume", num(r.VolumeML) + " mL"},
			{"ABV", pct(r.ABV)},
			{"Temperature", celsius(r.Temperature)},
			{"Spirit mass", num(r.MassG) + " g"},
			{"Ethanol mass", num(r.EthanolMassG) + " g"},
		}
	case domain.DilutionResult:
		return "Dilution by weight", []row{
			{"Water to add", num(r.WaterToAddG) + " g"},
			{"Final mass", num(r.FinalMassG) + " g"},
			{"Ethanol mass", num(r.EthanolMassG) + " g"},
			{"Source mass fraction", num(float64(r.SourceMassFraction))},
			{"Target mass fraction", num(float64(r.TargetMassFraction))},
		}
	case domain.HydrometerCorrection:
		rows := []row{
			{"Reading", pct(r.ReadingABV)},
			{"Temperature", celsius(r.Temperature)},
			{"True ABV", pct(r.TrueABV)},
			{"Correction", signed(r.Correction) + " %"},
		}
		if r.OutsideTableRange {
			rows = append(rows, row{"Warning", "outside the 10-30 °C correction table range"})
		}
		return "Hydrometer correction", rows
	case domain.TemperatureCheck:
		rows := []row{
			{"Temperature", celsius(r.Temperature)},
			{"Valid", strconv.FormatBool(r.Valid)},
			{"Warning", r.Level.String()},
		}
		if r.Message != "" {
			rows = append(rows, row{"Message", r.Message})
		}
		return "Temperature check", rows
	case domain.CoefficientTables:
		rows := []row{
			{"Name", r.Name},
			{"Fingerprint", r.Fingerprint},
		}
		for i, a := range r.A {
			rows = append(rows, row{fmt.Sprintf("A%d", i+1), sci(a)})
		}
		for i, b := range r.B {
			rows = append(rows, row{fmt.Sprintf("B%d", i+1), sci(b)})
		}
		for i, cs := range r.C {
			for k, c := range cs {
				rows = append(rows, row{fmt.Sprintf("C%d,%d", i+1, k+1), sci(c)})
			}
		}
		return "Coefficient tables", rows
	default:
		return "", nil
	}
}

func num(v float64) string     { return strconv.FormatFloat(v, 'f', -1, 64) }
func sci(v float64) string     { return strconv.FormatFloat(v, 'e', -1, 64) }
func pct(v float64) string     { return num(v) + " %vol" }
func celsius(v float64) string { return num(v) + " °C" }

func signed(v float64) string {
	if v > 0 {
		return "+" + num(v)
	}
	return num(v)
}

func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	c, err := console.ConsoleFromFile(f)
	if err != nil {
		return defaultWidth
	}
	size, err := c.Size()
	if err != nil || size.Width == 0 {
		return defaultWidth
	}
	return min(int(size.Width), maxWidth)
}
