package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/violationbit/internal/encoding"
	"github.com/san-kum/violationbit/internal/metrics"
	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

type ExportData struct {
	Title      string             `json:"title"`
	Data       string             `json:"data"`
	MinVoltage float64            `json:"min_voltage"`
	MaxVoltage float64            `json:"max_voltage"`
	Frames     int                `json:"frames"`
	Symbols    []encoding.Symbol  `json:"codes"`
	Times      []float64          `json:"times"`
	Volts      []float64          `json:"volts"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewExportData(fig visualizer.Figure, tr *waveform.Trace) ExportData {
	return ExportData{
		Title:      fig.Title,
		Data:       fig.Data,
		MinVoltage: fig.Levels.Min,
		MaxVoltage: fig.Levels.Max,
		Frames:     fig.Frames(),
		Symbols:    fig.Symbols,
		Times:      tr.Times(),
		Volts:      tr.Volts(),
		Metrics:    metrics.Collect(fig.Generator().All(), metrics.Default()...),
	}
}

func WriteJSON(w io.Writer, fig visualizer.Figure, tr *waveform.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(fig, tr))
}

// WriteCSV writes one time,voltage row per trace sample.
func WriteCSV(w io.Writer, tr *waveform.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "voltage"}); err != nil {
		return err
	}
	for _, p := range tr.Points() {
		row := []string{
			strconv.FormatFloat(p.T, 'f', -1, 64),
			strconv.FormatFloat(p.V, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
