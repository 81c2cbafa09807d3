// Package export renders the task list in portable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"daylist/internal/engine"
)

// Formats lists the supported export formats.
var Formats = []string{"json", "csv", "yaml", "pdf"}

type row struct {
	ID            int64  `json:"id" yaml:"id"`
	Text          string `json:"text" yaml:"text"`
	Completed     bool   `json:"completed" yaml:"completed"`
	CreatedAt     string `json:"createdAt" yaml:"createdAt"`
	CreatedAtTime string `json:"createdAtTime" yaml:"createdAtTime"`
}

func rows(tasks []engine.Task) []row {
	out := make([]row, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, row(t))
	}
	return out
}

// Export renders tasks in format. title heads the pdf report.
func Export(tasks []engine.Task, format string, title string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return json.MarshalIndent(rows(tasks), "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(rows(tasks))
	case "csv":
		var b bytes.Buffer
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "text", "completed", "created_at", "created_at_time"})
		for _, t := range tasks {
			_ = w.Write([]string{strconv.FormatInt(t.ID, 10), t.Text, strconv.FormatBool(t.Completed), t.CreatedAt, t.CreatedAtTime})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		return b.Bytes(), nil
	case "pdf":
		return exportPDF(tasks, title)
	default:
		return nil, fmt.Errorf("unsupported export format %q (want %s)", format, strings.Join(Formats, "|"))
	}
}

func exportPDF(tasks []engine.Task, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(12)

	st := engine.ComputeStats(tasks)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 6, fmt.Sprintf("Total: %d  Completed: %d  Pending: %d", st.Total, st.Completed, st.Pending))
	pdf.Ln(10)

	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s  (%s %s)", mark, t.Text, t.CreatedAt, t.CreatedAtTime)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
