package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/scrub/internal/session"
	"github.com/dshills/scrub/internal/table"
)

// TextWriter outputs a human-readable scan report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *session.Report) error {
	ew := &errWriter{w: w}

	ew.printf("Scrub Scan — %s (%s)\n", report.File, report.Format)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Columns: %d\n", len(report.Headers))
	ew.printf("Identifying terms: %s\n", strings.Join(report.Terms, ", "))

	if len(report.FirstPass) == 0 {
		ew.println("\nFirst pass: no columns matched")
	} else {
		ew.printf("\nFirst pass (%d): %s\n", len(report.FirstPass), strings.Join(report.FirstPass, ", "))
	}

	if report.SecondPass != nil {
		if len(report.SecondPass) == 0 {
			ew.println("Second pass: no additional columns share flagged values")
		} else {
			ew.printf("Second pass (%d): %s\n", len(report.SecondPass), strings.Join(report.SecondPass, ", "))
		}
	}

	if report.Preview != nil && report.Preview.NumRows() > 0 {
		ew.printf("\nPreview (first %d rows):\n", report.Preview.NumRows())
		writeGrid(ew, report.Preview)
	}

	return ew.err
}

// writeGrid renders a column-aligned view of a small table.
func writeGrid(ew *errWriter, t *table.Table) {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(t.Headers))
		for i := range t.Headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		ew.printf("  %s\n", strings.Join(parts, "  "))
	}

	writeRow(t.Headers)
	for _, row := range t.Rows {
		writeRow(row)
	}
}

// errWriter accumulates the first write error so callers can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
