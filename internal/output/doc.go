// Package output formats scan reports for display or machine consumption.
//
// Two formats are supported:
//   - text — human-readable terminal output (default)
//   - json — full structured JSON report
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*session.Report]. [WriteReport]
// handles file-vs-stdout destination selection.
package output
