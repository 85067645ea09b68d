package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/scrub/internal/config"
	"github.com/dshills/scrub/internal/deid"
	"github.com/dshills/scrub/internal/table"
	"github.com/dshills/scrub/internal/terms"
)

// Terminal status strings reported to the caller.
const (
	StatusNoInput      = "no input file"
	StatusFileNotFound = "file not found"
	StatusNoOutputName = "no output name given"
)

// Session carries the state of one de-identification workflow: the term set
// and the currently loaded table. Not safe for concurrent use; run one
// session per caller.
type Session struct {
	cfg   config.Config
	terms *terms.Set
	tbl   *table.Table
	path  string
}

// New creates an idle session with terms taken from the configuration.
func New(cfg config.Config) *Session {
	return &Session{
		cfg:   cfg,
		terms: terms.New(cfg.Terms...),
	}
}

// LoadResult reports the outcome of loading a table.
type LoadResult struct {
	Status     string       `json:"status"`
	Err        error        `json:"-"`
	Headers    []string     `json:"headers,omitempty"`
	Candidates []string     `json:"candidates,omitempty"`
	Preview    *table.Table `json:"preview,omitempty"`
	OutputName string       `json:"outputName,omitempty"`
}

// TermsResult reports the term set and refreshed first-pass candidates
// after a registry mutation.
type TermsResult struct {
	Terms      []string `json:"terms"`
	Candidates []string `json:"candidates,omitempty"`
}

// ExportResult reports the outcome of an export.
type ExportResult struct {
	Status  string   `json:"status"`
	Err     error    `json:"-"`
	Output  string   `json:"output,omitempty"`
	Dropped []string `json:"dropped,omitempty"`
	Kept    []string `json:"kept,omitempty"`
}

// Load parses a tabular file and runs the first pass over its headers.
// The result carries a preview and a collision-free default output name.
func (s *Session) Load(path string) LoadResult {
	if path == "" {
		return LoadResult{Status: StatusNoInput}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return LoadResult{Status: StatusFileNotFound, Err: err}
	}
	tbl, err := table.Read(path)
	if err != nil {
		return LoadResult{Status: fmt.Sprintf("read error: %v", err), Err: err}
	}
	s.tbl = tbl
	s.path = path
	return LoadResult{
		Status:     "success",
		Headers:    tbl.Headers,
		Candidates: s.FirstPass(),
		Preview:    tbl.Head(s.cfg.PreviewRows),
		OutputName: DefaultOutputName(path),
	}
}

// Loaded reports whether a table is loaded.
func (s *Session) Loaded() bool {
	return s.tbl != nil
}

// Table returns the loaded table, or nil when idle.
func (s *Session) Table() *table.Table {
	return s.tbl
}

// Terms returns the current term list.
func (s *Session) Terms() []string {
	return s.terms.List()
}

// AddTerm registers a term and refreshes the first-pass candidates.
func (s *Session) AddTerm(term string) TermsResult {
	s.terms.Add(term)
	return TermsResult{Terms: s.terms.List(), Candidates: s.FirstPass()}
}

// RemoveTerm unregisters a term and refreshes the first-pass candidates.
func (s *Session) RemoveTerm(term string) TermsResult {
	s.terms.Remove(term)
	return TermsResult{Terms: s.terms.List(), Candidates: s.FirstPass()}
}

// ResetTerms restores the built-in default terms.
func (s *Session) ResetTerms() TermsResult {
	s.terms.Reset()
	return TermsResult{Terms: s.terms.List(), Candidates: s.FirstPass()}
}

// FirstPass returns the name-matched columns, or nothing before Load.
func (s *Session) FirstPass() []string {
	return deid.MatchNames(s.tbl, s.terms)
}

// SecondPass returns the value-matched columns outside the given selection,
// or nothing before Load.
func (s *Session) SecondPass(selected []string) []string {
	return deid.MatchValues(s.tbl, selected)
}

// Preview returns the first n rows of the loaded table restricted to the
// given columns; all columns when cols is empty. Nil before Load.
func (s *Session) Preview(cols []string, n int) *table.Table {
	if s.tbl == nil {
		return nil
	}
	if n <= 0 {
		n = s.cfg.PreviewRows
	}
	if len(cols) == 0 {
		return s.tbl.Head(n)
	}
	return s.tbl.Select(cols).Head(n)
}

// Export drops the given columns and writes the remainder to out, in the
// input's format family. An output name colliding with the input's base
// name is prefixed to avoid overwriting the source.
func (s *Session) Export(out string, drop []string) ExportResult {
	if s.tbl == nil {
		return ExportResult{Status: StatusNoInput}
	}
	if out == "" {
		return ExportResult{Status: StatusNoOutputName}
	}

	inFormat, err := table.DetectFormat(s.path)
	if err != nil {
		return ExportResult{Status: fmt.Sprintf("read error: %v", err), Err: err}
	}
	outFormat, err := table.DetectFormat(out)
	if err != nil || outFormat != inFormat {
		err = fmt.Errorf("output must stay in the input's format family (%s)", inFormat)
		return ExportResult{Status: fmt.Sprintf("write error: %v", err), Err: err}
	}

	if filepath.Base(out) == filepath.Base(s.path) {
		out = filepath.Join(filepath.Dir(out), s.cfg.OverwritePrefix+filepath.Base(out))
	}

	result := s.tbl.DropColumns(drop)
	if err := table.Write(result, out); err != nil {
		return ExportResult{Status: fmt.Sprintf("write error: %v", err), Err: err}
	}

	dropped := make([]string, 0, len(drop))
	for _, name := range drop {
		if s.tbl.ColumnIndex(name) >= 0 {
			dropped = append(dropped, name)
		}
	}
	return ExportResult{
		Status:  fmt.Sprintf("success: de-identified file saved as %s", out),
		Output:  out,
		Dropped: dropped,
		Kept:    result.Headers,
	}
}

// Reset unloads the table and restores the default term set.
func (s *Session) Reset() {
	s.tbl = nil
	s.path = ""
	s.terms.Reset()
}

// DefaultOutputName derives "<base>_deidentified<ext>" from the input name.
func DefaultOutputName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_deidentified" + ext
}
