package session

import "github.com/dshills/scrub/internal/table"

// Report aggregates one scan of a loaded table for rendering.
type Report struct {
	File       string       `json:"file"`
	Format     string       `json:"format"`
	Headers    []string     `json:"headers"`
	Terms      []string     `json:"terms"`
	FirstPass  []string     `json:"firstPass"`
	SecondPass []string     `json:"secondPass,omitempty"`
	Preview    *table.Table `json:"preview,omitempty"`
}

// BuildReport assembles a scan report for the loaded table. When withSecond
// is set, the second pass runs over the first-pass candidates. Returns nil
// when no table is loaded.
func (s *Session) BuildReport(withSecond bool) *Report {
	if s.tbl == nil {
		return nil
	}
	format, _ := table.DetectFormat(s.path)
	first := s.FirstPass()
	r := &Report{
		File:      s.path,
		Format:    string(format),
		Headers:   s.tbl.Headers,
		Terms:     s.terms.List(),
		FirstPass: first,
		Preview:   s.tbl.Head(s.cfg.PreviewRows),
	}
	if withSecond {
		r.SecondPass = s.SecondPass(first)
	}
	return r
}
