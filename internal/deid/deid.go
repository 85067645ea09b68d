package deid

import (
	"strings"

	"github.com/dshills/scrub/internal/table"
	"github.com/dshills/scrub/internal/terms"
)

// MatchNames returns the columns whose lowercase-trimmed names contain any
// registered term, in original column order. A column matches on the first
// term found. Nil inputs yield no matches.
func MatchNames(t *table.Table, set *terms.Set) []string {
	if t == nil || set == nil {
		return nil
	}
	var matched []string
	for _, h := range t.Headers {
		if set.Match(h) {
			matched = append(matched, h)
		}
	}
	return matched
}

// MatchValues returns the columns outside the first-pass selection that share
// at least one non-empty cell value with it, in original column order. Values
// are compared as strings: a cell matches when it equals a flagged value or
// contains one as a substring, so a free-text cell like "seen Alice" is
// caught by a flagged "Alice". An empty selection, or a selection whose
// columns hold only empty cells, matches nothing.
func MatchValues(t *table.Table, firstPass []string) []string {
	if t == nil || len(firstPass) == 0 {
		return nil
	}

	selected := make(map[string]bool, len(firstPass))
	for _, name := range firstPass {
		selected[name] = true
	}

	values := make(map[string]bool)
	for _, name := range firstPass {
		for _, cell := range t.Column(name) {
			if cell != "" {
				values[cell] = true
			}
		}
	}
	if len(values) == 0 {
		return nil
	}

	var matched []string
	for _, h := range t.Headers {
		if selected[h] {
			continue
		}
		for _, cell := range t.Column(h) {
			if cellLeaks(cell, values) {
				matched = append(matched, h)
				break
			}
		}
	}
	return matched
}

func cellLeaks(cell string, values map[string]bool) bool {
	if cell == "" {
		return false
	}
	if values[cell] {
		return true
	}
	for v := range values {
		if strings.Contains(cell, v) {
			return true
		}
	}
	return false
}
