package terms

import (
	"sort"
	"strings"
)

// defaults are the built-in identifying terms restored by Reset.
var defaults = []string{"name", "dob"}

// Defaults returns a copy of the built-in term list.
func Defaults() []string {
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

// Set is a registry of lowercase identifying terms.
type Set struct {
	terms map[string]bool
}

// New creates a Set containing the given terms, normalized to lowercase.
// With no arguments the set starts from the built-in defaults.
func New(initial ...string) *Set {
	s := &Set{terms: make(map[string]bool)}
	if len(initial) == 0 {
		initial = defaults
	}
	for _, t := range initial {
		s.Add(t)
	}
	return s
}

// Normalize lowercases and trims a term or header for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Add inserts a term. Empty strings and duplicates are no-ops.
func (s *Set) Add(term string) {
	term = Normalize(term)
	if term == "" {
		return
	}
	s.terms[term] = true
}

// Remove deletes a term. Absent terms are a no-op.
func (s *Set) Remove(term string) {
	delete(s.terms, Normalize(term))
}

// Reset restores the built-in default terms.
func (s *Set) Reset() {
	s.terms = make(map[string]bool)
	for _, t := range defaults {
		s.terms[t] = true
	}
}

// Contains reports whether the exact term is registered.
func (s *Set) Contains(term string) bool {
	return s.terms[Normalize(term)]
}

// Len returns the number of registered terms.
func (s *Set) Len() int {
	return len(s.terms)
}

// List returns the terms in lexical order for display.
func (s *Set) List() []string {
	out := make([]string, 0, len(s.terms))
	for t := range s.terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Match reports whether the normalized header contains any registered term.
func (s *Set) Match(header string) bool {
	h := Normalize(header)
	for t := range s.terms {
		if strings.Contains(h, t) {
			return true
		}
	}
	return false
}
