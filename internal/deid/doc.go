// Package deid implements the two-pass column-identification heuristic.
//
// The first pass flags columns whose normalized names contain a registered
// identifying term. The second pass propagates the values of first-pass
// columns: any other column sharing at least one non-empty cell value with
// them is flagged too, which surfaces differently-named columns that repeat
// already-flagged data (a free-text note leaking a patient name, say).
//
// The second pass compares string representations and matches existentially
// (a single shared cell flags the whole column). That makes it a
// duplicate-value leak detector, not a semantic PII detector: legitimately
// repeated values such as shared enumerations or foreign keys will produce
// false positives, which is accepted heuristic noise.
package deid
