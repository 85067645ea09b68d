// Scrub is a CLI for stripping personally identifying columns from tabular
// files.
//
// It flags candidate columns in two passes — by matching column names against
// a configurable list of identifying terms, then by propagating the flagged
// columns' values to catch differently-named columns repeating the same data —
// and exports a copy of the file with the selected columns removed.
//
// Usage:
//
//	scrub scan patients.csv                      # flag columns by name
//	scrub scan patients.csv --second-pass        # also flag value overlaps
//	scrub export patients.csv --auto             # drop flagged columns
//	scrub export patients.xlsx --drop Name,DOB   # drop named columns
//	scrub terms add ssn mrn                      # extend the term list
//
// Removal is the only transformation applied: retained cells are written
// byte-for-byte, and the source file is never overwritten in place.
package main
