// Package terms maintains the registry of identifying terms used to flag
// candidate columns by name.
//
// A term is a lowercase substring ("name", "dob", "ssn") matched against
// normalized column headers. The registry is a plain value owned by its
// creator — typically a session — so independent sessions carry independent
// term sets. Add and Remove are idempotent; Reset restores the built-in
// defaults.
package terms
