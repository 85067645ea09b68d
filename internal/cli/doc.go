// Package cli wires together the Cobra command tree for the scrub binary.
//
// It defines the root command and all subcommands (scan, export, terms,
// config, version), binds flags, reads configuration, drives a session
// through the load/match/export workflow, and returns deterministic exit
// codes so scans can gate CI pipelines.
package cli
