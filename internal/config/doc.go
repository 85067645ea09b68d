// Package config loads and merges scrub configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SCRUB_TERMS, SCRUB_FORMAT, SCRUB_PREVIEW_ROWS,
//     SCRUB_OVERWRITE_PREFIX)
//  3. Config file ($XDG_CONFIG_HOME/scrub/config.json)
//  4. Built-in defaults
//
// The persisted term list is the only durable state the tool keeps: a
// session starts from the configured terms and mutates its own copy, so
// interactive add/remove never writes back here unless done through
// `scrub terms`.
package config
