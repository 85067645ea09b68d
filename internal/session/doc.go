// Package session exposes the de-identification workflow as a plain
// request/response API: one method per user action, each returning a
// structured result that any front end (CLI, web, desktop) can render.
//
// A Session owns its identifying-term set and at most one loaded table, so
// concurrent sessions never share state. The lifecycle is
//
//	Idle -> Loaded -> (matcher calls) -> Exported | Reset
//
// Matcher calls before a table is loaded return empty results rather than
// errors. Reset unloads the table and restores the default term set.
//
// Terminal outcomes are reported as human-readable status strings
// ("success: ...", "file not found", "no output name given", "read error:
// ...", "write error: ..."); the underlying Go error stays available on the
// result for callers that want to inspect it.
package session
