// Package preflight provides readiness checks for the filesystem paths,
// database, editor, clipboard, and notification endpoint Recetin depends on.
//
// The CLI "recetin doctor" command runs RunAll and renders one status line per
// Result. Checks for optional features report Passed with a "Disabled" detail
// when the feature is not configured.
package preflight
