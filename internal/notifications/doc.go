// Package notifications delivers recipe lifecycle events via ntfy.
//
// The default implementation publishes to the topic configured in
// config.toml and degrades to a no-op when notifications are disabled.
// Per-event toggles in the [notifications] section let users silence
// individual events without dropping the topic.
package notifications
