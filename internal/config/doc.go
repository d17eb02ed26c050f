// Package config loads, normalizes, and validates Recetin configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RECETIN_NTFY_TOPIC. The Config type centralizes every knob the CLI needs so
// the database location, log output, and notification settings are resolved
// in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
