// Package file provides the file-based configuration adapter.
// Settings persist to a TOML file in the stellium config directory,
// with nested tables flattened to dot-notation keys on load.
package file
