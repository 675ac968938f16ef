// Package file provides the TOML configuration store.
//
// Settings live in config.toml under the registro config directory.
// Dotted keys such as "fixups.enabled" are written as TOML tables:
//
//	workers = 4
//
//	[fixups]
//	enabled = ["setiembre", "email_spacing"]
package file
