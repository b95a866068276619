// Package config loads tool defaults for qcmkit-based tools from TOML or
// YAML files, selected by file extension.
//
// A config file carries the parse constraints and conversion defaults:
//
//	# qcmconv.toml
//	enforce_single = true
//	require_at_least_one_correct = true
//	format = "json"
//	output = "out/"
//
// The library itself never requires a config file; this package exists for
// the CLI and other glue layers.
package config
