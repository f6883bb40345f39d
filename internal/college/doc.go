// Package college defines the college record model and loads the static
// dataset the listing is built from.
//
// Datasets are JSON or YAML documents holding either a bare array of records
// or a versioned envelope:
//
//	{"version": "1.0.0", "colleges": [ ... ]}
//
// Fee, placement and ranking values are kept as NumericText so the digits
// used for comparison are derived once at load time.
package college
