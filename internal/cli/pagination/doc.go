// Package pagination provides the sorting, reveal and filter parameters of the
// non-interactive list command, and the metadata reported with its output.
//
// This package contains:
//   - ListParams: CLI flag values and their validation
//   - ParseSort: "field" / "field:order" parsing against the sortable columns
//   - Apply: replays the parameters on a listing.Pipeline as UI events would
//   - RevealMeta: pagination metadata emitted alongside the rows
package pagination
