// Package listing implements the presentation pipeline behind the college
// list: incremental reveal (infinite scroll), column sorting and name
// filtering over an immutable in-memory dataset.
//
// The visible rows are always derived in the same order:
//
//	dataset -> sort -> first Revealed() rows -> name filter
//
// so a filter narrows the rows already revealed and never pulls in rows from
// further down the dataset.
package listing
