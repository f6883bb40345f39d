// Package listview provides a virtual scrolling list for Bubble Tea programs.
//
// Only the rows inside the viewport (plus a small buffer) are rendered, so the
// cost of View does not grow with the number of items. The list also reports
// how many rows remain below the selection, which callers use as the
// "near the bottom" signal for infinite scrolling.
package listview
