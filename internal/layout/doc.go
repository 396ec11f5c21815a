// Package layout holds the cell-based geometry used by the flip element tree.
//
// [Rect] is the captured geometry of a node. [Stack] places a sequence of
// fixed-size children inside a container along a [Direction], optionally
// wrapping into further lines to form a grid. Types are re-exported through
// the root flip package for public consumption.
package layout
