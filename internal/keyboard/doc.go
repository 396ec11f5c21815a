// Package keyboard is a reorder engine driven by key presses.
//
// A session picks an item up, moves it one slot at a time and drops it,
// emitting the same consider and finalize notifications a pointer-driven
// engine would. Every notification carries [flip.SourceKeyboard].
package keyboard
