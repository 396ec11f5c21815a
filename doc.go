// Package flip animates the repositioning of items in a reorderable list or
// grid of terminal elements using the FLIP technique (First, Last, Invert,
// Play).
//
// A [Flipper] captures the rect of every child of a container before a
// reorder and, once the new order has been laid out, starts a translate
// animation on each child that moved so it glides from its old position to
// its new one. A [Zone] binds a Flipper to an external reorder [Engine]: it
// captures when the engine emits a consider or finalize notification,
// forwards the notification to the caller, and animates once the caller
// reports that the new order has been committed.
//
// The package also ships the runtime the engine needs in a terminal
// program: an [Element] tree with a stacking layout, a [Timeline] that runs
// translate animations against an injectable clock, and a single-threaded
// [Loop] that watchers post work onto.
package flip
