// Package layout implements the geometry primitives and the horizontal box
// layout engine used by the widget toolkit.
//
// The engine distributes a container's width among its children according to
// per-axis [SizeConstraint] bit-sets. It works entirely through the narrow
// [Widget] interface, so any control that reports a preferred size and
// accepts a width, height and position can participate. Types are re-exported
// through the root tk package for public consumption.
//
// The main entry point is [HBox.Tile], which re-reads the children of its
// [Host], runs a fixed sequence of elimination passes and writes the resolved
// geometry back through the widgets' setters.
package layout
