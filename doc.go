// Package tk is a small widget toolkit built around a horizontal box
// layout.
//
// Users import this single package for the public API: geometry types,
// size constraints, the HBox layout engine, containers and the built-in
// controls. Painting targets an in-memory cell Buffer; there is no display
// backend.
package tk
