// Package core implements the widget and element trees at the heart of the
// library.
//
// Widgets are immutable configuration; Elements give them identity and a
// lifecycle at a location in the tree. Rebuilds are scheduled on a
// [BuildOwner] and flushed in depth order, reconciling each element's
// children against the widgets its build produced: a nil widget unmounts
// the child, a widget of the same type and key updates it in place, and
// anything else inflates a replacement.
package core
