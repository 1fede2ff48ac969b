// Package widgets provides the basic render-only building blocks: text,
// boxes, padding, centering, stacks, and flex rows/columns.
package widgets
