// Package layout implements the geometry of a constraint-based layout pass.
//
// A parent hands each child a [Constraints] range and the child answers with
// the [Size] it picked inside that range. Sizes are float64 so that unbounded
// extents can be expressed as +Inf; a finite size is one that a widget
// actually measured. Types are re-exported through the root dimsync package.
package layout
