// Package layout implements the single-pass geometry engine that turns a
// Scene Snapshot into a Geometry Tree.
//
// Every node receives absolute integer (X, Y, W, H) resolved from its style,
// the space its parent allotted, and a single-axis flex distribution. The
// engine never clips; children may overflow and are cut later by the
// flatten stage.
//
// The main entry point is [Calculate]. The result is an arena [Tree] whose
// nodes refer to their parent and children by index.
package layout
