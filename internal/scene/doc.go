// Package scene defines the immutable Scene Snapshot consumed by the layout
// engine: a tree of typed nodes carrying an open style map, optional literal
// text, and ordered children.
//
// Snapshots are produced by an external reconciler after each commit and are
// replaced wholesale, never mutated in place. Nodes hold no parent pointers.
package scene
