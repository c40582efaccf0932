// Package surface renders already-reconciled scene trees onto non-browser
// surfaces.
//
// A Pipeline takes scene snapshots, lays them out, flattens the geometry into
// clipped draw commands and hands each frame to a Sink: the terminal Renderer
// in this package, a grid transport, a tcell screen or a game-engine canvas.
//
// Users import this single package for the public API: pipeline lifecycle,
// sinks, the terminal screen buffer and diff renderer, and the layout types.
package surface
