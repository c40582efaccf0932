// Package grid is the presenter for remote character-grid targets. Each
// commit is serialized as one frame, a JSON array of draw commands
//
//	[{"x":0,"y":0,"w":80,"h":24,"bg":"#000000"},{"x":1,"y":1,"w":5,"h":1,"text":"hello","fg":"15"}]
//
// and handed verbatim to a Transport: a line-oriented writer for stdio hosts
// or a WebSocket hub that broadcasts to every connected client.
package grid
