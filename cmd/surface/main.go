// Package main provides the surface CLI, which renders a stream of scene
// snapshots onto a terminal, a remote grid or a canvas window.
//
// Usage:
//
//	surface run [options]           Render snapshots read from stdin
//	surface layout [options] [file] Print the geometry of one snapshot
//	surface help                    Show help
//
// Snapshots are JSON objects, one per line:
//
//	{"id":1,"type":"container","style":{"flexDirection":"row"},"children":[...]}
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `surface - render scene snapshots onto terminals, grids and canvases

Usage:
  surface <command> [options]

Commands:
  run         Render JSON-lines snapshots from stdin onto a target
  layout      Print the geometry tree or draw commands of one snapshot
  version     Print version information
  help        Show this help message

Run options:
  -config path        TOML config file (flags override it)
  -target name        terminal, stdio, ws, tcell or canvas (default terminal)
  -listen addr        WebSocket listen address for the ws target
  -fps n              Frame rate of the terminal timer (1-240)
  -width n -height n  Viewport size for targets without a size of their own
  -coord-base n       Coordinate origin, 0 or 1 (1 only for stdio and ws)
  -fg color           Default text color
  -palette list       Quantize colors: "xterm16" or comma-separated colors
  -exit-on-eof        Stop once stdin is exhausted (default for stdio)

Examples:
  app | surface run                         Draw on this terminal
  app | surface run -target stdio           Emit one JSON frame per line
  app | surface run -target ws -listen :7070
  surface layout -width 40 -height 10 snap.json
  surface layout -commands snap.json

Set SURFACE_DEBUG=/tmp/surface.log to write a debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runRun(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "layout":
		if err := runLayout(args, os.Stdin, os.Stdout); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("surface version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
