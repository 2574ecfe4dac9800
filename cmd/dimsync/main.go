// Package main provides the dimsync CLI, which lays out a widget tree
// described in YAML and reports the synchronized sizes.
//
// Usage:
//
//	dimsync layout [-v] [--width N] [--height N] [--frames N] file.yaml
//	dimsync version
//	dimsync help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `dimsync - cross-subtree dimension synchronization

Usage:
  dimsync <command> [options] [file]

Commands:
  layout      Lay out a scene file and report named node sizes
  version     Print version information
  help        Show this help message

Layout options:
  -v            Verbose output
  --width N     Frame width (default: scene, then terminal, then 80)
  --height N    Frame height (default: scene, then terminal, then 24)
  --frames N    Maximum frames to run before giving up on pending relayouts

Examples:
  dimsync layout table.yaml
  dimsync layout --width 40 -v table.yaml

Set DIMSYNC_DEBUG=/tmp/dimsync.log to write a debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "layout":
		if err := runLayout(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("dimsync version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
