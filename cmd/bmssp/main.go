// Command bmssp solves single-source shortest paths over a graph read
// from stdin (or a file given with --input) and writes the resulting
// distances to stdout (or a file given with --output).
package main

import "github.com/lvlath/bmssp/cmd/bmssp/cmd"

func main() {
	cmd.Execute()
}
