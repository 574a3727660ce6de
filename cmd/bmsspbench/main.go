// Command bmsspbench generates random graphs and compares the BMSSP
// solver's wall-clock time and output against the Dijkstra baseline
// oracle, reporting the results as CSV.
package main

import "github.com/lvlath/bmssp/cmd/bmsspbench/cmd"

func main() {
	cmd.Execute()
}
