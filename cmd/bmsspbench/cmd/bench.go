package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvlath/bmssp/bmssp"
	"github.com/lvlath/bmssp/builder"
	"github.com/lvlath/bmssp/core"
	"github.com/lvlath/bmssp/internal/baseline"
)

// runBench generates `trials` independent random graphs per the resolved
// configuration, solves each with both bmssp and the Dijkstra baseline,
// and reports one CSV row per trial: vertex/edge counts, both solve
// durations, and whether the two solvers agreed on every distance.
func runBench(cmd *cobra.Command, args []string) error {
	n := v.GetInt("n")
	p := v.GetFloat64("p")
	maxWeight := v.GetInt64("max-weight")
	seed := v.GetInt64("seed")
	trials := v.GetInt("trials")
	topology := v.GetString("topology")
	degree := v.GetInt("degree")
	outputPath := v.GetString("output")

	out, err := openCSVOutput(outputPath)
	if err != nil {
		return fmt.Errorf("bmsspbench: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()
	if err := w.Write([]string{"trial", "n", "edges", "bmssp_us", "baseline_us", "agree"}); err != nil {
		return fmt.Errorf("bmsspbench: writing CSV header: %w", err)
	}

	for trial := 0; trial < trials; trial++ {
		cg, err := generateGraph(topology, n, p, degree, maxWeight, seed+int64(trial))
		if err != nil {
			return fmt.Errorf("bmsspbench: generating graph: %w", err)
		}
		g := toBMSSPGraph(cg)

		t0 := time.Now()
		want := bmssp.NewSolver(g, 0).Solve()
		bmsspElapsed := time.Since(t0)

		t1 := time.Now()
		got, err := baseline.Solve(g, 0)
		baselineElapsed := time.Since(t1)
		if err != nil {
			return fmt.Errorf("bmsspbench: baseline solve: %w", err)
		}

		agree := distancesAgree(want, got)

		row := []string{
			strconv.Itoa(trial),
			strconv.Itoa(g.N()),
			strconv.Itoa(countEdges(cg)),
			strconv.FormatInt(bmsspElapsed.Microseconds(), 10),
			strconv.FormatInt(baselineElapsed.Microseconds(), 10),
			strconv.FormatBool(agree),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("bmsspbench: writing CSV row: %w", err)
		}
	}

	return nil
}

// generateGraph builds one random graph of the requested topology using
// the builder package, keeping vertex generation and edge sampling
// deterministic for a fixed seed.
func generateGraph(topology string, n int, p float64, degree int, maxWeight, seed int64) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithDirected(true), core.WithWeighted()}
	bopts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithUniformWeight(1, float64(maxWeight)),
	}

	var ctor builder.Constructor
	switch topology {
	case "sparse":
		ctor = builder.RandomSparse(n, p)
	case "regular":
		ctor = builder.RandomRegular(n, degree)
	default:
		return nil, fmt.Errorf("unknown topology %q (want sparse or regular)", topology)
	}

	return builder.BuildGraph(gopts, bopts, ctor)
}

// toBMSSPGraph converts a builder-generated core.Graph, whose vertex IDs
// are the decimal strings "0".."n-1" under the default ID scheme, into a
// dense int-indexed bmssp.Graph.
func toBMSSPGraph(cg *core.Graph) *bmssp.Graph {
	n := len(cg.Vertices())
	g := bmssp.NewGraph(n)
	for _, e := range cg.Edges() {
		u, _ := strconv.Atoi(e.From)
		v, _ := strconv.Atoi(e.To)
		g.AddEdge(u, v, float64(e.Weight))
	}
	return g
}

func countEdges(cg *core.Graph) int { return len(cg.Edges()) }

func distancesAgree(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ai, bi := a[i], b[i]
		aInf := math.IsInf(ai, 1)
		bInf := math.IsInf(bi, 1)
		if aInf != bInf {
			return false
		}
		if aInf {
			continue
		}
		diff := ai - bi
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-3 {
			return false
		}
	}
	return true
}

func openCSVOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
