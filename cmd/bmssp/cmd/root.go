package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvlath/bmssp/bmssp"
	"github.com/lvlath/bmssp/codec"
)

var (
	inputPath  string
	outputPath string
)

// rootCmd represents the base command: read a graph, solve it, write the
// distances. There is intentionally no subcommand tree here - solving is
// the tool's only job.
var rootCmd = &cobra.Command{
	Use:   "bmssp",
	Short: "Solve single-source shortest paths with the block-batched BMSSP algorithm",
	Long: `bmssp reads a directed, non-negatively weighted graph in the format

  n m source
  u1 v1 w1
  ...
  um vm wm

and writes one shortest distance per line, in vertex-id order, using
"INF" for unreachable vertices.`,
	SilenceUsage: true,
	RunE:         runSolve,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input graph file (default: stdin)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output distances file (default: stdout)")
}

// Execute runs the root command, exiting with status 1 on any error -
// including a malformed-input *codec.ParseError, which Cobra would
// otherwise just print and swallow.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := openInput(inputPath)
	if err != nil {
		return fmt.Errorf("bmssp: %w", err)
	}
	defer in.Close()

	g, source, err := codec.Decode(in)
	if err != nil {
		return err
	}

	dist := bmssp.NewSolver(g, source).Solve()

	out, err := openOutput(outputPath)
	if err != nil {
		return fmt.Errorf("bmssp: %w", err)
	}
	defer out.Close()

	return codec.Encode(out, dist)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
