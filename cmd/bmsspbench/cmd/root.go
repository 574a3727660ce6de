package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
)

// rootCmd is the bmsspbench entry point. Configuration is resolved by
// viper from (in increasing priority) defaults, an optional --config
// file, and command-line flags, matching the layering the rest of the
// corpus uses for its own config packages.
var rootCmd = &cobra.Command{
	Use:   "bmsspbench",
	Short: "Benchmark the BMSSP solver against the Dijkstra baseline",
	RunE:  runBench,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none)")

	rootCmd.Flags().Int("n", 1000, "number of vertices")
	rootCmd.Flags().Float64("p", 0.01, "edge probability for the sparse random generator")
	rootCmd.Flags().Int64("max-weight", 100, "maximum edge weight (inclusive)")
	rootCmd.Flags().Int64("seed", 1, "random seed")
	rootCmd.Flags().Int("trials", 1, "number of independent trials to run")
	rootCmd.Flags().String("topology", "sparse", "graph topology: sparse, regular")
	rootCmd.Flags().Int("degree", 4, "degree for the regular topology")
	rootCmd.Flags().String("output", "", "CSV output file (default: stdout)")

	for _, name := range []string{"n", "p", "max-weight", "seed", "trials", "topology", "degree", "output"} {
		if err := v.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bmsspbench: bind flag %q: %v", name, err))
		}
	}
}

func initConfig() {
	if cfgFile == "" {
		return
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "bmsspbench: reading config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// Execute runs the root command, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
