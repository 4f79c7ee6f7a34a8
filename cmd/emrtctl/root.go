package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/emrt/internal/gclog"
)

var (
	verbose   bool
	jsonOut   bool
	arenaSize int
)

var rootCmd = &cobra.Command{
	Use:   "emrtctl",
	Short: "Drive and inspect the emrt garbage collector",
	Long: `emrtctl exercises the emrt object heap and collector standalone.
It is a development and demonstration tool, not a substitute for embedding
the collector in a real interpreter.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return gclog.Init(gclog.Options{Enabled: verbose})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().IntVar(&arenaSize, "arena-size", 0, "Arena capacity (0 selects the default)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
