// Command coitrees builds a cache-oblivious interval tree per
// chromosome from a BED file and reports overlap counts (and optionally
// coverage) for a second BED file of queries, or dumps per-chromosome
// tree statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coitrees",
		Short:         "Cache-oblivious interval tree overlap queries over BED files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(newQueryCmd(&configPath))
	cmd.AddCommand(newStatsCmd(&configPath))

	return cmd
}
