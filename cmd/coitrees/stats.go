package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/noamteyssier/coitrees/internal/bedio"
	"github.com/noamteyssier/coitrees/internal/config"
)

func newStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <reference.bed>",
		Short: "Print per-chromosome tree shape statistics",
		Long: "stats builds one interval tree per chromosome from <reference.bed> and\n" +
			"prints, per chromosome, the interval count, maximum BST depth, and the\n" +
			"mean/standard deviation of node depth. The tree shape depends only on\n" +
			"the interval count, not on the coordinates.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			files, err := bedio.ExpandPaths(args[0])
			if err != nil {
				return err
			}

			var records []bedio.Record
			for _, path := range files {
				recs, err := bedio.ReadFile(path)
				if err != nil {
					return err
				}
				records = append(records, recs...)
			}

			trees := bedio.BuildTrees(records, func(i int, r bedio.Record) struct{} { return struct{}{} })

			chroms := make([]string, 0, len(trees))
			for chrom := range trees {
				if cfg.Allows(chrom) {
					chroms = append(chroms, chrom)
				}
			}
			sort.Strings(chroms)

			// Unlike query's report, this schema isn't governed by
			// cfg.Columns — it has no chrom/start/end/count/coverage
			// shape to reorder, just five fixed tree-shape statistics.
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "chrom\tintervals\tmax_depth\tmean_depth\tstddev_depth")
			for _, chrom := range chroms {
				tree := trees[chrom]
				maxDepth, mean, stddev := tree.Statistics()
				fmt.Fprintf(out, "%s\t%d\t%d\t%.3f\t%.3f\n", chrom, tree.Len(), maxDepth, mean, stddev)
			}

			return nil
		},
	}
}
