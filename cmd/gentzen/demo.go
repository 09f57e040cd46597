package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gentzen/internal/batch"
	"github.com/gitrdm/gentzen/pkg/gentzen/catalog"
)

func newDemoCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every catalog formula through the search engine and report pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entries := catalog.Entries()
			results, stats := batch.RunCatalog(context.Background(), entries, workers)

			ok := color.New(color.FgGreen, color.Bold)
			bad := color.New(color.FgRed, color.Bold)

			mismatches := 0
			for _, r := range results {
				got := "Success"
				printer := ok
				if !r.Provable() {
					got = "Failure(RanOutOfPaths)"
					printer = bad
				}
				mark := "ok"
				if r.Provable() != r.Entry.WantProvable {
					mark = "MISMATCH"
					mismatches++
				}
				fmt.Fprintf(out, "%-26s ", r.Entry.Name)
				printer.Fprintf(out, "%-24s", got)
				fmt.Fprintf(out, " %8s  %s\n", r.Duration.Round(time.Microsecond), mark)
			}

			fmt.Fprintf(out, "\n%d entries, %d mismatches, %d workers, avg duration %s\n",
				len(results), mismatches, workers, stats.AverageTaskDuration)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent Prove calls to run")
	return cmd
}
