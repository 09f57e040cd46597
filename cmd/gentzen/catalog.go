package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gentzen/pkg/gentzen/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the named example formulas bundled with gentzen",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, entry := range catalog.Entries() {
				fmt.Fprintf(out, "%-26s %s  (%s)\n", entry.Name, entry.Formula.String(), entry.Classification)
			}
			return nil
		},
	}
}
