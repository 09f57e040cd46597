// Command gentzen runs sequent-calculus proof search for propositional
// classical linear logic from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var debug bool

func newLogger() hclog.Logger {
	if !debug {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "gentzen",
		Level: hclog.Debug,
	})
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gentzen",
		Short: "Sequent-calculus proof search for classical linear logic",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "emit search-trace debug logging")
	root.AddCommand(newProveCmd(), newCatalogCmd(), newDemoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
