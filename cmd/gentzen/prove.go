package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gentzen/pkg/gentzen"
)

func newProveCmd() *cobra.Command {
	var quiet bool
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "prove <formula-expr>",
		Short: "Decide whether a formula is derivable, printing the proof tree on success",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := parseFormula(args[0])
			if err != nil {
				return err
			}

			opts := []gentzen.Option{gentzen.WithLogger(newLogger())}
			if maxSteps > 0 {
				opts = append(opts, gentzen.WithMaxSteps(maxSteps))
			}

			tree, err := gentzen.Prove(context.Background(), formula, opts...)
			if err != nil {
				color.New(color.FgRed, color.Bold).Fprintln(cmd.OutOrStdout(), "Failure(RanOutOfPaths)")
				return nil
			}

			color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "Success")
			if !quiet {
				printTree(cmd, tree)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress proof tree output on success")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "cap the number of sequents explored (0 = unbounded)")
	return cmd
}

var ruleColors = map[string]*color.Color{
	"axiom":             color.New(color.FgCyan),
	"⊤":                 color.New(color.FgCyan),
	"1":                 color.New(color.FgCyan),
	"⊗":                 color.New(color.FgMagenta),
	"⅋":                 color.New(color.FgMagenta),
	"&":                 color.New(color.FgYellow),
	"⊕L":                color.New(color.FgYellow),
	"⊕R":                color.New(color.FgYellow),
	"DeMorgan":          color.New(color.FgBlue),
	"weakening":         color.New(color.FgWhite),
	"dereliction":       color.New(color.FgWhite),
	"contraction":       color.New(color.FgWhite),
	"(already proven)":  color.New(color.FgHiBlack),
}

// printTree renders tree.String()'s bottom-up layout, recoloring the
// last space-separated word of each line when ruleColors has an entry
// for it. That word is usually an inference line's rule-name label,
// but a sequent line ending in a formula such as 1 or ⊤ is recolored
// too; everything left of the word is printed unchanged.
func printTree(cmd *cobra.Command, tree gentzen.Tree) {
	out := cmd.OutOrStdout()
	for _, line := range strings.Split(tree.String(), "\n") {
		idx := strings.LastIndex(line, " ")
		if idx < 0 {
			fmt.Fprintln(out, line)
			continue
		}
		label := line[idx+1:]
		if c, ok := ruleColors[label]; ok {
			fmt.Fprintln(out, line[:idx+1]+c.Sprint(label))
			continue
		}
		fmt.Fprintln(out, line)
	}
}
