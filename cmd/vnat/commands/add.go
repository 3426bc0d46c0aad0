package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd adds two numbers as trees and prints their values, and optionally
// the sum in set notation and as a diagram.
func addCmd() *cobra.Command {
	var render, notation bool
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two numbers as set trees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseValue(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			b, err := parseValue(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}

			ta, tb, sum, err := appCtx.Add(a, b)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "a = %d\n", ta.Uint32())
			fmt.Fprintf(out, "b = %d\n", tb.Uint32())
			fmt.Fprintf(out, "a + b = %d\n", sum.Uint32())
			if notation {
				fmt.Fprintf(out, "a + b in set notation: %s\n", sum.Notation())
			}
			if render {
				fmt.Fprintln(out, "a + b as empty sets:")
				if err := printTree(out, sum); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "also print the diagram of the sum")
	cmd.Flags().BoolVar(&notation, "notation", false, "also print the sum in set notation")
	return cmd
}
