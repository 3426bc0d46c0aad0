package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var notation bool
	cmd := &cobra.Command{
		Use:   "build <n>",
		Short: "Print the set tree of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseValue(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			tree, err := appCtx.Build(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if notation {
				fmt.Fprintln(out, tree.Notation())
				return nil
			}
			return printTree(out, tree)
		},
	}
	cmd.Flags().BoolVar(&notation, "notation", false, "print set notation instead of a diagram")
	return cmd
}
