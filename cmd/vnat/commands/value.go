package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// valueCmd validates a hand-written tree; malformed trees make it fail.
func valueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value <notation>",
		Short: "Validate a tree given in set notation and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := appCtx.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := appCtx.Check(tree)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
