package commands

import "github.com/spf13/cobra"

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <notation>",
		Short: "Print the diagram of a tree given in set notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := appCtx.Parse(args[0])
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), tree)
		},
	}
}
