package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vnat/internal/digest"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <n>",
		Short: "Print the structural fingerprint of n",
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
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", digest.Fingerprint(tree))
			return nil
		},
	}
}
