package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vnat/internal/codec"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <n>",
		Short: "Print node count, depth and encoded size of the tree of n",
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
			b, err := codec.Marshal(tree)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value:   %d\n", tree.Uint32())
			fmt.Fprintf(out, "nodes:   %s\n", humanize.Comma(int64(tree.Size())))
			fmt.Fprintf(out, "depth:   %d\n", tree.Depth())
			fmt.Fprintf(out, "encoded: %s\n", humanize.Bytes(uint64(len(b))))
			return nil
		},
	}
}
