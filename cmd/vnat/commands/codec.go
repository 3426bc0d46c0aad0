package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vnat/internal/codec"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <n>",
		Short: "Print the tree of n as base64 msgpack",
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
			s, err := codec.EncodeString(tree)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <base64>",
		Short: "Decode a base64 msgpack tree and print its value and diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := codec.DecodeString(args[0])
			if err != nil {
				return err
			}
			v, err := appCtx.Check(tree)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value = %d\n", v)
			return printTree(out, tree)
		},
	}
}
