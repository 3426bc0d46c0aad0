package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"vnat/internal/app"
	"vnat/internal/nat"
)

var (
	configPath string
	maxValue   uint32
	force      bool
	verbose    bool
	appCtx     *app.App
)

// Execute runs the vnat CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vnat",
		Short:        "Natural numbers as von Neumann set trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max") {
				cfg.MaxValue = maxValue
			}
			if force {
				cfg.MaxValue = 0
			}
			if verbose {
				cfg.Verbose = true
			}

			log, err := app.NewLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "yaml config file")
	root.PersistentFlags().Uint32Var(&maxValue, "max", app.DefaultMaxValue, "largest value to build (0 = no limit)")
	root.PersistentFlags().BoolVar(&force, "force", false, "build values of any size")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		buildCmd(),
		addCmd(),
		renderCmd(),
		valueCmd(),
		fingerprintCmd(),
		encodeCmd(),
		decodeCmd(),
		statsCmd(),
	)
	return root
}

// parseValue reads a command-line argument as a uint32.
func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// printTree writes the diagram of tree to w, ending with a newline.
func printTree(w io.Writer, tree nat.Nat) error {
	if err := tree.Render(w); err != nil {
		return err
	}
	if tree.IsEmpty() {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}
