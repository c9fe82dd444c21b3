package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-layout/pkg/debug"
)

// version is set via ldflags at build time.
var version = "dev"

type rootOptions struct {
	logPath string
	width   int
	height  int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Solve and preview terminal layouts described in YAML",
		Long: `tui loads widget trees described in YAML, lays them out for a given
terminal size and prints or draws the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logPath != "" {
				return debug.Init(opts.logPath)
			}
			return debug.InitFromEnv()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	width, height := terminalSize()
	cmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "Write debug logs to this file (default: $TUI_DEBUG)")
	cmd.PersistentFlags().IntVarP(&opts.width, "width", "W", width, "Screen width in cells")
	cmd.PersistentFlags().IntVarP(&opts.height, "height", "H", height, "Screen height in cells")

	cmd.AddCommand(
		newSolveCmd(opts),
		newPreviewCmd(opts),
		newDemoCmd(),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) validate() error {
	if o.width < 0 || o.height < 0 {
		return fmt.Errorf("screen size %dx%d is negative", o.width, o.height)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tui %s\n", version)
		},
	}
}
