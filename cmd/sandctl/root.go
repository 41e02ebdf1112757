package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"mad-sand/internal/app"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
	logger  *log.Logger
}

// NewRootCommand creates the root command for sandctl.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sandctl",
		Short:         "Headless falling-sand runner",
		Long:          "Runs the sand, water and rock automaton from the terminal: render scenes, export results and soak-test the tick rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = app.NewLogger("sandctl", opts.Verbose)
			opts.logger.SetOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newSoakCommand(opts))
	cmd.AddCommand(newSimsCommand())

	return cmd
}
