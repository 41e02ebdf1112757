package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mad-sand/internal/core"
	_ "mad-sand/internal/sims/sand"
)

func newSimsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "List registered simulations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
