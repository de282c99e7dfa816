package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func openCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "open <kind> <holder...>",
		Short: "Open an account (checking, savings, investment, full)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			acc, err := ws.teller.Open(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s account %s for %s\n", acc.Kind(), acc.ID(), acc.Holder())
			return nil
		},
	}
}
