package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/usecase"
)

type transactFunc func(t *usecase.Teller, ctx context.Context, id uuid.UUID, amount domain.Money) (usecase.Transaction, error)

func depositCmd(opts *rootOpts) *cobra.Command {
	return transactCmd(opts, "deposit", "Deposit an amount into an account", (*usecase.Teller).Deposit)
}

func withdrawCmd(opts *rootOpts) *cobra.Command {
	return transactCmd(opts, "withdraw", "Withdraw an amount from an account", (*usecase.Teller).Withdraw)
}

func transactCmd(opts *rootOpts, name, short string, apply transactFunc) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   name + " <accountId> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			amount, err := domain.ParseMoney(args[1])
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			tx, err := apply(ws.teller, cmd.Context(), id, amount)
			if format == formatJSON && tx.ID != uuid.Nil {
				_ = printJSON(cmd.OutOrStdout(), tx)
			}
			if err != nil {
				return err
			}

			if format != formatJSON {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s of %s applied\n", tx.Type, tx.Amount)
				fmt.Fprintf(out, "Balance: %s\n", tx.BalanceAfter)
				fmt.Fprintf(out, "Tx:      %s\n", tx.ID)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
