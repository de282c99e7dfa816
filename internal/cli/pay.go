package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/infra/logger"
)

func payCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <methodName> <amount>",
		Short: "Process a payment with a registered method",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseMoney(args[1])
			if err != nil {
				return err
			}

			st, err := loadStrategies(opts.workspace)
			if err != nil {
				return err
			}

			p, err := st.payments.Pay(amount, args[0])
			if err != nil {
				return err
			}

			logger.L().Info("payment.processed", "id", p.ID, "method", p.Method, "amount", p.Amount)
			fmt.Fprintf(cmd.OutOrStdout(), "Paid %s via %s (payment %s)\n", p.Amount, p.Method, p.ID)
			return nil
		},
	}
}
