package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/infra/logger"
	"github.com/aalvaropc/bankcore/internal/strategy/discount"
)

func discountCmd(opts *rootOpts) *cobra.Command {
	var final bool

	c := &cobra.Command{
		Use:   "discount <strategyName> <amount>",
		Short: "Compute the discount a tier grants on an amount",
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

			tier, err := st.discounts.Resolve(args[0])
			if err != nil {
				return err
			}

			d := tier.Discount(amount)
			logger.L().Info("discount.computed", "tier", args[0], "amount", amount, "discount", d)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d)
			if final {
				fmt.Fprintln(out, discount.FinalPrice(amount, tier))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&final, "final", false, "Also print the final price")
	return c
}
