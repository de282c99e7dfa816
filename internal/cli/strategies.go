package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
)

func strategiesCmd(opts *rootOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "strategies",
		Short: "Show registered discount tiers, payment methods and account kinds",
	}

	c.AddCommand(strategiesListCmd(opts))
	return c
}

func strategiesListCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := loadStrategies(opts.workspace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sample := domain.MoneyFromInt(1000)

			fmt.Fprintln(out, "Discount tiers (on 1000.00):")
			for name, tier := range st.discounts.All() {
				fmt.Fprintf(out, "  - %-14s %s\n", name, tier.Discount(sample))
			}

			fmt.Fprintln(out, "\nPayment methods:")
			for m := range st.payments.Methods() {
				fmt.Fprintf(out, "  - %s\n", m.DisplayName())
			}

			fmt.Fprintln(out, "\nAccount kinds:")
			for _, kind := range account.DefaultCatalog().Kinds() {
				fmt.Fprintf(out, "  - %s\n", kind)
			}
			return nil
		},
	}
}
