package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/usecase"
)

func investCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:       "invest <accountId> equities|funds <amount>",
		Short:     "Move cash into equities or funds (investment and full accounts)",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{string(usecase.InvestEquities), string(usecase.InvestFunds)},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			amount, err := domain.ParseMoney(args[2])
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			acc, err := ws.teller.Invest(cmd.Context(), id, usecase.InvestTarget(args[1]), amount)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Invested %s in %s\n", amount, args[1])
			fmt.Fprintf(out, "Balance: %s\n", acc.Balance())
			if inv, ok := acc.(account.Investing); ok {
				fmt.Fprintf(out, "Yield:   %s\n", inv.CurrentYield())
			}
			return nil
		},
	}
}

func loanCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "loan <accountId> <amount>",
		Short: "Request a loan (checking and full accounts)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			acc, err := ws.teller.RequestLoan(cmd.Context(), id, amount)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loan of %s granted\n", amount)
			fmt.Fprintf(out, "Balance: %s\n", acc.Balance())
			if l, ok := acc.(account.Lending); ok {
				fmt.Fprintf(out, "Limit:   %s\n", l.LoanLimit())
			}
			return nil
		},
	}
}

func bonusCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "bonus <accountId>",
		Short: "Accrue the savings bonus when it is due (savings and full accounts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			bonus, acc, err := ws.teller.AccrueBonus(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bonus of %s credited\n", bonus)
			fmt.Fprintf(out, "Balance: %s\n", acc.Balance())
			if sb, ok := acc.(account.SavingsBonus); ok {
				fmt.Fprintf(out, "Next:    %s\n", sb.NextBonusDate().Format("2006-01-02"))
			}
			return nil
		},
	}
}
