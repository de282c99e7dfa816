package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/usecase/inspect"
)

func accountsCmd(opts *rootOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect accounts in a workspace",
	}

	c.AddCommand(accountsListCmd(opts), accountsShowCmd(opts))
	return c
}

func accountsListCmd(opts *rootOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			accs, err := ws.teller.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				snaps := make([]account.Snapshot, 0, len(accs))
				for _, a := range accs {
					snaps = append(snaps, a.Snapshot())
				}
				return printJSON(out, snaps)
			}

			if len(accs) == 0 {
				fmt.Fprintln(out, "(no accounts found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, a := range accs {
				fmt.Fprintf(out, "- %s  %-10s %12s  %s\n", a.ID(), a.Kind(), a.Balance(), a.Holder())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func accountsShowCmd(opts *rootOpts) *cobra.Command {
	var format string
	var fields []string

	cmd := &cobra.Command{
		Use:   "show <accountId>",
		Short: "Show one account, or selected fields with --field name=$.path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			rules, err := inspect.ParseRules(fields)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			acc, err := ws.teller.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rules) == 0 {
				if format == formatJSON {
					return printJSON(out, acc.Snapshot())
				}
				printAccount(out, acc.Snapshot())
				return nil
			}

			vals, results, err := inspect.Account(acc, rules)
			if err != nil {
				return err
			}
			if format == formatJSON {
				return printJSON(out, vals)
			}

			failed := 0
			for _, r := range results {
				if !r.Success {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", r.Message)
					continue
				}
				fmt.Fprintf(out, "%s = %s\n", r.Name, vals[r.Name])
			}
			if failed > 0 {
				return fmt.Errorf("%d field(s) did not resolve", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "Field to extract as name=$.jsonpath (repeatable)")
	return cmd
}
