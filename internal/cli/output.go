package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalvaropc/bankcore/internal/account"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAccount(w io.Writer, s account.Snapshot) {
	fmt.Fprintf(w, "Account:  %s\n", s.ID)
	fmt.Fprintf(w, "Kind:     %s (%s)\n", s.Kind, s.Capabilities)
	fmt.Fprintf(w, "Holder:   %s\n", s.Holder)
	fmt.Fprintf(w, "Balance:  %s\n", s.Balance)
	fmt.Fprintf(w, "Opened:   %s\n", s.OpenedAt.Format("2006-01-02"))
	if s.Loan != nil {
		fmt.Fprintf(w, "Loan:     %s of %s\n", s.Loan.Outstanding, s.Loan.Limit)
	}
	if s.Portfolio != nil {
		fmt.Fprintf(w, "Invested: equities %s, funds %s (yield %s)\n", s.Portfolio.Equities, s.Portfolio.Funds, s.Portfolio.Yield)
	}
	if s.Bonus != nil {
		fmt.Fprintf(w, "Bonus:    next on %s\n", s.Bonus.NextDate.Format("2006-01-02"))
	}
}
