package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/strategy/discount"
	"github.com/aalvaropc/bankcore/internal/strategy/payment"
)

var sampleAmount = domain.MoneyFromInt(1000)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderAccountDetails(t Theme, acc account.Account) string {
	if acc == nil {
		return "(no account selected)"
	}
	s := acc.Snapshot()

	var b strings.Builder
	b.WriteString(t.Title.Render(clampString(s.Holder, 40)))
	b.WriteString("  ")
	b.WriteString(t.Badge.Render(string(s.Kind)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Id:           %s\n", s.ID)
	fmt.Fprintf(&b, "Kind:         %s\n", s.Kind)
	fmt.Fprintf(&b, "Capabilities: %s\n", s.Capabilities)
	fmt.Fprintf(&b, "Opened:       %s\n", s.OpenedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Balance:      %s\n", t.Money.Render(s.Balance.String()))

	if s.Loan != nil {
		b.WriteString("\nLending:\n")
		fmt.Fprintf(&b, "  - outstanding: %s\n", s.Loan.Outstanding)
		fmt.Fprintf(&b, "  - limit:       %s\n", s.Loan.Limit)
		fmt.Fprintf(&b, "  - available:   %s\n", s.Loan.Limit.Sub(s.Loan.Outstanding))
	}
	if s.Portfolio != nil {
		b.WriteString("\nInvesting:\n")
		fmt.Fprintf(&b, "  - equities: %s\n", s.Portfolio.Equities)
		fmt.Fprintf(&b, "  - funds:    %s\n", s.Portfolio.Funds)
		fmt.Fprintf(&b, "  - yield:    %s\n", s.Portfolio.Yield)
	}
	if s.Bonus != nil {
		b.WriteString("\nSavings bonus:\n")
		fmt.Fprintf(&b, "  - last accrual: %s\n", s.Bonus.LastAccrual.Format("2006-01-02"))
		fmt.Fprintf(&b, "  - next date:    %s\n", s.Bonus.NextDate.Format("2006-01-02"))
	}
	return b.String()
}

func renderDiscounts(t Theme, reg *discount.Registry) string {
	if reg == nil || reg.Len() == 0 {
		return "(no discount tiers registered)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", t.Title.Render("Discount on "+sampleAmount.String()))
	for name, tier := range reg.All() {
		d := tier.Discount(sampleAmount)
		fmt.Fprintf(&b, "  %-16s %10s  → %s\n", clampString(name, 16), d, discount.FinalPrice(sampleAmount, tier))
	}
	return b.String()
}

func renderPayments(p *payment.Processor) string {
	if p == nil {
		return "(no payment methods registered)"
	}

	var b strings.Builder
	for m := range p.Methods() {
		b.WriteString("  - ")
		b.WriteString(m.DisplayName())
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "(no payment methods registered)"
	}
	return b.String()
}
