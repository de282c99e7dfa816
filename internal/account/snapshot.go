package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/strategy"
)

// Snapshot is the serializable state of an account.
type Snapshot struct {
	ID           uuid.UUID    `json:"id" yaml:"id"`
	Kind         Kind         `json:"kind" yaml:"kind"`
	Holder       string       `json:"holder" yaml:"holder"`
	Balance      domain.Money `json:"balance" yaml:"balance"`
	OpenedAt     time.Time    `json:"opened_at" yaml:"opened_at"`
	Capabilities Capabilities `json:"capabilities" yaml:"capabilities"`

	Loan      *LoanState      `json:"loan,omitempty" yaml:"loan,omitempty"`
	Portfolio *PortfolioState `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
	Bonus     *BonusState     `json:"bonus,omitempty" yaml:"bonus,omitempty"`
}

type LoanState struct {
	Limit       domain.Money `json:"limit" yaml:"limit"`
	Outstanding domain.Money `json:"outstanding" yaml:"outstanding"`
}

type PortfolioState struct {
	Equities domain.Money `json:"equities" yaml:"equities"`
	Funds    domain.Money `json:"funds" yaml:"funds"`
	Yield    domain.Money `json:"yield" yaml:"yield"`
}

type BonusState struct {
	LastAccrual time.Time `json:"last_accrual" yaml:"last_accrual"`
	NextDate    time.Time `json:"next_date" yaml:"next_date"`
}

func (s Snapshot) validate() error {
	if s.ID == uuid.Nil {
		return domain.NewDomainError(domain.KindInvalidInput, "account snapshot has no id")
	}
	if s.Balance.IsNegative() {
		return domain.NewDomainError(domain.KindInvalidInput, "account %s: negative balance %s", s.ID, s.Balance)
	}
	if s.Loan != nil {
		if s.Loan.Outstanding.IsNegative() {
			return domain.NewDomainError(domain.KindInvalidInput, "account %s: negative loan outstanding", s.ID)
		}
		kind := Kind(strategy.Normalize(string(s.Kind)))
		if want, ok := loanLimits[kind]; ok && !s.Loan.Limit.Equal(want) {
			return domain.NewDomainError(domain.KindInvalidInput,
				"account %s: stored loan limit %s, %s accounts have %s", s.ID, s.Loan.Limit, kind, want)
		}
		if s.Loan.Outstanding.GreaterThan(s.Loan.Limit) {
			return domain.NewDomainError(domain.KindInvalidInput,
				"account %s: loan outstanding %s exceeds limit %s", s.ID, s.Loan.Outstanding, s.Loan.Limit)
		}
	}
	if s.Portfolio != nil && (s.Portfolio.Equities.IsNegative() || s.Portfolio.Funds.IsNegative()) {
		return domain.NewDomainError(domain.KindInvalidInput, "account %s: negative position", s.ID)
	}
	return nil
}
