package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidConfig         = errors.New("invalid config")
	ErrExecution             = errors.New("execution error")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrUnknownStrategy       = errors.New("unknown strategy")
	ErrDuplicateStrategy     = errors.New("duplicate strategy name")
	ErrLoanLimitExceeded     = errors.New("loan limit exceeded")
	ErrBonusNotDue           = errors.New("bonus not due")
	ErrUnsupportedCapability = errors.New("unsupported capability")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound              ErrorKind = "not_found"
	KindInvalidConfig         ErrorKind = "invalid_config"
	KindExecution             ErrorKind = "execution"
	KindInvalidInput          ErrorKind = "invalid_input"
	KindInvalidAmount         ErrorKind = "invalid_amount"
	KindInsufficientFunds     ErrorKind = "insufficient_funds"
	KindUnknownStrategy       ErrorKind = "unknown_strategy"
	KindDuplicateStrategy     ErrorKind = "duplicate_strategy_name"
	KindLoanLimitExceeded     ErrorKind = "loan_limit_exceeded"
	KindBonusNotDue           ErrorKind = "bonus_not_due"
	KindUnsupportedCapability ErrorKind = "unsupported_capability"
)

var kindSentinels = map[ErrorKind]error{
	KindNotFound:              ErrNotFound,
	KindInvalidConfig:         ErrInvalidConfig,
	KindExecution:             ErrExecution,
	KindInvalidInput:          ErrInvalidInput,
	KindInvalidAmount:         ErrInvalidAmount,
	KindInsufficientFunds:     ErrInsufficientFunds,
	KindUnknownStrategy:       ErrUnknownStrategy,
	KindDuplicateStrategy:     ErrDuplicateStrategy,
	KindLoanLimitExceeded:     ErrLoanLimitExceeded,
	KindBonusNotDue:           ErrBonusNotDue,
	KindUnsupportedCapability: ErrUnsupportedCapability,
}

// OpError wraps an underlying error with operation context and a kind.
// Adapters (store, config, notifier) return it.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DomainError is a typed rejection produced by the core (accounts, registries,
// processors). It matches the kind's sentinel with errors.Is.
type DomainError struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

// NewDomainError builds a DomainError with a formatted message.
func NewDomainError(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches the sentinel registered for the error kind.
func (e *DomainError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if errors.As(err, &de) && de.Kind == kind {
		return true
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the first kind found in the error chain, or "" when err is untyped.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
