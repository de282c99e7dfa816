package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &DomainError{
		Kind:  KindInvalidAmount,
		Msg:   "amount must be positive",
		Cause: root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *DomainError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match DomainError")
	}
	if got.Kind != KindInvalidAmount {
		t.Fatalf("expected kind %s", KindInvalidAmount)
	}
}

func TestDomainErrorMatchesKindSentinel(t *testing.T) {
	err := fmt.Errorf("withdraw: %w", NewDomainError(KindInsufficientFunds, "balance %s", "10.00"))

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected errors.Is to match ErrInsufficientFunds")
	}
	if errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("did not expect ErrInvalidAmount to match")
	}
}

func TestIsKindForDomainError(t *testing.T) {
	err := &DomainError{
		Kind: KindUnknownStrategy,
		Msg:  "nope",
	}

	if !IsKind(err, KindUnknownStrategy) {
		t.Fatalf("expected IsKind to match domain error")
	}
	if IsKind(err, KindDuplicateStrategy) {
		t.Fatalf("did not expect IsKind to match another kind")
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := fmt.Errorf("load: %w", &OpError{Op: "accountstore.load", Kind: KindNotFound, Err: ErrNotFound})

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match op error")
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected KindOf=not_found, got %q", KindOf(err))
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: "bankcore.yaml", Err: errors.New("boom")}
	want := "config.load: invalid_config (path=bankcore.yaml): boom"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestKindOfUntyped(t *testing.T) {
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for untyped error")
	}
}
