package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1000", "1000.00"},
		{"10.5", "10.50"},
		{" 0.01 ", "0.01"},
		{"-10", "-10.00"},
		{"1.230", "1.23"},
	}
	for _, c := range cases {
		got, err := ParseMoney(c.in)
		if err != nil {
			t.Fatalf("ParseMoney(%q) unexpected error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Errorf("ParseMoney(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseMoney_RejectsExtraDigitsAndGarbage(t *testing.T) {
	for _, in := range []string{
		"", "abc", "10.005", "1e-3", "1e3", "1E3", "1e400000000", "0x10", "1.", ".5", "1_000",
		"1234567890123456789",
	} {
		_, err := ParseMoney(in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if !IsKind(err, KindInvalidAmount) {
			t.Fatalf("expected invalid_amount for %q, got %v", in, err)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(10, 50)
	b := MoneyFromInt(3)

	if got := a.Add(b).String(); got != "13.50" {
		t.Fatalf("add: got %s", got)
	}
	if got := a.Sub(b).String(); got != "7.50" {
		t.Fatalf("sub: got %s", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Fatalf("expected negative result")
	}
	if !Zero.IsZero() || Zero.IsPositive() {
		t.Fatalf("zero value misbehaves")
	}
	if !b.LessThan(a) || !a.GreaterThan(b) || !b.LessOrEqual(b) {
		t.Fatalf("comparison misbehaves")
	}
}

func TestMoneyMulRateRoundsToCents(t *testing.T) {
	got := MustParseMoney("33.33").MulRate(decimal.RequireFromString("0.02"))
	if got.String() != "0.67" {
		t.Fatalf("expected 0.67, got %s", got)
	}

	exact := MoneyFromInt(1000).MulRate(decimal.RequireFromString("0.15"))
	if !exact.Equal(MoneyFromInt(150)) {
		t.Fatalf("expected 150.00, got %s", exact)
	}
}

func TestMoneyJSON(t *testing.T) {
	type wrap struct {
		Amount Money `json:"amount"`
	}

	b, err := json.Marshal(wrap{Amount: NewMoney(12, 5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"amount":"12.05"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var fromNumber wrap
	if err := json.Unmarshal([]byte(`{"amount":7.5}`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.Amount.String() != "7.50" {
		t.Fatalf("expected 7.50, got %s", fromNumber.Amount)
	}
}

func TestParseMoney_LongFractionOfZerosStillExact(t *testing.T) {
	got, err := ParseMoney("000000000000000000000012.5000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "12.50" {
		t.Fatalf("expected 12.50, got %s", got)
	}
}
