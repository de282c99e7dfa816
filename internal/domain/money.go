package domain

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits Money carries.
const MoneyScale = 2

// maxMoneyDigits bounds the integer part of parsed amounts.
const maxMoneyDigits = 18

var reMoney = regexp.MustCompile(`^[+-]?(\d+)(\.\d+)?$`)

// Money is a fixed-point decimal amount with two fractional digits.
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// Zero is 0.00.
var Zero = Money{}

// NewMoney builds Money from whole units and cents, e.g. NewMoney(10, 50) = 10.50.
// The sign of cents follows units.
func NewMoney(units, cents int64) Money {
	return Money{d: decimal.NewFromInt(units*100 + cents).Shift(-MoneyScale)}
}

// MoneyFromInt builds Money from whole units.
func MoneyFromInt(units int64) Money {
	return Money{d: decimal.NewFromInt(units)}
}

// ParseMoney parses plain decimal text such as "1000", "10.5" or "-10".
// Exponent notation is rejected, as are more than two significant fractional digits
// and integer parts longer than 18 digits.
func ParseMoney(s string) (Money, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Money{}, NewDomainError(KindInvalidAmount, "amount is empty")
	}
	m := reMoney.FindStringSubmatch(in)
	if m == nil {
		return Money{}, NewDomainError(KindInvalidAmount, "amount %s is not a plain decimal", quote(in))
	}
	if len(strings.TrimLeft(m[1], "0")) > maxMoneyDigits {
		return Money{}, NewDomainError(KindInvalidAmount, "amount %s exceeds %d integer digits", quote(in), maxMoneyDigits)
	}

	d, err := decimal.NewFromString(in)
	if err != nil {
		return Money{}, &DomainError{Kind: KindInvalidAmount, Msg: "amount " + quote(in) + " is not a decimal", Cause: err}
	}
	if !d.Equal(d.Truncate(MoneyScale)) {
		return Money{}, NewDomainError(KindInvalidAmount, "amount %s has more than %d fractional digits", in, MoneyScale)
	}
	return Money{d: d}, nil
}

// MustParseMoney is ParseMoney for constants and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

// MulRate multiplies by a rate (0.02 for 2%) and rounds half away from zero to cents.
// It is the only Money operation that rounds.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{d: m.d.Mul(rate).Round(MoneyScale)}
}

func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }
func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }
func (m Money) LessThan(o Money) bool { return m.d.LessThan(o.d) }
func (m Money) LessOrEqual(o Money) bool { return m.d.LessThanOrEqual(o.d) }
func (m Money) IsPositive() bool { return m.d.IsPositive() }
func (m Money) IsNegative() bool { return m.d.IsNegative() }
func (m Money) IsZero() bool { return m.d.IsZero() }
func (m Money) Decimal() decimal.Decimal { return m.d }
func (m Money) String() string { return m.d.StringFixed(MoneyScale) }
func (m Money) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Money) UnmarshalText(b []byte) error {
	v, err := ParseMoney(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalJSON writes Money as a JSON string to keep exact digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both JSON strings and numbers.
func (m *Money) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	return m.UnmarshalText([]byte(s))
}

func quote(s string) string {
	return "\"" + s + "\""
}
