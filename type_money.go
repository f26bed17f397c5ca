package daftar

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The book is single-currency: amounts are whole rials. The stock go-money
// definition of IRR carries two fractional digits, so it is re-registered
// with zero fraction and a bare grouped template, which makes String()
// round-trippable through ParseAmount.
func init() {
	money.AddCurrency("IRR", "﷼", "1", ".", ",", 0)
}

// Money represents an exact amount of whole rials.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any numeric value. It is meant for literals in code
// and tests; user input goes through [ParseAmount].
func M[T int | int32 | int64 | float32 | float64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case decimal.Decimal:
		return v
	default:
		panic(fmt.Sprintf("unsupported numeric type %T", value))
	}
}

// ParseAmount parses a user-entered amount string. Grouping commas and
// whitespace are stripped first, so "1,500,000" and "1500000" are the same
// amount. It returns ErrInvalidAmount when the remainder is not a valid
// non-negative whole number.
func ParseAmount(text string) (Money, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, text)
	}
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, text)
	}
	if !value.IsInteger() {
		return Money{}, fmt.Errorf("%w: %q is not a whole amount", ErrInvalidAmount, text)
	}
	return Money{value: value}, nil
}

// String renders the amount with thousands separators and no fractional
// digits. ParseAmount(m.String()) == m for every representable amount.
func (m Money) String() string {
	cur := *money.New(0, "IRR").Currency()
	return cur.Formatter().Format(m.value.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }

// SignedString is like String but with an explicit leading sign, and "-"
// for zero. Used in running-total columns.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON implements the json.Marshaler interface, writing the bare
// decimal value.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both quoted and
// unquoted numbers decode, so hand-edited snapshots keep loading.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
