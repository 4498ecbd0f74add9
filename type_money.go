package ensaios

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// brl formats amounts the way reports are distributed: "R$ 1.234,56".
// The stock BRL currency in go-money has no space after the symbol, and the
// report format is a frozen wire format, so we keep our own formatter.
var brl = money.NewFormatter(2, ",", ".", "R$", "$ 1")

// Money represents a monetary value in the studio's currency (BRL).
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// ParseMoney parses a user-supplied amount. Both "150.50" and "150,50" are
// accepted since the studio staff types amounts the Brazilian way.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v}, nil
}

// String returns the report representation of the money value, e.g. "R$ 150,50".
func (m Money) String() string {
	cents := m.value.Round(2).Shift(2)
	return brl.Format(cents.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Cmp(n Money) int          { return m.value.Cmp(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// DivInt splits the amount evenly over n parts. n must be positive.
func (m Money) DivInt(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// PercentOf returns which share of total m represents, as a Percent.
// A zero total yields 0, never a division by zero.
func (m Money) PercentOf(total Money) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(100 * m.value.InexactFloat64() / total.value.InexactFloat64())
}

// AsFloat returns the amount as a float64 for crude arithmetic like averages.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// AsDecimalString returns the bare decimal form ("1234.56") used for persistence.
func (m Money) AsDecimalString() string { return m.value.String() }

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value)
}

func (m *Money) UnmarshalJSON(bytes []byte) error {
	return json.Unmarshal(bytes, &m.value)
}
