package canonical

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative arbitrary-precision integer, such as a transfer value.
// The zero Amount is 0.
type Amount struct {
	d decimal.Decimal
}

// ParseAmount parses a base-10 string of digits.
// Signs, whitespace, exponents and fractional parts are rejected; leading zeros are dropped.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty amount", ErrUnserializableValue)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Amount{}, fmt.Errorf("%w: amount %q is not a non-negative decimal integer", ErrUnserializableValue, s)
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: amount %q: %s", ErrUnserializableValue, s, err)
	}
	return Amount{d: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmount copies v into an Amount. Negative values are rejected.
func NewAmount(v *big.Int) (Amount, error) {
	if v == nil {
		return Amount{}, nil
	}
	if v.Sign() < 0 {
		return Amount{}, fmt.Errorf("%w: negative amount %s", ErrUnserializableValue, v)
	}
	return Amount{d: decimal.NewFromBigInt(v, 0)}, nil
}

// BigInt returns a copy of the amount.
func (a Amount) BigInt() *big.Int {
	return a.d.BigInt()
}

// Decimal returns the amount as a decimal.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String returns the canonical decimal form.
func (a Amount) String() string {
	return a.d.String()
}

// Equal reports whether both amounts hold the same value.
func (a Amount) Equal(other Amount) bool {
	return a.d.Equal(other.d)
}

// MarshalText encodes the amount as its decimal string.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a decimal string amount.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
