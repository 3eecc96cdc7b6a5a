package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// DefaultHRP is the human-readable prefix of MultiversX account addresses.
const DefaultHRP = "erd"

// DefaultCodec encodes and decodes addresses under DefaultHRP.
var DefaultCodec = Codec{hrp: DefaultHRP}

// Codec converts between Address values and bech32 text for one prefix.
type Codec struct {
	hrp string
}

// NewCodec creates a codec bound to hrp.
// The prefix must be 1-83 lowercase printable ASCII characters.
func NewCodec(hrp string) (Codec, error) {
	if len(hrp) == 0 || len(hrp) > 83 {
		return Codec{}, fmt.Errorf("%w: prefix length %d out of range", ErrInvalidEncoding, len(hrp))
	}
	for _, c := range hrp {
		if c < 33 || c > 126 || (c >= 'A' && c <= 'Z') {
			return Codec{}, fmt.Errorf("%w: invalid prefix character %q", ErrInvalidEncoding, c)
		}
	}
	return Codec{hrp: hrp}, nil
}

// HRP returns the human-readable prefix this codec expects.
// The zero Codec behaves like DefaultCodec.
func (c Codec) HRP() string {
	if c.hrp == "" {
		return DefaultHRP
	}
	return c.hrp
}

// Decode parses bech32 text into an Address.
func (c Codec) Decode(text string) (Address, error) {
	hrp, data, version, err := bech32.DecodeGeneric(text)
	if err != nil {
		var checksumErr bech32.ErrInvalidChecksum
		var lengthErr bech32.ErrInvalidLength
		switch {
		case errors.As(err, &checksumErr):
			return Address{}, fmt.Errorf("%w: %s", ErrChecksumMismatch, err)
		case errors.As(err, &lengthErr):
			return Address{}, fmt.Errorf("%w: %s", ErrInvalidLength, err)
		default:
			return Address{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
		}
	}
	if version != bech32.Version0 {
		return Address{}, fmt.Errorf("%w: unsupported bech32 variant", ErrInvalidEncoding)
	}
	if hrp != c.HRP() {
		return Address{}, fmt.Errorf("%w: prefix %q, want %q", ErrInvalidEncoding, hrp, c.HRP())
	}

	if len(data)*5/8 != Length {
		return Address{}, fmt.Errorf("%w: %d data characters", ErrInvalidLength, len(data))
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}
	return FromBytes(payload)
}

// Encode returns the bech32 text form of a.
func (c Codec) Encode(a Address) string {
	data, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		// Regrouping a fixed-size byte array with padding cannot fail.
		panic(fmt.Sprintf("address: regroup bits: %v", err))
	}
	text, err := bech32.Encode(c.HRP(), data)
	if err != nil {
		panic(fmt.Sprintf("address: bech32 encode: %v", err))
	}
	return text
}

// Decode parses bech32 text under DefaultHRP.
func Decode(text string) (Address, error) {
	return DefaultCodec.Decode(text)
}

// MustDecode is like Decode but panics on error. Intended for constants and tests.
func MustDecode(text string) Address {
	a, err := Decode(text)
	if err != nil {
		panic(err)
	}
	return a
}
