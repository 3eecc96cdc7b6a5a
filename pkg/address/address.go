package address

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Length is the size in bytes of an account public key.
const Length = 32

var (
	// ErrInvalidEncoding is returned for text that is not a bech32 string with the expected prefix.
	ErrInvalidEncoding = errors.New("invalid address encoding")
	// ErrChecksumMismatch is returned when the bech32 checksum does not match the payload.
	ErrChecksumMismatch = errors.New("address checksum mismatch")
	// ErrInvalidLength is returned when the payload is not exactly Length bytes.
	ErrInvalidLength = errors.New("invalid address length")
)

// Address is the raw public key of an account.
// It is a value type; copies never share storage.
type Address [Length]byte

// FromBytes wraps b as an Address. It fails unless b is exactly Length bytes.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Length {
		return a, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Length)
	}
	copy(a[:], b)
	return a, nil
}

// FromHex wraps a hex-encoded public key as an Address.
func FromHex(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}
	return FromBytes(b)
}

// Bytes returns a copy of the public key bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// Hex returns the public key as lowercase hex without a prefix.
func (a Address) Hex() string { return hex.EncodeToString(a[:]) }

// Bech32 returns the text form under the default prefix.
func (a Address) Bech32() string { return DefaultCodec.Encode(a) }

func (a Address) String() string { return a.Bech32() }

// IsZero reports whether every byte of the key is zero.
func (a Address) IsZero() bool { return a == Address{} }

// Equals reports whether both addresses wrap the same key.
func (a Address) Equals(other Address) bool { return a == other }

// MarshalText encodes the address in bech32 form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Bech32()), nil
}

// UnmarshalText decodes a bech32 address under the default prefix.
func (a *Address) UnmarshalText(text []byte) error {
	decoded, err := DefaultCodec.Decode(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
