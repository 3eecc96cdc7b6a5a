package sign

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// PublicKeyLength is the size of an Ed25519 public key.
	PublicKeyLength = 32
	// SignatureLength is the size of an Ed25519 signature.
	SignatureLength = 64
)

var (
	// ErrMalformedKey is returned when a public key is not a valid curve point.
	ErrMalformedKey = errors.New("malformed public key")
	// ErrMalformedSignature is returned when a signature has the wrong length
	// or does not encode a valid point and scalar.
	ErrMalformedSignature = errors.New("malformed signature")
)

// Signature is a raw signature as produced by the account key.
type Signature []byte

// Type represents the signature scheme, detected from the signature layout.
type Type uint8

const (
	TypeEd25519 Type = iota
	TypeUnknown Type = 255
)

// String returns the string representation of the scheme.
func (t Type) String() string {
	switch t {
	case TypeEd25519:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

// Type returns the signature scheme based on the signature length.
func (s Signature) Type() Type {
	if len(s) == SignatureLength {
		return TypeEd25519
	}
	return TypeUnknown
}

// SignatureFromHex decodes a hex signature. The 0x prefix is optional.
func SignatureFromHex(s string) (Signature, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSignature, err)
	}
	return Signature(b), nil
}

// String returns the signature as lowercase hex without a prefix,
// the form MultiversX APIs exchange.
func (s Signature) String() string {
	return hex.EncodeToString(s)
}

// MarshalJSON encodes the signature as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	if hexStr == "" {
		*s = nil
		return nil
	}
	decoded, err := SignatureFromHex(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
