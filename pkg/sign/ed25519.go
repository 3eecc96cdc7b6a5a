package sign

import (
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/snehendu098/mxverify/pkg/address"
)

// PublicKey is an Ed25519 public key whose encoding is known to be a valid curve point.
type PublicKey struct {
	key ed25519.PublicKey
}

// NewPublicKey validates b as an Ed25519 point encoding.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLength {
		return PublicKey{}, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedKey, len(b), PublicKeyLength)
	}
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", ErrMalformedKey, err)
	}
	key := make(ed25519.PublicKey, PublicKeyLength)
	copy(key, b)
	return PublicKey{key: key}, nil
}

// PublicKeyFromAddress returns the key an account address wraps.
func PublicKeyFromAddress(addr address.Address) (PublicKey, error) {
	return NewPublicKey(addr[:])
}

// Bytes returns a copy of the key encoding.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, len(p.key))
	copy(b, p.key)
	return b
}

// Address returns the account address of this key.
func (p PublicKey) Address() address.Address {
	var a address.Address
	copy(a[:], p.key)
	return a
}

// Verify checks sig over message.
// A well-formed signature that does not match yields false and a nil error.
func (p PublicKey) Verify(message []byte, sig Signature) (bool, error) {
	if len(p.key) != PublicKeyLength {
		return false, fmt.Errorf("%w: uninitialised key", ErrMalformedKey)
	}
	if err := checkSignature(sig); err != nil {
		return false, err
	}
	// The standard library evaluates the full verification equation and
	// compares encodings in one step, with no early exit on partial matches.
	return ed25519.Verify(p.key, message, sig), nil
}

func checkSignature(sig Signature) error {
	if len(sig) != SignatureLength {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedSignature, len(sig), SignatureLength)
	}
	if _, err := new(edwards25519.Point).SetBytes(sig[:32]); err != nil {
		return fmt.Errorf("%w: R: %s", ErrMalformedSignature, err)
	}
	if _, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:]); err != nil {
		return fmt.Errorf("%w: S: %s", ErrMalformedSignature, err)
	}
	return nil
}

// VerifyEd25519 checks signature over message against a raw 32-byte public key.
func VerifyEd25519(publicKey, message []byte, signature Signature) (bool, error) {
	pk, err := NewPublicKey(publicKey)
	if err != nil {
		return false, err
	}
	return pk.Verify(message, signature)
}
