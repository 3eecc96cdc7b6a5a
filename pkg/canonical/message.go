package canonical

import (
	"strconv"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/snehendu098/mxverify/pkg/sign"
)

// MessagePrefix separates signed messages from every other kind of signed data.
// Signers and verifiers must agree on it byte for byte.
const MessagePrefix = "\x17Elrond Signed Message:\n"

// SignableMessage is an arbitrary application payload with an optional signature.
type SignableMessage struct {
	Message   []byte
	Signature sign.Signature
}

// NewSignableMessage wraps message. The signature is left empty.
func NewSignableMessage(message []byte) SignableMessage {
	return SignableMessage{Message: message}
}

func (SignableMessage) canonicalInput() {}

// CanonicalBytes returns prefix || decimal length of the message || message.
func (m SignableMessage) CanonicalBytes() []byte {
	size := strconv.Itoa(len(m.Message))
	out := make([]byte, 0, len(MessagePrefix)+len(size)+len(m.Message))
	out = append(out, MessagePrefix...)
	out = append(out, size...)
	return append(out, m.Message...)
}

// SerializeForSigning returns keccak256 of the canonical envelope.
// It never fails; the error is there to satisfy Input.
func (m SignableMessage) SerializeForSigning() ([]byte, error) {
	return ethcrypto.Keccak256(m.CanonicalBytes()), nil
}

// GetSignature returns the signature carried by the message.
func (m SignableMessage) GetSignature() sign.Signature { return m.Signature }

// WithSignature returns a copy of m carrying sig.
func (m SignableMessage) WithSignature(sig sign.Signature) SignableMessage {
	m.Signature = sig
	return m
}
