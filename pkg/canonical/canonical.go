// Package canonical renders transactions and messages into the exact bytes
// an account signs.
//
// Transactions are rendered as compact JSON with a fixed key order:
//
//	{"nonce":42,"value":"12345","receiver":"erd1…","sender":"erd1…","gasPrice":1000000000,"gasLimit":50000,"chainID":"D","version":1}
//
// "data" (base64) and "options" appear only when non-empty and non-zero.
// Messages are wrapped in a domain-separated envelope and hashed with
// keccak256, so no message can produce the bytes of a transaction.
package canonical

import (
	"errors"
	"fmt"

	"github.com/snehendu098/mxverify/pkg/sign"
)

// ErrUnserializableValue is returned when an input cannot be rendered canonically.
var ErrUnserializableValue = errors.New("unserializable value")

// Input is a value that can be serialized for signing.
// It is implemented only by Transaction and SignableMessage.
type Input interface {
	sign.Signable
	canonicalInput()
}

var (
	_ Input = Transaction{}
	_ Input = SignableMessage{}
)

// SerializeForSigning returns the bytes a signature over in must cover.
func SerializeForSigning(in Input) ([]byte, error) {
	switch v := in.(type) {
	case Transaction:
		return v.SerializeForSigning()
	case *Transaction:
		if v == nil {
			return nil, fmt.Errorf("%w: nil transaction", ErrUnserializableValue)
		}
		return v.SerializeForSigning()
	case SignableMessage:
		return v.SerializeForSigning()
	case *SignableMessage:
		if v == nil {
			return nil, fmt.Errorf("%w: nil message", ErrUnserializableValue)
		}
		return v.SerializeForSigning()
	default:
		return nil, fmt.Errorf("%w: unsupported input %T", ErrUnserializableValue, in)
	}
}
