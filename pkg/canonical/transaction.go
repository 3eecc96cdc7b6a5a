package canonical

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/snehendu098/mxverify/pkg/address"
	"github.com/snehendu098/mxverify/pkg/sign"
)

const (
	// TxOptionHashSign asks for the keccak256 digest of the canonical JSON to be signed
	// instead of the JSON itself. Honoured from TxVersionHashSign on.
	TxOptionHashSign uint32 = 1 << 0

	// TxVersionHashSign is the first transaction version that understands TxOptionHashSign.
	TxVersionHashSign uint32 = 2
)

// Transaction is a transfer or call submitted by Sender.
type Transaction struct {
	Nonce     uint64
	Value     Amount
	Sender    address.Address
	Receiver  address.Address
	GasPrice  uint64
	GasLimit  uint64
	Data      []byte
	ChainID   string `validate:"required,printascii"`
	Version   uint32
	Options   uint32
	Signature sign.Signature
}

// plainTransaction is the JSON form of a Transaction. Field order is the
// canonical signing order and must not change.
type plainTransaction struct {
	Nonce     uint64 `json:"nonce"`
	Value     string `json:"value" validate:"required,bigint"`
	Receiver  string `json:"receiver" validate:"required"`
	Sender    string `json:"sender" validate:"required"`
	GasPrice  uint64 `json:"gasPrice"`
	GasLimit  uint64 `json:"gasLimit"`
	Data      string `json:"data,omitempty"`
	ChainID   string `json:"chainID" validate:"required,printascii"`
	Version   uint32 `json:"version"`
	Options   uint32 `json:"options,omitempty"`
	Signature string `json:"signature,omitempty"`
}

func (Transaction) canonicalInput() {}

// Validate checks the invariants every signable transaction must hold.
func (tx Transaction) Validate() error {
	if err := getValidator().Struct(tx); err != nil {
		return fmt.Errorf("%w: %s", ErrUnserializableValue, err)
	}
	return nil
}

// SerializeForSigning returns the canonical JSON of tx without its signature,
// or its keccak256 digest when the hash-sign option is active.
func (tx Transaction) SerializeForSigning() ([]byte, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	plain := tx.plain()
	plain.Signature = ""
	serialized, err := encodeJSON(plain)
	if err != nil {
		return nil, err
	}

	if tx.HashSign() {
		return ethcrypto.Keccak256(serialized), nil
	}
	return serialized, nil
}

// HashSign reports whether the signature covers the digest of the canonical JSON.
func (tx Transaction) HashSign() bool {
	return tx.Version >= TxVersionHashSign && tx.Options&TxOptionHashSign != 0
}

// GetSignature returns the signature carried by the transaction.
func (tx Transaction) GetSignature() sign.Signature { return tx.Signature }

// WithSignature returns a copy of tx carrying sig.
func (tx Transaction) WithSignature(sig sign.Signature) Transaction {
	tx.Signature = sig
	return tx
}

// VerifySender checks the transaction signature against the sender's key.
func (tx Transaction) VerifySender(opts ...sign.Option) (bool, error) {
	return sign.NewUserVerifier(tx.Sender, opts...).VerifySigned(tx)
}

func (tx Transaction) plain() plainTransaction {
	p := plainTransaction{
		Nonce:    tx.Nonce,
		Value:    tx.Value.String(),
		Receiver: tx.Receiver.Bech32(),
		Sender:   tx.Sender.Bech32(),
		GasPrice: tx.GasPrice,
		GasLimit: tx.GasLimit,
		ChainID:  tx.ChainID,
		Version:  tx.Version,
		Options:  tx.Options,
	}
	if len(tx.Data) > 0 {
		p.Data = base64.StdEncoding.EncodeToString(tx.Data)
	}
	if len(tx.Signature) > 0 {
		p.Signature = tx.Signature.String()
	}
	return p
}

// MarshalJSON encodes tx as a plain object, signature included.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	return encodeJSON(tx.plain())
}

// UnmarshalJSON decodes a plain object. Key order in the input is irrelevant.
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var p plainTransaction
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %s", ErrUnserializableValue, err)
	}
	if err := getValidator().Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrUnserializableValue, err)
	}

	value, err := ParseAmount(p.Value)
	if err != nil {
		return err
	}
	sender, err := address.Decode(p.Sender)
	if err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	receiver, err := address.Decode(p.Receiver)
	if err != nil {
		return fmt.Errorf("receiver: %w", err)
	}

	var payload []byte
	if p.Data != "" {
		if payload, err = base64.StdEncoding.DecodeString(p.Data); err != nil {
			return fmt.Errorf("%w: data: %s", ErrUnserializableValue, err)
		}
	}

	var sig sign.Signature
	if p.Signature != "" {
		if sig, err = sign.SignatureFromHex(p.Signature); err != nil {
			return err
		}
	}

	*tx = Transaction{
		Nonce:     p.Nonce,
		Value:     value,
		Sender:    sender,
		Receiver:  receiver,
		GasPrice:  p.GasPrice,
		GasLimit:  p.GasLimit,
		Data:      payload,
		ChainID:   p.ChainID,
		Version:   p.Version,
		Options:   p.Options,
		Signature: sig,
	}
	return nil
}

// ParseTransaction decodes a transaction from its plain JSON object form.
func ParseTransaction(data []byte) (Transaction, error) {
	var tx Transaction
	if err := tx.UnmarshalJSON(data); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnserializableValue, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
