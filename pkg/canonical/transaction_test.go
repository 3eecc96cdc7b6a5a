package canonical

import (
	"crypto/ed25519"
	"encoding/hex"
	"math/big"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehendu098/mxverify/pkg/address"
	"github.com/snehendu098/mxverify/pkg/sign"
)

const (
	aliceBech32 = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	bobBech32   = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"

	txSignatureHex  = "3c5eb2d1c9b3ab2f578541e62dcfa5008976d11f85644a48884a8a6c4d2980fa14954ab2924d6e67c051562488096d2e79cd3c0378edf234a52e648e672d1b0a"
	msgSignatureHex = "561bc58f1dc6b10de208b2d2c22c9a474ea5e8cabb59c3d3ce06bbda21cc46454aa71a85d5a60442bd7784effa2e062fcb8fb421c521f898abf7f5ec165e5d0f"
)

var (
	alice = address.MustDecode(aliceBech32)
	bob   = address.MustDecode(bobBech32)
)

func mustSignature(t *testing.T, s string) sign.Signature {
	t.Helper()
	sig, err := sign.SignatureFromHex(s)
	require.NoError(t, err)
	return sig
}

func aliceToBob() Transaction {
	return Transaction{
		Nonce:    42,
		Value:    MustParseAmount("12345"),
		Sender:   alice,
		Receiver: bob,
		GasPrice: 1000000000,
		GasLimit: 50000,
		ChainID:  "D",
		Version:  1,
	}
}

func TestTransactionSerializeForSigning(t *testing.T) {
	t.Run("Field order and formatting", func(t *testing.T) {
		serialized, err := aliceToBob().SerializeForSigning()
		require.NoError(t, err)

		expected := `{"nonce":42,"value":"12345","receiver":"` + bobBech32 + `","sender":"` + aliceBech32 +
			`","gasPrice":1000000000,"gasLimit":50000,"chainID":"D","version":1}`
		assert.Equal(t, expected, string(serialized))
	})

	t.Run("Data and options", func(t *testing.T) {
		tx := aliceToBob()
		tx.Data = []byte("hello")
		tx.Options = 2

		serialized, err := tx.SerializeForSigning()
		require.NoError(t, err)

		expected := `{"nonce":42,"value":"12345","receiver":"` + bobBech32 + `","sender":"` + aliceBech32 +
			`","gasPrice":1000000000,"gasLimit":50000,"data":"aGVsbG8=","chainID":"D","version":1,"options":2}`
		assert.Equal(t, expected, string(serialized))
	})

	t.Run("Empty data is omitted", func(t *testing.T) {
		withEmpty := aliceToBob()
		withEmpty.Data = []byte{}

		a, err := withEmpty.SerializeForSigning()
		require.NoError(t, err)
		b, err := aliceToBob().SerializeForSigning()
		require.NoError(t, err)
		assert.Equal(t, b, a)
	})

	t.Run("No HTML escaping", func(t *testing.T) {
		tx := aliceToBob()
		tx.ChainID = "<&>"

		serialized, err := tx.SerializeForSigning()
		require.NoError(t, err)
		assert.Contains(t, string(serialized), `"chainID":"<&>"`)
	})

	t.Run("Chain ID must be printable ASCII", func(t *testing.T) {
		for _, chainID := range []string{"\xff", "\xfe", "D\n", "\x00", "\u2028", "é"} {
			tx := aliceToBob()
			tx.ChainID = chainID

			_, err := tx.SerializeForSigning()
			assert.ErrorIs(t, err, ErrUnserializableValue, "%q", chainID)
		}
	})

	t.Run("Signature is excluded", func(t *testing.T) {
		unsigned, err := aliceToBob().SerializeForSigning()
		require.NoError(t, err)

		signed, err := aliceToBob().WithSignature(mustSignature(t, txSignatureHex)).SerializeForSigning()
		require.NoError(t, err)

		other, err := aliceToBob().WithSignature(sign.Signature{0x01}).SerializeForSigning()
		require.NoError(t, err)

		assert.Equal(t, unsigned, signed)
		assert.Equal(t, unsigned, other)
	})

	t.Run("Any field change alters the bytes", func(t *testing.T) {
		base, err := aliceToBob().SerializeForSigning()
		require.NoError(t, err)

		mutations := map[string]func(*Transaction){
			"nonce":    func(tx *Transaction) { tx.Nonce++ },
			"value":    func(tx *Transaction) { tx.Value = MustParseAmount("12346") },
			"sender":   func(tx *Transaction) { tx.Sender = bob },
			"receiver": func(tx *Transaction) { tx.Receiver = alice },
			"gasPrice": func(tx *Transaction) { tx.GasPrice++ },
			"gasLimit": func(tx *Transaction) { tx.GasLimit++ },
			"data":     func(tx *Transaction) { tx.Data = []byte{0} },
			"chainID":  func(tx *Transaction) { tx.ChainID = "1" },
			"version":  func(tx *Transaction) { tx.Version = 2 },
			"options":  func(tx *Transaction) { tx.Options = 2 },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				tx := aliceToBob()
				mutate(&tx)
				serialized, err := tx.SerializeForSigning()
				require.NoError(t, err)
				assert.NotEqual(t, base, serialized)
			})
		}
	})

	t.Run("Hash signing", func(t *testing.T) {
		tx := aliceToBob()
		tx.Version = 2
		tx.Options = TxOptionHashSign
		assert.True(t, tx.HashSign())

		digest, err := tx.SerializeForSigning()
		require.NoError(t, err)
		require.Len(t, digest, 32)

		plainJSON := `{"nonce":42,"value":"12345","receiver":"` + bobBech32 + `","sender":"` + aliceBech32 +
			`","gasPrice":1000000000,"gasLimit":50000,"chainID":"D","version":2,"options":1}`
		assert.Equal(t, ethcrypto.Keccak256([]byte(plainJSON)), digest)

		tx.Version = 1
		assert.False(t, tx.HashSign())
		serialized, err := tx.SerializeForSigning()
		require.NoError(t, err)
		assert.Contains(t, string(serialized), `"options":1}`)
	})

	t.Run("Missing chain ID", func(t *testing.T) {
		tx := aliceToBob()
		tx.ChainID = ""

		_, err := tx.SerializeForSigning()
		assert.ErrorIs(t, err, ErrUnserializableValue)
	})
}

func TestTransactionVerifySender(t *testing.T) {
	t.Run("Known vector", func(t *testing.T) {
		tx := aliceToBob().WithSignature(mustSignature(t, txSignatureHex))

		ok, err := tx.VerifySender()
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = sign.NewUserVerifier(bob).VerifySigned(tx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Generated key with data and hash signing", func(t *testing.T) {
		seed := make([]byte, ed25519.SeedSize)
		seed[0] = 0x2a
		priv := ed25519.NewKeyFromSeed(seed)
		sender, err := address.FromBytes(priv.Public().(ed25519.PublicKey))
		require.NoError(t, err)

		tx := Transaction{
			Nonce:    7,
			Value:    MustParseAmount("1000000000000000000"),
			Sender:   sender,
			Receiver: bob,
			GasPrice: 1000000000,
			GasLimit: 70000,
			Data:     []byte("ESDTTransfer@54455354@01"),
			ChainID:  "T",
			Version:  2,
			Options:  TxOptionHashSign,
		}
		serialized, err := SerializeForSigning(tx)
		require.NoError(t, err)
		tx.Signature = ed25519.Sign(priv, serialized)

		ok, err := tx.VerifySender()
		require.NoError(t, err)
		assert.True(t, ok)

		tx.Nonce++
		ok, err = tx.VerifySender()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Malformed signature", func(t *testing.T) {
		tx := aliceToBob().WithSignature(mustSignature(t, txSignatureHex)[:63])

		ok, err := tx.VerifySender()
		assert.ErrorIs(t, err, sign.ErrMalformedSignature)
		assert.False(t, ok)
	})
}

func TestParseTransaction(t *testing.T) {
	t.Run("Plain object in any key order", func(t *testing.T) {
		plain := `{
			"signature": "` + txSignatureHex + `",
			"version": 1,
			"chainID": "D",
			"gasLimit": 50000,
			"gasPrice": 1000000000,
			"receiver": "` + bobBech32 + `",
			"sender": "` + aliceBech32 + `",
			"value": "0012345",
			"nonce": 42
		}`

		tx, err := ParseTransaction([]byte(plain))
		require.NoError(t, err)

		expected, err := aliceToBob().SerializeForSigning()
		require.NoError(t, err)
		serialized, err := tx.SerializeForSigning()
		require.NoError(t, err)
		assert.Equal(t, expected, serialized)
		assert.Equal(t, txSignatureHex, hex.EncodeToString(tx.Signature))

		ok, err := tx.VerifySender()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Round trip through JSON", func(t *testing.T) {
		original := aliceToBob()
		original.Data = []byte{0xde, 0xad}
		original.Signature = mustSignature(t, txSignatureHex)

		data, err := original.MarshalJSON()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"signature":"`+txSignatureHex+`"`)

		parsed, err := ParseTransaction(data)
		require.NoError(t, err)
		assert.Equal(t, original.Data, parsed.Data)
		assert.True(t, original.Value.Equal(parsed.Value))
		assert.Equal(t, original.Signature, parsed.Signature)
	})

	t.Run("Errors", func(t *testing.T) {
		base := func(field string) string {
			fields := map[string]string{
				"nonce":    `"nonce":42`,
				"value":    `"value":"12345"`,
				"receiver": `"receiver":"` + bobBech32 + `"`,
				"sender":   `"sender":"` + aliceBech32 + `"`,
				"chainID":  `"chainID":"D"`,
			}
			out := "{"
			first := true
			for _, k := range []string{"nonce", "value", "receiver", "sender", "chainID"} {
				v := fields[k]
				if k == field {
					continue
				}
				if !first {
					out += ","
				}
				out += v
				first = false
			}
			return out
		}

		tests := []struct {
			name     string
			json     string
			expected error
		}{
			{"Negative value", base("value") + `,"value":"-1"}`, ErrUnserializableValue},
			{"Scientific value", base("value") + `,"value":"1e3"}`, ErrUnserializableValue},
			{"Numeric value", base("value") + `,"value":12345}`, ErrUnserializableValue},
			{"Missing value", base("value") + `}`, ErrUnserializableValue},
			{"Negative nonce", base("nonce") + `,"nonce":-1}`, ErrUnserializableValue},
			{"Fractional nonce", base("nonce") + `,"nonce":1.5}`, ErrUnserializableValue},
			{"Missing chain ID", base("chainID") + `}`, ErrUnserializableValue},
			{"Control character in chain ID", base("chainID") + `,"chainID":"D\u0007"}`, ErrUnserializableValue},
			{"Non-ASCII chain ID", base("chainID") + `,"chainID":"\u00e9"}`, ErrUnserializableValue},
			{"Bad sender checksum", base("sender") + `,"sender":"erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6tq"}`, address.ErrChecksumMismatch},
			{"Bad data", base("") + `,"data":"***"}`, ErrUnserializableValue},
			{"Bad signature", base("") + `,"signature":"xyz"}`, sign.ErrMalformedSignature},
			{"Not JSON", `{`, ErrUnserializableValue},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := ParseTransaction([]byte(test.json))
				assert.ErrorIs(t, err, test.expected)
			})
		}
	})
}

func TestAmount(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		tests := []struct {
			in       string
			expected string
		}{
			{"0", "0"},
			{"000", "0"},
			{"12345", "12345"},
			{"0012345", "12345"},
			{"340282366920938463463374607431768211456", "340282366920938463463374607431768211456"},
		}

		for _, test := range tests {
			a, err := ParseAmount(test.in)
			require.NoError(t, err, test.in)
			assert.Equal(t, test.expected, a.String())
		}
	})

	t.Run("Reject", func(t *testing.T) {
		for _, in := range []string{"", "-1", "+1", "1.0", "1e18", " 1", "0x10", "1_000"} {
			_, err := ParseAmount(in)
			assert.ErrorIs(t, err, ErrUnserializableValue, in)
		}
	})

	t.Run("From big.Int", func(t *testing.T) {
		src := big.NewInt(500)
		a, err := NewAmount(src)
		require.NoError(t, err)
		src.SetInt64(1)
		assert.Equal(t, "500", a.String())
		assert.True(t, a.Decimal().IsInteger())
		assert.Equal(t, int64(500), a.Decimal().IntPart())

		_, err = NewAmount(big.NewInt(-5))
		assert.ErrorIs(t, err, ErrUnserializableValue)

		zero, err := NewAmount(nil)
		require.NoError(t, err)
		assert.Equal(t, "0", zero.String())
		assert.Equal(t, int64(0), zero.BigInt().Int64())
	})

	t.Run("Text", func(t *testing.T) {
		var a Amount
		require.NoError(t, a.UnmarshalText([]byte("42")))
		text, err := a.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "42", string(text))
		assert.Error(t, a.UnmarshalText([]byte("-42")))
	})
}
