// Package sign verifies Ed25519 signatures made by MultiversX-style accounts.
//
// The package never handles private keys. It answers one question: was this
// signature produced over these bytes by the key behind this address?
//
// The main types are:
//
//   - Signature: opaque 64-byte signature with a hex text form
//   - PublicKey: an Ed25519 key whose curve point has been validated
//   - UserVerifier: an immutable facade bound to one account address
//
// # Outcomes
//
// Verification distinguishes "could not attempt" from "attempted and failed":
//
//   - ErrMalformedKey or ErrMalformedSignature: the inputs have the wrong shape
//     or do not encode valid curve points and scalars
//   - false, nil: well-formed inputs that do not satisfy the verification equation
//   - true, nil: the signature is valid
//
// Usage
//
//	addr, err := address.Decode("erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	verifier := sign.NewUserVerifier(addr)
//	ok, err := verifier.Verify(serialized, signature)
//	if err != nil {
//	    log.Fatal(err) // malformed input
//	}
//	fmt.Println("Is signature of Alice?", ok)
//
// A UserVerifier holds no mutable state and may be shared between goroutines.
package sign
