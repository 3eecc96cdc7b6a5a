// Package address converts MultiversX-style account identifiers between their
// raw 32-byte public key form and the checksummed bech32 text form.
//
// An account address is the Ed25519 public key of the account, so the same
// 32 bytes are both the identity and the verification key. The text form is
// "<hrp>1<data><checksum>", where hrp is a fixed human-readable prefix ("erd"
// on MultiversX networks) and the checksum is the BIP-173 bech32 checksum.
//
// Usage
//
//	addr, err := address.Decode("erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(addr.Hex()) // 0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1
//
// Decoding failures are reported with one of ErrInvalidEncoding,
// ErrChecksumMismatch or ErrInvalidLength and can be matched with errors.Is.
package address
