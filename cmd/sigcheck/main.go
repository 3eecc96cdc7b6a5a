// Command sigcheck verifies that a transaction or message was signed by an account.
//
// It is configured entirely through the environment (or a .env file):
//
//	SIGCHECK_ADDRESS=erd1... SIGCHECK_TX_FILE=tx.json sigcheck
//	SIGCHECK_ADDRESS=erd1... SIGCHECK_MESSAGE=hello SIGCHECK_SIGNATURE=561b... sigcheck
//
// The exit status is 0 for a valid signature, 1 for an invalid one and 2 when
// verification could not be attempted.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/snehendu098/mxverify/pkg/canonical"
	"github.com/snehendu098/mxverify/pkg/log"
	"github.com/snehendu098/mxverify/pkg/sign"
)

func main() {
	conf, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(2)
	}

	logger := log.NewZapLogger(conf.Log).WithName("sigcheck")

	ok, err := run(conf, logger, os.Stdout)
	if err != nil {
		logger.Error("verification not attempted", "err", err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

func run(conf *Config, logger log.Logger, out io.Writer) (bool, error) {
	verifier, err := sign.UserVerifierFromBech32(conf.Address, sign.WithLogger(logger))
	if err != nil {
		return false, fmt.Errorf("invalid address: %w", err)
	}

	input, err := loadInput(conf)
	if err != nil {
		return false, err
	}

	ok, err := verifier.VerifySigned(input)
	if err != nil {
		return false, err
	}

	logger.Info("signature checked", "address", conf.Address, "valid", ok)
	if ok {
		fmt.Fprintln(out, "valid")
	} else {
		fmt.Fprintln(out, "invalid")
	}
	return ok, nil
}

func loadInput(conf *Config) (canonical.Input, error) {
	var sig sign.Signature
	if conf.Signature != "" {
		var err error
		if sig, err = sign.SignatureFromHex(conf.Signature); err != nil {
			return nil, err
		}
	}

	if conf.TxFile == "" {
		return canonical.NewSignableMessage([]byte(conf.Message)).WithSignature(sig), nil
	}

	data, err := os.ReadFile(conf.TxFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction: %w", err)
	}
	tx, err := canonical.ParseTransaction(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}
	if sig != nil {
		tx = tx.WithSignature(sig)
	}
	return tx, nil
}
