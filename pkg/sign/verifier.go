package sign

import (
	"errors"
	"fmt"

	"github.com/snehendu098/mxverify/pkg/address"
	"github.com/snehendu098/mxverify/pkg/log"
)

// Signable is implemented by inputs that know their own signing bytes and carry a signature.
type Signable interface {
	SerializeForSigning() ([]byte, error)
	GetSignature() Signature
}

// Option configures a UserVerifier.
type Option func(*UserVerifier)

// WithLogger sets the logger used to report malformed inputs.
func WithLogger(logger log.Logger) Option {
	return func(v *UserVerifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithMetrics makes the verifier count outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(v *UserVerifier) { v.metrics = m }
}

// UserVerifier checks signatures against the key of a single account.
// It is immutable after construction.
type UserVerifier struct {
	addr address.Address
	// key is decoded once; keyErr is returned by every Verify call when the
	// address bytes are not a valid curve point.
	key     PublicKey
	keyErr  error
	logger  log.Logger
	metrics *Metrics
}

// NewUserVerifier binds a verifier to addr.
func NewUserVerifier(addr address.Address, opts ...Option) *UserVerifier {
	v := &UserVerifier{
		addr:   addr,
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithName("verifier").WithKV("address", addr.Bech32())
	v.key, v.keyErr = PublicKeyFromAddress(addr)
	return v
}

// UserVerifierFromBech32 decodes text and binds a verifier to the resulting address.
func UserVerifierFromBech32(text string, opts ...Option) (*UserVerifier, error) {
	addr, err := address.Decode(text)
	if err != nil {
		return nil, err
	}
	return NewUserVerifier(addr, opts...), nil
}

// Address returns the account this verifier is bound to.
func (v *UserVerifier) Address() address.Address { return v.addr }

// Verify reports whether signature was produced over message by the bound account.
func (v *UserVerifier) Verify(message []byte, signature Signature) (bool, error) {
	if v.keyErr != nil {
		v.observe(outcomeMalformed)
		v.logger.Debug("cannot verify with malformed key", "err", v.keyErr)
		return false, v.keyErr
	}

	ok, err := v.key.Verify(message, signature)
	if err != nil {
		v.observe(outcomeMalformed)
		v.logger.Debug("cannot verify malformed signature", "err", err, "length", len(signature))
		return false, err
	}

	if ok {
		v.observe(outcomeValid)
	} else {
		v.observe(outcomeInvalid)
	}
	v.logger.Debug("signature checked", "valid", ok)
	return ok, nil
}

// VerifySigned serializes s and checks the signature it carries.
func (v *UserVerifier) VerifySigned(s Signable) (bool, error) {
	if s == nil {
		return false, errors.New("nothing to verify")
	}
	message, err := s.SerializeForSigning()
	if err != nil {
		return false, fmt.Errorf("failed to serialize for signing: %w", err)
	}
	return v.Verify(message, s.GetSignature())
}

func (v *UserVerifier) observe(outcome string) {
	if v.metrics != nil {
		v.metrics.Verifications.WithLabelValues(outcome).Inc()
	}
}
