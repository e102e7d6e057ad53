package ethereum

import (
	"github.com/totegamma/recognizer"
)

type Option func(*Validator)

// WithHasher replaces the Keccak-256 implementation.
func WithHasher(h Hasher) Option {
	return func(v *Validator) {
		if h != nil {
			v.hasher = h
		}
	}
}

// WithStrictChecksum rejects mixed-case candidates whose casing is not a valid checksum.
func WithStrictChecksum() Option {
	return func(v *Validator) {
		v.strict = true
	}
}

type Validator struct {
	hasher Hasher
	strict bool
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{hasher: defaultHasher}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Entity() string {
	return recognizer.EntityEthWallet
}

func (v *Validator) Mode() recognizer.Mode {
	return recognizer.ModeValidate
}

func (v *Validator) Check(candidate string) bool {
	if isHexAddress(candidate) {
		if v.strict && isMixedCase(candidate) {
			return isChecksumAddress(v.hasher, candidate)
		}
		return true
	}
	return isChecksumAddress(v.hasher, candidate)
}

// DefaultDefinition returns the ETH_WALLET recognizer metadata.
func DefaultDefinition() recognizer.Definition {
	return recognizer.Definition{
		Entity:   recognizer.EntityEthWallet,
		Language: "en",
		Patterns: []*recognizer.Pattern{
			recognizer.NewPattern("Crypto (Medium)", `^0x[a-fA-F0-9]{40}$`, 0.5),
		},
		Context: []string{"wallet", "eth", "ethereum"},
	}
}
