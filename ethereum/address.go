// Package ethereum validates Ethereum account address candidates,
// including the mixed-case (EIP-55) checksum encoding.
package ethereum

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/totegamma/recognizer"
)

const AddressLength = 40

var ErrInvalidAddress = errors.New("invalid ethereum address")

// Hasher computes a 32 byte Keccak-256 digest.
type Hasher func(data ...[]byte) []byte

var defaultHasher Hasher = crypto.Keccak256

// IsValidAddress accepts a candidate of 40 hex characters in any case,
// or one that carries a correct checksum casing.
func IsValidAddress(candidate string) bool {
	return isHexAddress(candidate) || IsChecksumAddress(candidate)
}

// IsChecksumAddress reports whether the letter casing of candidate
// matches the Keccak-256 checksum of its lowercase form.
func IsChecksumAddress(candidate string) bool {
	return isChecksumAddress(defaultHasher, candidate)
}

// ToChecksumAddress renders the checksummed form of candidate, without prefix.
func ToChecksumAddress(candidate string) (string, error) {
	return toChecksumAddress(defaultHasher, candidate)
}

func isHexAddress(candidate string) bool {
	address := recognizer.StripHexPrefix(candidate)
	return len(address) == AddressLength && recognizer.IsHex(address)
}

func checksumDigest(hasher Hasher, address string) string {
	return hex.EncodeToString(hasher([]byte(strings.ToLower(address))))
}

func isChecksumAddress(hasher Hasher, candidate string) bool {
	address := recognizer.StripHexPrefix(candidate)
	if len(address) != AddressLength || !recognizer.IsHex(address) {
		return false
	}

	digest := checksumDigest(hasher, address)
	if len(digest) < AddressLength {
		return false
	}

	for i := 0; i < AddressLength; i++ {
		c := address[i]
		if c <= '9' {
			continue
		}
		upper := c >= 'A' && c <= 'F'
		if recognizer.HexValue(digest[i]) > 7 {
			if !upper {
				return false
			}
		} else if upper {
			return false
		}
	}
	return true
}

func toChecksumAddress(hasher Hasher, candidate string) (string, error) {
	address := recognizer.StripHexPrefix(candidate)
	if len(address) != AddressLength || !recognizer.IsHex(address) {
		return "", errors.Wrapf(ErrInvalidAddress, "%q", candidate)
	}

	lower := strings.ToLower(address)
	digest := checksumDigest(hasher, lower)
	if len(digest) < AddressLength {
		return "", errors.Wrap(ErrInvalidAddress, "short digest")
	}

	out := []byte(lower)
	for i := range out {
		if out[i] > '9' && recognizer.HexValue(digest[i]) > 7 {
			out[i] -= 'a' - 'A'
		}
	}
	return string(out), nil
}

// isMixedCase reports whether address contains both lower and upper hex letters.
func isMixedCase(address string) bool {
	var lower, upper bool
	for i := 0; i < len(address); i++ {
		switch c := address[i]; {
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'A' && c <= 'F':
			upper = true
		}
	}
	return lower && upper
}
