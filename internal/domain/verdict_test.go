package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateHash(t *testing.T) {
	a := CandidateHash("KR_SSN", "900101-1234567")
	b := CandidateHash("KR_SSN", "900101-1234567")
	c := CandidateHash("ETH_WALLET", "900101-1234567")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "900101")
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError{Resource: "entity FOO"}
	assert.Equal(t, "entity FOO not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "not found", ErrNotFound.Error())
}
