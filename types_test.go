package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	mode   Mode
	result bool
}

func (s stubValidator) Entity() string    { return "STUB" }
func (s stubValidator) Mode() Mode        { return s.mode }
func (s stubValidator) Check(string) bool { return s.result }

func TestVerdictAccepted(t *testing.T) {
	assert.True(t, Evaluate(stubValidator{ModeValidate, true}, "x").Accepted())
	assert.False(t, Evaluate(stubValidator{ModeValidate, false}, "x").Accepted())
	assert.False(t, Evaluate(stubValidator{ModeInvalidate, true}, "x").Accepted())
	assert.True(t, Evaluate(stubValidator{ModeInvalidate, false}, "x").Accepted())

	v := Evaluate(stubValidator{ModeInvalidate, true}, "x")
	assert.Equal(t, "STUB", v.Entity)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "validate", ModeValidate.String())
	assert.Equal(t, "invalidate", ModeInvalidate.String())
	assert.Equal(t, "unknown", Mode(7).String())
}

func TestPatternMatches(t *testing.T) {
	p := NewPattern("six-seven", `\d{6}-\d{7}`, 0.1)
	assert.True(t, p.Matches("900101-1234567"))
	assert.False(t, p.Matches("x900101-1234567"))

	broken := NewPattern("broken", `(`, 0.1)
	assert.False(t, broken.Matches("("))
}
