package krssn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/recognizer"
)

func TestValidatorDefaults(t *testing.T) {
	v := NewValidator()

	assert.Equal(t, recognizer.EntityKrSsn, v.Entity())
	assert.Equal(t, recognizer.ModeInvalidate, v.Mode())

	assert.True(t, v.Check("111111-1111111"))
	assert.False(t, v.Check("900101-1234567"))

	verdict := recognizer.Evaluate(v, "900101-1234567")
	assert.False(t, verdict.Result)
	assert.True(t, verdict.Accepted())
}

func TestValidatorWithSampleNumbers(t *testing.T) {
	v := NewValidator(WithSampleNumbers("900101"))

	assert.Equal(t, RuleSampleNumber, v.Reason("900101-1234567"))
	assert.Equal(t, RuleNone, v.Reason("121356-7890123"))

	// package defaults are untouched
	assert.Equal(t, RuleSampleNumber, Reason("121356-7890123"))
}

func TestValidatorWithZeroGroups(t *testing.T) {
	v := NewValidator(WithZeroGroups(
		ZeroGroup{Start: 0, End: 3, Zeros: "000"},
		ZeroGroup{Start: 6, End: 9, Zeros: "000"},
	))

	assert.Equal(t, RuleZeroGroup, v.Reason("900101-0001234"))
	assert.Equal(t, RuleZeroGroup, v.Reason("000101-1234567"))
	assert.Equal(t, RuleNone, Reason("000101-1234567"))

	// out of range bounds never match
	v = NewValidator(WithZeroGroups(ZeroGroup{Start: 10, End: 20, Zeros: "000"}))
	assert.Equal(t, RuleNone, v.Reason("900101-1234000"))
}

func TestDefaultDefinition(t *testing.T) {
	def := DefaultDefinition()
	assert.Equal(t, recognizer.EntityKrSsn, def.Entity)
	assert.Len(t, def.Patterns, 3)
	assert.Contains(t, def.Context, "주민등록번호")

	p, ok := def.MatchPattern("900101-1234567")
	assert.True(t, ok)
	assert.Equal(t, "SSN1 (very weak)", p.Name)

	p, ok = def.MatchPattern("9001011234567")
	assert.True(t, ok)
	assert.Equal(t, "SSN2 (very weak)", p.Name)

	_, ok = def.MatchPattern("900101-123456")
	assert.False(t, ok)
}
