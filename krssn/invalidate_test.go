package krssn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      Rule
	}{
		{"hyphen and space", "123456- 789012", RuleMismatchedDelimiters},
		{"period and hyphen", "900101.123-4567", RuleMismatchedDelimiters},
		{"all ones", "111111-1111111", RuleRepeatedDigit},
		{"all zeros", "0000000000000", RuleRepeatedDigit},
		{"leading zero group", "000000-0123456", RuleZeroGroup},
		{"sample 121356789", "121356-7890123", RuleSampleNumber},
		{"sample 120056789", "120056 7890123", RuleSampleNumber},
		{"sample 0780515200982", "078051-5200982", RuleSampleNumber},
		{"sample 0780510200982", "0780510200982", RuleSampleNumber},
		{"repeating pair is not repeated digit", "121212-1234567", RuleNone},
		{"hyphen", "900101-1234567", RuleNone},
		{"space", "900101 1234567", RuleNone},
		{"period", "900101.1234567", RuleNone},
		{"bare digits", "9001011234567", RuleNone},
		{"second group zeros", "900101-0001234", RuleNone},
		{"too short", "900101-12345", RuleDigitCount},
		{"too long", "900101-123456789", RuleDigitCount},
		{"no digits", "------", RuleDigitCount},
		{"empty", "", RuleDigitCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.candidate))
			assert.Equal(t, tt.want != RuleNone, Invalidate(tt.candidate))
		})
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	for _, c := range []string{"121356-7890123", "900101-1234567", "123456- 789012"} {
		first := Invalidate(c)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Invalidate(c), c)
		}
	}
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "none", RuleNone.String())
	assert.Equal(t, "mismatched delimiters", RuleMismatchedDelimiters.String())
	assert.Equal(t, "sample number", RuleSampleNumber.String())
	assert.Equal(t, "unknown", Rule(99).String())
}
