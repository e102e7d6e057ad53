// Package krssn checks Korean resident registration number candidates
// against a fixed set of disqualifying structural rules.
//
// Passing every rule is not proof of validity; it only means the
// candidate was not disqualified.
package krssn

import (
	"strings"

	"github.com/totegamma/recognizer"
)

const (
	Delimiters  = ".- "
	DigitLength = 13
)

type Rule int

const (
	RuleNone Rule = iota
	RuleMismatchedDelimiters
	RuleDigitCount
	RuleRepeatedDigit
	RuleZeroGroup
	RuleSampleNumber
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleMismatchedDelimiters:
		return "mismatched delimiters"
	case RuleDigitCount:
		return "digit count"
	case RuleRepeatedDigit:
		return "repeated digit"
	case RuleZeroGroup:
		return "zero group"
	case RuleSampleNumber:
		return "sample number"
	default:
		return "unknown"
	}
}

// ZeroGroup disqualifies digits whose [Start:End] slice equals Zeros.
type ZeroGroup struct {
	Start int
	End   int
	Zeros string
}

func (g ZeroGroup) matches(digits string) bool {
	if g.Start < 0 || g.End > len(digits) || g.Start > g.End {
		return false
	}
	return digits[g.Start:g.End] == g.Zeros
}

// The second group compares a two digit slice against three zeros and
// never matches. Kept until the intended bounds are confirmed.
var defaultZeroGroups = []ZeroGroup{
	{Start: 0, End: 4, Zeros: "0000"},
	{Start: 6, End: 8, Zeros: "000"},
}

// Published sample and placeholder numbers.
var defaultSampleNumbers = []string{
	"121356789",
	"120056789",
	"0780515200982",
	"0780510200982",
}

type rules struct {
	zeroGroups    []ZeroGroup
	sampleNumbers []string
}

var defaultRules = rules{
	zeroGroups:    defaultZeroGroups,
	sampleNumbers: defaultSampleNumbers,
}

func (r rules) reason(candidate string) Rule {
	if len(recognizer.CountDelimiters(candidate, Delimiters)) > 1 {
		return RuleMismatchedDelimiters
	}

	digits := recognizer.Digits(candidate)
	if len(digits) != DigitLength {
		return RuleDigitCount
	}

	if recognizer.AllSame(digits) {
		return RuleRepeatedDigit
	}

	for _, g := range r.zeroGroups {
		if g.matches(digits) {
			return RuleZeroGroup
		}
	}

	for _, sample := range r.sampleNumbers {
		if strings.HasPrefix(digits, sample) {
			return RuleSampleNumber
		}
	}

	return RuleNone
}

// Invalidate reports whether candidate is disqualified.
func Invalidate(candidate string) bool {
	return defaultRules.reason(candidate) != RuleNone
}

// Reason returns the first rule that disqualifies candidate, or RuleNone.
func Reason(candidate string) Rule {
	return defaultRules.reason(candidate)
}
