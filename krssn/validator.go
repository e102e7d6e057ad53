package krssn

import (
	"github.com/totegamma/recognizer"
)

type Option func(*Validator)

// WithSampleNumbers replaces the denylisted number prefixes.
func WithSampleNumbers(prefixes ...string) Option {
	return func(v *Validator) {
		v.rules.sampleNumbers = append([]string(nil), prefixes...)
	}
}

// WithZeroGroups replaces the zero group rules.
func WithZeroGroups(groups ...ZeroGroup) Option {
	return func(v *Validator) {
		v.rules.zeroGroups = append([]ZeroGroup(nil), groups...)
	}
}

type Validator struct {
	rules rules
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{rules: defaultRules}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Entity() string {
	return recognizer.EntityKrSsn
}

func (v *Validator) Mode() recognizer.Mode {
	return recognizer.ModeInvalidate
}

func (v *Validator) Check(candidate string) bool {
	return v.rules.reason(candidate) != RuleNone
}

func (v *Validator) Reason(candidate string) Rule {
	return v.rules.reason(candidate)
}

// DefaultDefinition returns the KR_SSN recognizer metadata.
func DefaultDefinition() recognizer.Definition {
	return recognizer.Definition{
		Entity:   recognizer.EntityKrSsn,
		Language: "en",
		Patterns: []*recognizer.Pattern{
			recognizer.NewPattern("SSN1 (very weak)", `\b(\d{6})[- ](\d{7})\b`, 0.05),
			recognizer.NewPattern("SSN2 (very weak)", `\b\d{13}\b`, 0.05),
			recognizer.NewPattern("SSN3 (medium)", `\b(?:\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[1,2]\d|3[0,1]))[- ][1-4]\d{6}\b`, 0.5),
		},
		Context: []string{
			"resident registration number",
			"resident registration#",
			"national identification number",
			"national identification#",
			"주민등록번호",
		},
	}
}
