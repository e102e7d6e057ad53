package recognizer

import (
	"regexp"
	"sync"
)

const (
	EntityEthWallet string = "ETH_WALLET"
	EntityKrSsn     string = "KR_SSN"
)

// Mode tells how the caller should read a Validator result.
type Mode int

const (
	// ModeValidate: true means the candidate is a plausible instance.
	ModeValidate Mode = iota
	// ModeInvalidate: true means the candidate is disqualified.
	ModeInvalidate
)

func (m Mode) String() string {
	switch m {
	case ModeValidate:
		return "validate"
	case ModeInvalidate:
		return "invalidate"
	default:
		return "unknown"
	}
}

// Validator is the capability a recognition framework composes with pattern metadata.
type Validator interface {
	Entity() string
	Mode() Mode
	Check(candidate string) bool
}

type Verdict struct {
	Entity string `json:"entity"`
	Mode   Mode   `json:"mode"`
	Result bool   `json:"result"`
}

// Accepted reports whether the candidate survives the check,
// regardless of which way the validator phrases its result.
func (v Verdict) Accepted() bool {
	if v.Mode == ModeInvalidate {
		return !v.Result
	}
	return v.Result
}

// Evaluate runs v against candidate.
func Evaluate(v Validator, candidate string) Verdict {
	return Verdict{
		Entity: v.Entity(),
		Mode:   v.Mode(),
		Result: v.Check(candidate),
	}
}

type Pattern struct {
	Name  string  `json:"name"`
	Regex string  `json:"regex"`
	Score float64 `json:"score"`

	once sync.Once
	re   *regexp.Regexp
}

func NewPattern(name, regex string, score float64) *Pattern {
	return &Pattern{Name: name, Regex: regex, Score: score}
}

// Matches reports whether the whole candidate is matched by the pattern.
// A pattern that does not compile matches nothing.
func (p *Pattern) Matches(candidate string) bool {
	p.once.Do(func() {
		re, err := regexp.Compile(`^(?:` + p.Regex + `)$`)
		if err == nil {
			p.re = re
		}
	})
	if p.re == nil {
		return false
	}
	return p.re.MatchString(candidate)
}

// Definition is the recognizer metadata consumed by the external framework.
type Definition struct {
	Entity   string     `json:"entity"`
	Language string     `json:"language"`
	Patterns []*Pattern `json:"patterns"`
	Context  []string   `json:"context"`
}

// MatchPattern returns the first pattern that fully matches candidate.
func (d Definition) MatchPattern(candidate string) (*Pattern, bool) {
	for _, p := range d.Patterns {
		if p.Matches(candidate) {
			return p, true
		}
	}
	return nil, false
}
