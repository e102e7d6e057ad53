package domain

import (
	"encoding/hex"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/totegamma/recognizer"
)

// Result is the outcome of validating one candidate.
type Result struct {
	recognizer.Verdict
	Pattern string `json:"pattern,omitempty"`
	Cached  bool   `json:"cached"`
}

// VerdictEvent is published once per fresh validation. A cache hit
// does not publish again. It never carries the raw candidate.
type VerdictEvent struct {
	Entity        string    `json:"entity"`
	Mode          string    `json:"mode"`
	Result        bool      `json:"result"`
	Accepted      bool      `json:"accepted"`
	CandidateHash string    `json:"candidateHash"`
	At            time.Time `json:"at"`
}

// VerdictStat holds per-entity verdict counters.
type VerdictStat struct {
	Entity   string `json:"entity"`
	Accepted int64  `json:"accepted"`
	Rejected int64  `json:"rejected"`
}

// CandidateHash fingerprints a candidate for cache keys and events.
func CandidateHash(entity, candidate string) string {
	sum := xxh3.HashString128(entity + "\x00" + candidate).Bytes()
	return hex.EncodeToString(sum[:])
}
