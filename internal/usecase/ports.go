package usecase

import (
	"context"

	"github.com/totegamma/recognizer"
	"github.com/totegamma/recognizer/internal/domain"
)

// VerdictCache stores verdicts by candidate hash.
type VerdictCache interface {
	Get(ctx context.Context, key string) (recognizer.Verdict, bool)
	Set(ctx context.Context, key string, verdict recognizer.Verdict) error
}

// StatRepository keeps per-entity verdict counters.
type StatRepository interface {
	Increment(ctx context.Context, entity string, accepted bool) error
	List(ctx context.Context) ([]domain.VerdictStat, error)
}

// VerdictPublisher announces verdicts to other services.
type VerdictPublisher interface {
	Publish(ctx context.Context, event domain.VerdictEvent) error
}

// VerdictMetrics records verdict counts for monitoring.
type VerdictMetrics interface {
	Observe(verdict recognizer.Verdict, cached bool)
}
