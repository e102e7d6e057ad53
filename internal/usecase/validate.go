package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/totegamma/recognizer"
	"github.com/totegamma/recognizer/internal/domain"
)

var tracer = otel.Tracer("usecase")

const (
	MaxBatchSize     = 256
	batchConcurrency = 8
)

type ValidateUsecase struct {
	registry  *Registry
	cache     VerdictCache
	stats     StatRepository
	publisher VerdictPublisher
	metrics   VerdictMetrics
	log       *logrus.Entry
	now       func() time.Time
}

// NewValidateUsecase builds the usecase. cache, stats, publisher and
// metrics may be nil.
func NewValidateUsecase(
	registry *Registry,
	cache VerdictCache,
	stats StatRepository,
	publisher VerdictPublisher,
	metrics VerdictMetrics,
	log *logrus.Entry,
) *ValidateUsecase {
	return &ValidateUsecase{
		registry:  registry,
		cache:     cache,
		stats:     stats,
		publisher: publisher,
		metrics:   metrics,
		log:       log.WithField("component", "validate"),
		now:       time.Now,
	}
}

func (uc *ValidateUsecase) Definitions() []recognizer.Definition {
	return uc.registry.Definitions()
}

func (uc *ValidateUsecase) Definition(entity string) (recognizer.Definition, error) {
	rec, err := uc.registry.Get(entity)
	if err != nil {
		return recognizer.Definition{}, err
	}
	return rec.Definition, nil
}

func (uc *ValidateUsecase) Validate(ctx context.Context, entity, candidate string) (domain.Result, error) {
	ctx, span := tracer.Start(ctx, "Usecase.Validate", trace.WithAttributes(attribute.String("entity", entity)))
	defer span.End()

	rec, err := uc.registry.Get(entity)
	if err != nil {
		span.RecordError(err)
		return domain.Result{}, err
	}

	return uc.validate(ctx, rec, candidate), nil
}

// ValidateBatch validates candidates concurrently. Results keep input order.
func (uc *ValidateUsecase) ValidateBatch(ctx context.Context, entity string, candidates []string) ([]domain.Result, error) {
	ctx, span := tracer.Start(ctx, "Usecase.ValidateBatch", trace.WithAttributes(
		attribute.String("entity", entity),
		attribute.Int("size", len(candidates)),
	))
	defer span.End()

	if len(candidates) > MaxBatchSize {
		err := domain.LimitError{Name: "candidates", Limit: MaxBatchSize, Got: len(candidates)}
		span.RecordError(err)
		return nil, err
	}

	rec, err := uc.registry.Get(entity)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	results := make([]domain.Result, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.validate(gctx, rec, candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "validate batch")
	}

	return results, nil
}

func (uc *ValidateUsecase) Stats(ctx context.Context) ([]domain.VerdictStat, error) {
	ctx, span := tracer.Start(ctx, "Usecase.Stats")
	defer span.End()

	if uc.stats == nil {
		return []domain.VerdictStat{}, nil
	}
	stats, err := uc.stats.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "list stats")
	}
	return stats, nil
}

func (uc *ValidateUsecase) validate(ctx context.Context, rec Recognizer, candidate string) domain.Result {
	entity := rec.Validator.Entity()
	key := domain.CandidateHash(entity, candidate)

	result := domain.Result{}
	if p, ok := rec.Definition.MatchPattern(candidate); ok {
		result.Pattern = p.Name
	}

	if uc.cache != nil {
		if verdict, ok := uc.cache.Get(ctx, key); ok {
			result.Verdict = verdict
			result.Cached = true
			uc.observe(verdict, true)
			return result
		}
	}

	result.Verdict = recognizer.Evaluate(rec.Validator, candidate)
	uc.observe(result.Verdict, false)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result.Verdict); err != nil {
			uc.log.WithError(err).Warn("failed to cache verdict")
		}
	}

	if uc.stats != nil {
		if err := uc.stats.Increment(ctx, entity, result.Accepted()); err != nil {
			uc.log.WithError(err).WithField("entity", entity).Warn("failed to increment stats")
		}
	}

	if uc.publisher != nil {
		event := domain.VerdictEvent{
			Entity:        entity,
			Mode:          result.Mode.String(),
			Result:        result.Result,
			Accepted:      result.Accepted(),
			CandidateHash: key,
			At:            uc.now().UTC(),
		}
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.log.WithError(err).WithField("entity", entity).Warn("failed to publish verdict")
		}
	}

	return result
}

func (uc *ValidateUsecase) observe(verdict recognizer.Verdict, cached bool) {
	if uc.metrics != nil {
		uc.metrics.Observe(verdict, cached)
	}
}
