package service

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/recognizer/internal/domain"
)

var tracer = otel.Tracer("signal")

type SignalService struct {
	rdb     *redis.Client
	channel string
}

func NewSignalService(redisClient *redis.Client, channel string) *SignalService {
	return &SignalService{
		rdb:     redisClient,
		channel: channel,
	}
}

// Publish sends event as JSON on the verdict channel.
func (s *SignalService) Publish(ctx context.Context, event domain.VerdictEvent) error {
	ctx, span := tracer.Start(ctx, "Signal.Service.Publish")
	defer span.End()

	jsonstr, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = s.rdb.Publish(ctx, s.channel, jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "redis publish")
	}

	return nil
}
