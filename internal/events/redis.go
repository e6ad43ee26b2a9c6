package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/goliatone/go-club-setup/internal/logging"
)

const DefaultStream = "club-setup:events"

// RedisStreamPublisher mirrors setup events onto a Redis stream.
type RedisStreamPublisher struct {
	client redis.UniversalClient
	stream string
	logger logging.Logger
}

func NewRedisStreamPublisher(client redis.UniversalClient, stream string, logger logging.Logger) *RedisStreamPublisher {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	if stream == "" {
		stream = DefaultStream
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &RedisStreamPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (p *RedisStreamPublisher) Stream() string { return p.stream }

func (p *RedisStreamPublisher) Publish(ctx context.Context, event StepEvent) error {
	if event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	streamID, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"type":  string(event.Type),
			"event": string(payload),
		},
	}).Result()
	if err != nil {
		RecordEventPublished(event.Type, "error")
		return fmt.Errorf("failed to add event to stream: %w", err)
	}

	RecordEventPublished(event.Type, "success")
	p.logger.Debug("event %s published to %s as %s", event.ID, p.stream, streamID)
	return nil
}
