package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher publishes events to Redis channels named after the room,
// letting socket gateways on other hosts fan them out to clients. PUBLISH is
// fire-and-forget, there is no delivery guarantee or replay.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates new RedisPublisher instance
func NewRedisPublisher(addr string) *RedisPublisher {
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Publish marshals the event and publishes it to the room channel
func (p *RedisPublisher) Publish(ctx context.Context, room Room, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, string(room), payload).Err()
}

// Close closes the underlying client
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
