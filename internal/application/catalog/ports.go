package catalog

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// IDGenerator mints event identifiers.
type IDGenerator func() string

// EventPublisher ships an encoded change to a broker.
// messageID must be stable across retries.
type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }
