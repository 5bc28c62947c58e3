package catalog

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"
)

const (
	defaultForwardBuffer = 256
	publishTimeout       = 3 * time.Second
)

// Forwarder relays store changes to an EventPublisher on its own goroutine,
// so a slow broker never blocks a store mutation. When the buffer is full
// the change is dropped and logged.
type Forwarder struct {
	pub   EventPublisher
	queue chan Change
}

func NewForwarder(pub EventPublisher, buffer int) *Forwarder {
	if pub == nil {
		pub = NoopPublisher{}
	}
	if buffer <= 0 {
		buffer = defaultForwardBuffer
	}
	return &Forwarder{pub: pub, queue: make(chan Change, buffer)}
}

// Attach subscribes the forwarder to s.
func (f *Forwarder) Attach(s *Store) (cancel func()) {
	return s.Subscribe(func(c Change) {
		select {
		case f.queue <- c:
		default:
			zlog.Warn().Str("kind", string(c.Kind)).Str("event_id", c.EventID).Msg("change forward buffer full, dropping")
		}
	})
}

// Run drains the queue until ctx is done.
func (f *Forwarder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-f.queue:
			f.forward(ctx, c)
		}
	}
}

func (f *Forwarder) forward(ctx context.Context, c Change) {
	routingKey, messageID, body, err := encodeChange(c)
	if err != nil {
		zlog.Error().Err(err).Str("kind", string(c.Kind)).Msg("encode change failed")
		return
	}

	pctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := f.pub.PublishEvent(pctx, routingKey, messageID, body); err != nil {
		zlog.Warn().Err(err).
			Str("routing_key", routingKey).
			Str("message_id", messageID).
			Msg("publish change failed")
		return
	}
	zlog.Debug().Str("routing_key", routingKey).Str("event_id", c.EventID).Msg("change published")
}
