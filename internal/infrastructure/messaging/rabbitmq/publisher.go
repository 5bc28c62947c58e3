package rabbitmq

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	zlog "github.com/rs/zerolog/log"
)

const (
	DefaultExchange = "discovery.events"

	// how long to wait for a broker confirm before giving up on it
	confirmWait = 500 * time.Millisecond
)

// channel is the slice of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	url      string
	exchange string

	mu sync.Mutex

	conn      *amqp.Connection
	ch        channel
	confirmCh <-chan amqp.Confirmation
	closedCh  <-chan *amqp.Error
}

// NewPublisher dials the broker, declares a durable topic exchange and
// turns on publisher confirms.
func NewPublisher(url, exchange string) (*Publisher, error) {
	if strings.TrimSpace(exchange) == "" {
		exchange = DefaultExchange
	}

	p := &Publisher{
		url:      url,
		exchange: exchange,
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch
	p.confirmCh = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	p.closedCh = ch.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	return nil
}

// ensure redials once if the broker closed the channel since the last publish.
func (p *Publisher) ensure() error {
	if p.closedCh != nil {
		select {
		case err := <-p.closedCh:
			zlog.Warn().Err(err).Str("exchange", p.exchange).Msg("rabbit channel closed, reconnecting")
			p.ch = nil
			if p.conn != nil {
				_ = p.conn.Close()
				p.conn = nil
			}
		default:
		}
	}
	if p.ch != nil {
		return nil
	}
	if p.url == "" {
		return errors.New("publisher channel not ready")
	}
	return p.connect()
}

// PublishEvent publishes a JSON envelope to the topic exchange and waits
// briefly for the broker confirm. Unroutable messages are dropped by the
// broker; nothing downstream is required to be listening.
func (p *Publisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	if routingKey == "" {
		return errors.New("missing routingKey")
	}
	if strings.TrimSpace(messageID) == "" {
		return errors.New("missing messageID")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensure(); err != nil {
		return err
	}

	err := p.ch.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:    messageID,
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return err
	}

	if p.confirmCh == nil {
		return nil
	}

	t := time.NewTimer(confirmWait)
	defer t.Stop()
	select {
	case conf, ok := <-p.confirmCh:
		if !ok {
			return errors.New("confirm channel closed")
		}
		if !conf.Ack {
			return errors.New("publish nack")
		}
		return nil
	case <-t.C:
		return errors.New("publish confirm timeout")
	case <-ctx.Done():
		return ctx.Err()
	}
}
