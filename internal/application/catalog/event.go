package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventVersion  = 1
	EventProducer = "discovery-service"
)

// DomainEventEnvelope is the stable contract for every change published by
// this service: version, producer, message_id, occurred_at and payload.
// Store mutations carry no request context, so there is no trace id.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// EventChangedPayload is shared by all event.* routing keys.
type EventChangedPayload struct {
	EventID     string `json:"event_id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	OrganizerID string `json:"organizer_id"`
	Date        string `json:"date"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
}

// encodeChange returns the routing key, a fresh message id and the JSON body.
func encodeChange(c Change) (string, string, []byte, error) {
	messageID := uuid.NewString()
	env := DomainEventEnvelope[EventChangedPayload]{
		Version:    EventVersion,
		Producer:   EventProducer,
		MessageID:  messageID,
		OccurredAt: c.At.UTC(),
		Payload: EventChangedPayload{
			EventID:     c.EventID,
			Kind:        string(c.Kind),
			Title:       c.Event.Title,
			Category:    string(c.Event.Category),
			OrganizerID: c.Event.OrganizerID,
			Date:        c.Event.Date,
			Views:       c.Event.Views,
			Likes:       c.Event.Likes,
		},
	}
	body, err := json.Marshal(env)
	if err != nil {
		return "", "", nil, err
	}
	return string(c.Kind), messageID, body, nil
}
