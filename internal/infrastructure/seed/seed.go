// Package seed loads the starting event catalog.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

//go:embed events.json
var defaultEvents []byte

type eventRecord struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Category         string `json:"category"`
	Image            string `json:"image"`
	Organizer        string `json:"organizer"`
	OrganizerID      string `json:"organizerId"`
	TicketLink       string `json:"ticketLink,omitempty"`
	Views            int    `json:"views"`
	Likes            int    `json:"likes"`
}

// Default returns the built-in catalog.
func Default() ([]domain.Event, error) {
	return Parse(defaultEvents)
}

// Load reads a catalog from path, or the built-in one when path is empty.
func Load(path string) ([]domain.Event, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a JSON array of events and rejects any that break the
// catalog invariants.
func Parse(b []byte) ([]domain.Event, error) {
	var recs []eventRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}

	out := make([]domain.Event, 0, len(recs))
	for i, r := range recs {
		if r.ID == "" {
			return nil, fmt.Errorf("seed: event %d has no id", i)
		}
		e := domain.NewEvent(r.ID, domain.EventInput{
			Title:            r.Title,
			ShortDescription: r.ShortDescription,
			Description:      r.Description,
			Date:             r.Date,
			Time:             r.Time,
			Location:         r.Location,
			Category:         domain.Category(r.Category),
			Image:            r.Image,
			Organizer:        r.Organizer,
			OrganizerID:      r.OrganizerID,
			TicketLink:       r.TicketLink,
		})
		if err := e.Input().Validate(); err != nil {
			return nil, fmt.Errorf("seed: event %q: %w", r.ID, err)
		}
		e.Views = r.Views
		e.Likes = r.Likes
		out = append(out, e)
	}
	return out, nil
}
