package domain

import (
	"strings"
	"unicode/utf8"
)

const MaxShortDescription = 100

type Event struct {
	ID               string
	Title            string
	ShortDescription string
	Description      string
	Date             string // YYYY-MM-DD
	Time             string // HH:MM, local clock
	Location         string
	Category         Category
	Image            string
	Organizer        string
	OrganizerID      string
	TicketLink       string // optional
	Views            int
	Likes            int
}

// EventInput carries every organizer-editable field.
type EventInput struct {
	Title            string
	ShortDescription string
	Description      string
	Date             string
	Time             string
	Location         string
	Category         Category
	Image            string
	Organizer        string
	OrganizerID      string
	TicketLink       string
}

// Validate checks the catalog invariants only. Presence of the remaining
// fields is the caller's concern.
func (in EventInput) Validate() error {
	if !in.Category.Valid() {
		return ErrValidationMeta("invalid category", map[string]string{
			"category": "must be one of: " + categoryList(),
		})
	}
	if utf8.RuneCountInString(in.ShortDescription) > MaxShortDescription {
		return ErrValidationMeta("short description too long", map[string]string{
			"short_description": "must be <= 100 characters",
		})
	}
	return nil
}

// NewEvent builds a fresh catalog entry with zeroed counters.
func NewEvent(id string, in EventInput) Event {
	return Event{
		ID:               id,
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Date:             in.Date,
		Time:             in.Time,
		Location:         in.Location,
		Category:         in.Category,
		Image:            in.Image,
		Organizer:        in.Organizer,
		OrganizerID:      in.OrganizerID,
		TicketLink:       in.TicketLink,
	}
}

// Input returns the editable part of e.
func (e Event) Input() EventInput {
	return EventInput{
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		Date:             e.Date,
		Time:             e.Time,
		Location:         e.Location,
		Category:         e.Category,
		Image:            e.Image,
		Organizer:        e.Organizer,
		OrganizerID:      e.OrganizerID,
		TicketLink:       e.TicketLink,
	}
}

// MatchesQuery does a case-insensitive substring match against title,
// description, location and organizer. lowered must already be lower-case.
func (e Event) MatchesQuery(lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), lowered) ||
		strings.Contains(strings.ToLower(e.Description), lowered) ||
		strings.Contains(strings.ToLower(e.Location), lowered) ||
		strings.Contains(strings.ToLower(e.Organizer), lowered)
}
