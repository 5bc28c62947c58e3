package dto

import "time"

type EventResp struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`

	Date        string `json:"date"`
	Time        string `json:"time"`
	DateDisplay string `json:"date_display"`
	TimeDisplay string `json:"time_display"`

	Location    string `json:"location"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Organizer   string `json:"organizer"`
	OrganizerID string `json:"organizer_id"`
	TicketLink  string `json:"ticket_link,omitempty"`

	Views int  `json:"views"`
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

type CriteriaResp struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

type FilteredResp struct {
	Items    []EventResp  `json:"items"`
	Total    int          `json:"total"`
	Criteria CriteriaResp `json:"criteria"`
}

type ListResp struct {
	Items []EventResp `json:"items"`
	Total int         `json:"total"`
}

type LikesResp struct {
	IDs []string `json:"ids"`
}

type ShareResp struct {
	EventURL  string `json:"event_url"`
	Text      string `json:"text"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	WhatsApp  string `json:"whatsapp"`
	Clipboard string `json:"clipboard"`
}

type UserResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SessionResp struct {
	User            *UserResp `json:"user"`
	IsAuthenticated bool      `json:"is_authenticated"`
	IsLoading       bool      `json:"is_loading"`
	Status          string    `json:"status"`
}

type AuthResp struct {
	Session   SessionResp `json:"session"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	Redirect  string      `json:"redirect"`
}

type StatsResp struct {
	Events int `json:"events"`
	Views  int `json:"views"`
	Likes  int `json:"likes"`
}

type OrganizerResp struct {
	Items []EventResp `json:"items"`
	Stats StatsResp   `json:"stats"`
}
