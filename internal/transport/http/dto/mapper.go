package dto

import (
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// LikedFunc reports whether the visitor has liked an event.
type LikedFunc func(id string) bool

func ToEventResp(e domain.Event, liked bool) EventResp {
	return EventResp{
		ID:               e.ID,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		Date:             e.Date,
		Time:             e.Time,
		DateDisplay:      domain.FormatDate(e.Date),
		TimeDisplay:      domain.FormatTime(e.Time),
		Location:         e.Location,
		Category:         string(e.Category),
		Image:            e.Image,
		Organizer:        e.Organizer,
		OrganizerID:      e.OrganizerID,
		TicketLink:       e.TicketLink,
		Views:            e.Views,
		Likes:            e.Likes,
		Liked:            liked,
	}
}

func ToEventResps(events []domain.Event, liked LikedFunc) []EventResp {
	out := make([]EventResp, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResp(e, liked != nil && liked(e.ID)))
	}
	return out
}

func ToCriteriaResp(c catalog.Criteria) CriteriaResp {
	cat := string(c.Category)
	if cat == "" {
		cat = string(domain.CategoryAll)
	}
	return CriteriaResp{Category: cat, Query: c.Query}
}

func ToShareResp(l domain.ShareLinks) ShareResp {
	return ShareResp{
		EventURL:  l.EventURL,
		Text:      l.Text,
		Facebook:  l.Facebook,
		Twitter:   l.Twitter,
		WhatsApp:  l.WhatsApp,
		Clipboard: l.Clipboard,
	}
}

func ToSessionResp(s domain.Session) SessionResp {
	out := SessionResp{
		IsAuthenticated: s.IsAuthenticated,
		IsLoading:       s.IsLoading,
		Status:          string(s.Status()),
	}
	if s.User != nil {
		out.User = &UserResp{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
			Role:  string(s.User.Role),
		}
	}
	return out
}

func ToStatsResp(s catalog.Stats) StatsResp {
	return StatsResp{Events: s.Events, Views: s.Views, Likes: s.Likes}
}

// ToEventInput maps the organizer form. The organizer fields are stamped
// from the signed-in user.
func (r EventReq) ToEventInput(organizer domain.User) domain.EventInput {
	return domain.EventInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Date:             r.Date,
		Time:             r.Time,
		Location:         r.Location,
		Category:         domain.Category(r.Category),
		Image:            r.Image,
		Organizer:        organizer.Name,
		OrganizerID:      organizer.ID,
		TicketLink:       r.TicketLink,
	}
}
