package catalog

import (
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// Stats aggregates an organizer's dashboard numbers.
type Stats struct {
	Events int
	Views  int
	Likes  int
}

// Events returns the full catalog in catalog order.
func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEvents(s.events)
}

func (s *Store) Get(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Event{}, false
	}
	return s.events[i], true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Featured returns the first n events in catalog order.
func (s *Store) Featured(n int) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n > len(s.events) {
		n = len(s.events)
	}
	return copyEvents(s.events[:n])
}

// ByOrganizer returns the organizer's events in catalog order.
func (s *Store) ByOrganizer(organizerID string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Stats(organizerID string) Stats {
	var st Stats
	for _, e := range s.ByOrganizer(organizerID) {
		st.Events++
		st.Views += e.Views
		st.Likes += e.Likes
	}
	return st
}
