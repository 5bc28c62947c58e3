package catalog

import (
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// AddEvent prepends a new event with a fresh identifier and zero counters.
func (s *Store) AddEvent(in domain.EventInput) (domain.Event, error) {
	if err := in.Validate(); err != nil {
		return domain.Event{}, err
	}

	s.mu.Lock()
	id := s.newID()
	for id == "" || s.indexOf(id) >= 0 {
		id = s.newID()
	}
	e := domain.NewEvent(id, in)

	events := make([]domain.Event, 0, len(s.events)+1)
	events = append(events, e)
	s.events = append(events, s.events...)
	s.touch()
	c := s.change(ChangeCreated, e)
	s.mu.Unlock()

	s.emit(c)
	return e, nil
}

// UpdateEvent replaces the editable fields of the event with e.ID.
// The stored identifier, views and likes are kept. Unknown IDs are a
// silent no-op reported as false.
func (s *Store) UpdateEvent(e domain.Event) (domain.Event, bool, error) {
	in := e.Input()
	if err := in.Validate(); err != nil {
		return domain.Event{}, false, err
	}

	s.mu.Lock()
	i := s.indexOf(e.ID)
	if i < 0 {
		s.mu.Unlock()
		return domain.Event{}, false, nil
	}
	cur := s.events[i]
	next := domain.NewEvent(cur.ID, in)
	next.Views = cur.Views
	next.Likes = cur.Likes
	s.events[i] = next
	s.touch()
	c := s.change(ChangeUpdated, next)
	s.mu.Unlock()

	s.emit(c)
	return next, true, nil
}

// DeleteEvent removes the event and forgets any like on it.
// Unknown IDs are a silent no-op reported as false.
func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.events[i]
	events := make([]domain.Event, 0, len(s.events)-1)
	events = append(events, s.events[:i]...)
	s.events = append(events, s.events[i+1:]...)
	delete(s.liked, id)
	s.touch()
	c := s.change(ChangeDeleted, removed)
	s.mu.Unlock()

	s.emit(c)
	return true
}
