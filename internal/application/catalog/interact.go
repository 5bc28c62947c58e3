package catalog

import (
	"sort"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// ToggleLike flips the viewer's like on an event and moves its like count
// with it. Unknown IDs are a silent no-op reported as false.
func (s *Store) ToggleLike(id string) (domain.Event, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Event{}, false
	}

	kind := ChangeLiked
	if _, liked := s.liked[id]; liked {
		delete(s.liked, id)
		if s.events[i].Likes > 0 {
			s.events[i].Likes--
		}
		kind = ChangeUnliked
	} else {
		s.liked[id] = struct{}{}
		s.events[i].Likes++
	}
	e := s.events[i]
	s.touch()
	c := s.change(kind, e)
	s.mu.Unlock()

	s.emit(c)
	return e, true
}

// IncrementViews counts one detail-view open. Callers are responsible for
// firing it once per open.
func (s *Store) IncrementViews(id string) (domain.Event, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Event{}, false
	}
	s.events[i].Views++
	e := s.events[i]
	s.touch()
	c := s.change(ChangeViewed, e)
	s.mu.Unlock()

	s.emit(c)
	return e, true
}

func (s *Store) IsLiked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.liked[id]
	return ok
}

// LikedIDs returns the liked set, sorted for stable output.
func (s *Store) LikedIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
