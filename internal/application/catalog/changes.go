package catalog

import (
	"time"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

type ChangeKind string

const (
	ChangeCreated ChangeKind = "event.created"
	ChangeUpdated ChangeKind = "event.updated"
	ChangeDeleted ChangeKind = "event.deleted"
	ChangeLiked   ChangeKind = "event.liked"
	ChangeUnliked ChangeKind = "event.unliked"
	ChangeViewed  ChangeKind = "event.viewed"
)

// Change describes one applied mutation. Event is the state after the
// change, or the removed event for ChangeDeleted.
type Change struct {
	Kind    ChangeKind
	EventID string
	Event   domain.Event
	At      time.Time
}

// Subscribe registers fn for every applied mutation and returns a cancel
// func. fn runs synchronously on the mutating goroutine, after the store
// lock is released, so it may read the store.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) emit(c Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

func (s *Store) change(kind ChangeKind, e domain.Event) Change {
	return Change{Kind: kind, EventID: e.ID, Event: e, At: s.clock.Now()}
}
