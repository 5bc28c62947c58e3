package catalog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// Store is the single source of truth for the event catalog, the viewer's
// liked set and the filter criteria. All methods are safe for concurrent use;
// every mutation is applied atomically under one lock.
type Store struct {
	mu       sync.RWMutex
	events   []domain.Event
	liked    map[string]struct{}
	criteria Criteria

	// rev is bumped on every change to events; it keys the filter memo.
	rev  uint64
	memo filterMemo

	clock Clock
	newID IDGenerator

	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
}

type Option func(*Store)

func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.newID = g
		}
	}
}

// New seeds the catalog with a copy of seed, in the given order.
// Seed entries with a duplicate ID after the first are dropped.
func New(seed []domain.Event, opts ...Option) *Store {
	s := &Store{
		liked:    make(map[string]struct{}),
		criteria: Criteria{Category: domain.CategoryAll},
		clock:    sysClock{},
		newID:    uuid.NewString,
		subs:     make(map[int]func(Change)),
	}
	for _, o := range opts {
		o(s)
	}

	seen := make(map[string]struct{}, len(seed))
	s.events = make([]domain.Event, 0, len(seed))
	for _, e := range seed {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		if e.Views < 0 {
			e.Views = 0
		}
		if e.Likes < 0 {
			e.Likes = 0
		}
		s.events = append(s.events, e)
	}
	return s
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) touch() { s.rev++ }

func copyEvents(in []domain.Event) []domain.Event {
	out := make([]domain.Event, len(in))
	copy(out, in)
	return out
}
