package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// --- Helpers ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

func seqIDs(ids ...string) IDGenerator {
	i := 0
	return func() string {
		if i < len(ids) {
			id := ids[i]
			i++
			return id
		}
		i++
		return fmt.Sprintf("gen-%d", i)
	}
}

func seedEvents() []domain.Event {
	return []domain.Event{
		{ID: "e1", Title: "Summer Jazz Festival", Description: "Open-air jazz", Location: "Central Park", Category: domain.CategoryMusic, Organizer: "Jazztown Music Association", OrganizerID: "org1", Views: 10, Likes: 2},
		{ID: "e2", Title: "Pottery Workshop", Description: "Learn to throw clay", Location: "Art Studio", Category: domain.CategoryWorkshops, Organizer: "Clay Collective", OrganizerID: "org2", Views: 5},
		{ID: "e3", Title: "Street Food Market", Description: "Tacos and JAZZ on the side", Location: "Harbor", Category: domain.CategoryFood, Organizer: "Harbor Eats", OrganizerID: "org3"},
		{ID: "e4", Title: "Blues Night", Description: "Late night blues", Location: "Jazz Cellar", Category: domain.CategoryMusic, Organizer: "Jazztown Music Association", OrganizerID: "org1", Likes: 7},
	}
}

func newStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	opts = append([]Option{WithClock(fakeClock{t: now})}, opts...)
	return New(seedEvents(), opts...)
}

func ids(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func newInput() domain.EventInput {
	return domain.EventInput{
		Title:            "Robotics Meetup",
		ShortDescription: "Build a robot",
		Description:      "Hands-on robotics for beginners",
		Date:             "2025-07-01",
		Time:             "18:30",
		Location:         "Maker Space",
		Category:         domain.CategoryTechnology,
		Image:            "https://img.example.com/robot.jpg",
		Organizer:        "Acme Events",
		OrganizerID:      "org9",
	}
}

// --- Test Cases ---

func TestNew_DropsDuplicateSeedIDs(t *testing.T) {
	seed := append(seedEvents(), domain.Event{ID: "e1", Title: "dup"})
	s := New(seed)
	assert.Equal(t, 4, s.Len())
	e, ok := s.Get("e1")
	require.True(t, ok)
	assert.Equal(t, "Summer Jazz Festival", e.Title)
}

func TestToggleLike(t *testing.T) {
	t.Run("double_toggle_restores_state", func(t *testing.T) {
		s := newStore(t)
		for _, e := range s.Events() {
			before := e.Likes
			wasLiked := s.IsLiked(e.ID)

			first, ok := s.ToggleLike(e.ID)
			require.True(t, ok)
			assert.Equal(t, before+1, first.Likes)
			assert.True(t, s.IsLiked(e.ID))

			second, ok := s.ToggleLike(e.ID)
			require.True(t, ok)
			assert.Equal(t, before, second.Likes)
			assert.Equal(t, wasLiked, s.IsLiked(e.ID))
		}
	})

	t.Run("liked_set_and_count_co_vary", func(t *testing.T) {
		s := newStore(t)
		s.ToggleLike("e2")
		s.ToggleLike("e4")
		assert.Equal(t, []string{"e2", "e4"}, s.LikedIDs())

		e2, _ := s.Get("e2")
		e4, _ := s.Get("e4")
		assert.Equal(t, 1, e2.Likes)
		assert.Equal(t, 8, e4.Likes)
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		s := newStore(t)
		before := s.Events()
		_, ok := s.ToggleLike("missing")
		assert.False(t, ok)
		assert.Equal(t, before, s.Events())
		assert.Empty(t, s.LikedIDs())
	})
}

func TestIncrementViews(t *testing.T) {
	s := newStore(t)

	e, ok := s.IncrementViews("e1")
	require.True(t, ok)
	assert.Equal(t, 11, e.Views)

	_, ok = s.IncrementViews("missing")
	assert.False(t, ok)
}

func TestAddEvent(t *testing.T) {
	t.Run("prepends_with_zero_counters", func(t *testing.T) {
		s := newStore(t)
		e, err := s.AddEvent(newInput())
		require.NoError(t, err)

		assert.NotEmpty(t, e.ID)
		assert.Zero(t, e.Views)
		assert.Zero(t, e.Likes)

		all := s.Events()
		assert.Len(t, all, 5)
		assert.Equal(t, e.ID, all[0].ID)
		assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids(all[1:]))
	})

	t.Run("redraws_colliding_ids", func(t *testing.T) {
		s := newStore(t, WithIDGenerator(seqIDs("e1", "", "e3", "fresh")))
		e, err := s.AddEvent(newInput())
		require.NoError(t, err)
		assert.Equal(t, "fresh", e.ID)
	})

	t.Run("ids_are_unique_across_adds", func(t *testing.T) {
		s := newStore(t)
		seen := map[string]bool{}
		for _, e := range s.Events() {
			seen[e.ID] = true
		}
		for i := 0; i < 20; i++ {
			e, err := s.AddEvent(newInput())
			require.NoError(t, err)
			assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
			seen[e.ID] = true
		}
	})

	t.Run("rejects_invalid_category", func(t *testing.T) {
		s := newStore(t)
		in := newInput()
		in.Category = "Cooking"
		_, err := s.AddEvent(in)
		assert.True(t, domain.Is(err, domain.CodeValidation))
		assert.Equal(t, 4, s.Len())
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("replaces_fields_keeps_counters", func(t *testing.T) {
		s := newStore(t)
		cur, _ := s.Get("e1")

		edited := cur
		edited.Title = "Winter Jazz Festival"
		edited.Category = domain.CategoryEntertainment
		edited.Views = 0
		edited.Likes = 999

		got, ok, err := s.UpdateEvent(edited)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Winter Jazz Festival", got.Title)
		assert.Equal(t, domain.CategoryEntertainment, got.Category)
		assert.Equal(t, cur.Views, got.Views)
		assert.Equal(t, cur.Likes, got.Likes)

		assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids(s.Events()))
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		s := newStore(t)
		before := s.Events()
		_, ok, err := s.UpdateEvent(domain.Event{ID: "missing", Category: domain.CategoryArt})
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, before, s.Events())
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("removes_once", func(t *testing.T) {
		s := newStore(t)
		s.ToggleLike("e2")

		assert.True(t, s.DeleteEvent("e2"))
		assert.Equal(t, 3, s.Len())
		assert.False(t, s.IsLiked("e2"))

		// every later operation on the id is a no-op
		assert.False(t, s.DeleteEvent("e2"))
		_, ok := s.ToggleLike("e2")
		assert.False(t, ok)
		_, ok = s.IncrementViews("e2")
		assert.False(t, ok)
		_, ok, _ = s.UpdateEvent(domain.Event{ID: "e2", Category: domain.CategoryArt})
		assert.False(t, ok)
		assert.Equal(t, 3, s.Len())
		assert.Empty(t, s.LikedIDs())
	})

	t.Run("unknown_id_keeps_count", func(t *testing.T) {
		s := newStore(t)
		assert.False(t, s.DeleteEvent("missing"))
		assert.Equal(t, 4, s.Len())
	})
}

func TestQueries(t *testing.T) {
	s := newStore(t)

	assert.Equal(t, []string{"e1", "e2", "e3"}, ids(s.Featured(3)))
	assert.Len(t, s.Featured(10), 4)
	assert.Empty(t, s.Featured(-1))

	assert.Equal(t, []string{"e1", "e4"}, ids(s.ByOrganizer("org1")))
	assert.Equal(t, Stats{Events: 2, Views: 10, Likes: 9}, s.Stats("org1"))
	assert.Equal(t, Stats{}, s.Stats("nobody"))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s := newStore(t)
	all := s.Events()
	all[0].Title = "mutated"
	filtered := s.Filtered()
	filtered[0].Likes = 1000

	e, _ := s.Get("e1")
	assert.Equal(t, "Summer Jazz Festival", e.Title)
	assert.Equal(t, 2, e.Likes)
}
