package catalog

import (
	"strings"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// Criteria is the transient filter state behind the derived view.
type Criteria struct {
	Category domain.CategoryFilter
	Query    string
}

// Filter is the derived view: category first, then a case-insensitive
// substring match on title, description, location and organizer.
// Catalog order is preserved.
func Filter(events []domain.Event, c Criteria) []domain.Event {
	category := c.Category
	if category == "" {
		category = domain.CategoryAll
	}
	q := strings.ToLower(c.Query)

	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !category.Matches(e.Category) {
			continue
		}
		if !e.MatchesQuery(q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

type filterMemo struct {
	valid    bool
	rev      uint64
	criteria Criteria
	result   []domain.Event
}

// SetSelectedCategory assigns the category criterion.
// Values outside the enum (other than All) are rejected and ignored.
func (s *Store) SetSelectedCategory(c domain.CategoryFilter) error {
	if !c.Valid() {
		return domain.ErrValidationMeta("invalid category", map[string]string{
			"category": "must be All or a known category",
		})
	}
	s.mu.Lock()
	s.criteria.Category = c
	s.mu.Unlock()
	return nil
}

// SetSearchQuery assigns the free-text criterion. Any string is accepted.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.criteria.Query = q
	s.mu.Unlock()
}

func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// Filtered returns the derived view for the current criteria.
func (s *Store) Filtered() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.memo.valid || s.memo.rev != s.rev || s.memo.criteria != s.criteria {
		s.memo = filterMemo{
			valid:    true,
			rev:      s.rev,
			criteria: s.criteria,
			result:   Filter(s.events, s.criteria),
		}
	}
	return copyEvents(s.memo.result)
}
