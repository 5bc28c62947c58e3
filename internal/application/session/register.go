package session

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// Register signs up a new organizer. There is no user database, so it only
// fails on cancellation or when the session cannot be persisted.
func (s *Store) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	s.setLoading()

	if err := s.wait(ctx); err != nil {
		s.reset()
		return domain.User{}, err
	}

	u := domain.User{
		ID:    s.newID(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  domain.RoleOrganizer,
	}

	if err := s.authenticate(ctx, u); err != nil {
		s.reset()
		zlog.Error().Err(err).Str("user_id", u.ID).Msg("register persist failed")
		return domain.User{}, err
	}

	zlog.Info().Str("user_id", u.ID).Msg("organizer registered")
	return u, nil
}
