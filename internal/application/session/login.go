package session

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// Login checks the credentials after the simulated delay. The pair must
// match exactly; any failure leaves the store anonymous.
func (s *Store) Login(ctx context.Context, email, password string) (domain.User, error) {
	s.setLoading()

	if err := s.wait(ctx); err != nil {
		s.reset()
		return domain.User{}, err
	}

	u, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		s.reset()
		return domain.User{}, err
	}

	if err := s.authenticate(ctx, u); err != nil {
		s.reset()
		zlog.Error().Err(err).Str("user_id", u.ID).Msg("login persist failed")
		return domain.User{}, err
	}

	zlog.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("login succeeded")
	return u, nil
}
