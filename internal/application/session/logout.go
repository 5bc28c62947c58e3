package session

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// Logout resets to anonymous and erases the persisted record. The reset
// happens even if the erase fails; that error is returned for logging.
func (s *Store) Logout(ctx context.Context) error {
	s.reset()

	if err := s.storage.Remove(ctx, s.key); err != nil {
		zlog.Warn().Err(err).Str("key", s.key).Msg("session erase failed")
		return domain.ErrInfrastructure("erase session", err)
	}
	return nil
}
