package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

const DefaultDelay = time.Second

// Store holds the current session and mirrors it into Storage.
//
// States: Anonymous -> Authenticating on Login/Register; Authenticating ->
// Authenticated on success or Anonymous on failure; Authenticated ->
// Anonymous on Logout. Overlapping calls are not coordinated: each one
// resolves on its own and the last writer wins.
type Store struct {
	mu    sync.RWMutex
	state domain.Session

	storage  Storage
	verifier CredentialVerifier
	key      string
	delay    time.Duration
	newID    func() string
}

type Option func(*Store)

// WithKey overrides the storage key (default "auth").
func WithKey(key string) Option {
	return func(s *Store) {
		if k := strings.TrimSpace(key); k != "" {
			s.key = k
		}
	}
}

// WithDelay sets the simulated latency of Login and Register.
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithIDGenerator(g func() string) Option {
	return func(s *Store) {
		if g != nil {
			s.newID = g
		}
	}
}

// New restores the persisted session if one is present and parses;
// otherwise the store starts anonymous.
func New(ctx context.Context, storage Storage, verifier CredentialVerifier, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		verifier: verifier,
		key:      DefaultKey,
		delay:    DefaultDelay,
		newID:    func() string { return "org-" + uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	s.state = s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) domain.Session {
	b, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		zlog.Warn().Err(err).Str("key", s.key).Msg("session restore failed, starting anonymous")
		return domain.AnonymousSession()
	}
	if !ok {
		return domain.AnonymousSession()
	}
	sess, err := decodeSession(b)
	if err != nil {
		zlog.Warn().Err(err).Str("key", s.key).Msg("stored session unreadable, starting anonymous")
		return domain.AnonymousSession()
	}
	sess = sess.Normalize()
	if sess.User != nil {
		zlog.Info().Str("user_id", sess.User.ID).Msg("session restored")
	}
	return sess
}

// Session returns a copy of the current state.
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) Status() domain.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Status()
}

// CurrentUser returns the signed-in user, or ok=false when anonymous.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return domain.User{}, false
	}
	return *s.state.User, true
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()
}

func (s *Store) reset() {
	s.mu.Lock()
	s.state = domain.AnonymousSession()
	s.mu.Unlock()
}

// wait is the simulated network latency. It honours ctx cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// authenticate persists u and makes it the current session.
func (s *Store) authenticate(ctx context.Context, u domain.User) error {
	next := domain.AuthenticatedSession(u)
	body, err := encodeSession(next)
	if err != nil {
		return domain.ErrInfrastructure("encode session", err)
	}
	if err := s.storage.Set(ctx, s.key, body); err != nil {
		return domain.ErrInfrastructure("persist session", err)
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	return nil
}
