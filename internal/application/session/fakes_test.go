package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

type fakeStorage struct {
	mu   sync.Mutex
	data map[string][]byte

	getErr    error
	setErr    error
	removeErr error
}

func newFakeStorage() *fakeStorage { return &fakeStorage{data: map[string][]byte{}} }

func (f *fakeStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeStorage) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeStorage) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

var errBoom = errors.New("boom")

func demoVerifier(t *testing.T) *DemoVerifier {
	t.Helper()
	v, err := NewDemoVerifier(DemoCredentials{
		Email:    "organizer@example.com",
		Password: "password",
		User: domain.User{
			ID:   "org1",
			Name: "Jazztown Music Association",
			Role: domain.RoleOrganizer,
		},
	})
	require.NoError(t, err)
	return v
}

func newTestStore(t *testing.T, storage Storage, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithDelay(0)}, opts...)
	return New(context.Background(), storage, demoVerifier(t), opts...)
}
