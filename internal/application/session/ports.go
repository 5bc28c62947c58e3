package session

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

/*
Storage
-------
Keyed blob persistence for the session record (the local-storage analogue).
Get reports ok=false when the key is absent.
*/
type Storage interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

/*
CredentialVerifier
------------------
The seam between the session state machine and whatever checks passwords.
Implementations return domain.ErrInvalidCredentials for every rejection.
*/
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (domain.User, error)
}
