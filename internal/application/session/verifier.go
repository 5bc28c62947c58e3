package session

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

// DemoCredentials is the single accepted login of demo mode.
type DemoCredentials struct {
	Email    string
	Password string
	User     domain.User
}

// DemoVerifier accepts exactly one email/password pair. It is a demo stand-in,
// not a security boundary; swap in another CredentialVerifier for real auth.
type DemoVerifier struct {
	email string
	hash  []byte
	user  domain.User
}

func NewDemoVerifier(c DemoCredentials) (*DemoVerifier, error) {
	if c.Email == "" || c.Password == "" {
		return nil, errors.New("demo credentials require email and password")
	}
	if c.User.ID == "" {
		return nil, errors.New("demo credentials require a user id")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := c.User
	if u.Email == "" {
		u.Email = c.Email
	}
	if u.Role == "" {
		u.Role = domain.RoleOrganizer
	}
	return &DemoVerifier{email: c.Email, hash: hash, user: u}, nil
}

func (v *DemoVerifier) Verify(ctx context.Context, email, password string) (domain.User, error) {
	// Compare the password even on an email mismatch so both paths cost the same.
	pwErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if email != v.email || pwErr != nil {
		return domain.User{}, domain.ErrInvalidCredentials()
	}
	return v.user, nil
}
