package session

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
)

const DefaultKey = "auth"

// record is the persisted shape:
// {"user":{"id","name","email","role"}|null,"isAuthenticated":bool,"isLoading":bool}
type record struct {
	User            *userRecord `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	IsLoading       bool        `json:"isLoading"`
}

type userRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func encodeSession(s domain.Session) ([]byte, error) {
	r := record{IsAuthenticated: s.IsAuthenticated, IsLoading: s.IsLoading}
	if s.User != nil {
		r.User = &userRecord{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
			Role:  string(s.User.Role),
		}
	}
	return json.Marshal(r)
}

func decodeSession(b []byte) (domain.Session, error) {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.Session{}, err
	}
	s := domain.Session{IsAuthenticated: r.IsAuthenticated, IsLoading: r.IsLoading}
	if r.User != nil {
		if strings.TrimSpace(r.User.ID) == "" {
			return domain.Session{}, errors.New("stored user has no id")
		}
		s.User = &domain.User{
			ID:    r.User.ID,
			Name:  r.User.Name,
			Email: r.User.Email,
			Role:  domain.Role(r.User.Role),
		}
	}
	return s, nil
}
