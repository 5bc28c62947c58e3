package domain

type SessionStatus string

const (
	StatusAnonymous      SessionStatus = "anonymous"
	StatusAuthenticating SessionStatus = "authenticating"
	StatusAuthenticated  SessionStatus = "authenticated"
)

// Session is the whole auth state. IsAuthenticated mirrors User != nil.
type Session struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
}

func AnonymousSession() Session { return Session{} }

func AuthenticatedSession(u User) Session {
	return Session{User: &u, IsAuthenticated: true}
}

func (s Session) Status() SessionStatus {
	switch {
	case s.IsLoading:
		return StatusAuthenticating
	case s.User != nil:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// Normalize re-derives IsAuthenticated from User and clears IsLoading.
func (s Session) Normalize() Session {
	out := Session{IsAuthenticated: s.User != nil}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

// Clone deep-copies the user pointer.
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
