package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	appCtx "github.com/baechuer/real-time-ressys/services/discovery-service/internal/pkg/context"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/response"
)

type ctxKey string

const ctxUser ctxKey = "user"

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionChecker exposes the signed-in user. A token is only honoured while
// its uid is still the current user, so logging out revokes it.
type SessionChecker interface {
	CurrentUser() (domain.User, bool)
}

type AuthMiddleware struct {
	secret   []byte
	issuer   string
	ttl      time.Duration
	sessions SessionChecker
	now      func() time.Time
}

func NewAuth(secret, issuer string, ttl time.Duration, sessions SessionChecker) *AuthMiddleware {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthMiddleware{
		secret:   []byte(secret),
		issuer:   issuer,
		ttl:      ttl,
		sessions: sessions,
		now:      time.Now,
	}
}

// Issue signs an HS256 bearer token for u.
func (a *AuthMiddleware) Issue(u domain.User) (string, time.Time, error) {
	now := a.now().UTC()
	exp := now.Add(a.ttl)
	claims := Claims{
		UserID: u.ID,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func (a *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := appCtx.GetRequestID(r.Context())

		uid, err := a.parse(r)
		if err != nil {
			zlog.Debug().Err(err).Str("request_id", reqID).Msg("auth parse error")
			response.Fail(w, http.StatusUnauthorized, "unauthorized", "unauthorized",
				map[string]string{"reason": err.Error()}, reqID)
			return
		}

		current, ok := a.sessions.CurrentUser()
		if !ok || current.ID != uid {
			response.Fail(w, http.StatusUnauthorized, "unauthorized", "session ended",
				map[string]string{"reason": "token does not match the active session"}, reqID)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUser, current)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *AuthMiddleware) parse(r *http.Request) (string, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing bearer token")
	}
	raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(a.now))
	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", errors.New("invalid token")
	}
	if a.issuer != "" && claims.Issuer != a.issuer {
		return "", errors.New("invalid issuer")
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", errors.New("missing uid")
	}
	return claims.UserID, nil
}

// User returns the signed-in user attached by Require.
func User(r *http.Request) (domain.User, bool) {
	u, ok := r.Context().Value(ctxUser).(domain.User)
	return u, ok
}
