package handlers

import (
	"net/http"
	"time"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/session"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/metrics"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/validate"
)

// DashboardPath is where clients go after signing in.
const DashboardPath = "/dashboard"

type TokenIssuer interface {
	Issue(u domain.User) (token string, expiresAt time.Time, err error)
}

type AuthHandler struct {
	sessions *session.Store
	tokens   TokenIssuer
}

func NewAuthHandler(sessions *session.Store, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginReq
	if err := validate.Body(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	u, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.RecordAuthAttempt("login", attemptStatus(err))
		response.Err(w, r, err)
		return
	}
	metrics.RecordAuthAttempt("login", "success")
	h.signedIn(w, r, http.StatusOK, u)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReq
	if err := validate.Body(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	u, err := h.sessions.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.RecordAuthAttempt("register", attemptStatus(err))
		response.Err(w, r, err)
		return
	}
	metrics.RecordAuthAttempt("register", "success")
	h.signedIn(w, r, http.StatusCreated, u)
}

// Logout always answers with the anonymous session; a failed erase is
// logged by the store.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	status := "success"
	if err := h.sessions.Logout(r.Context()); err != nil {
		status = "error"
	}
	metrics.RecordAuthAttempt("logout", status)
	response.Data(w, http.StatusOK, dto.ToSessionResp(h.sessions.Session()))
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, dto.ToSessionResp(h.sessions.Session()))
}

func (h *AuthHandler) signedIn(w http.ResponseWriter, r *http.Request, status int, u domain.User) {
	tok, exp, err := h.tokens.Issue(u)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, status, dto.AuthResp{
		Session:   dto.ToSessionResp(h.sessions.Session()),
		Token:     tok,
		TokenType: "Bearer",
		ExpiresAt: exp,
		Redirect:  DashboardPath,
	})
}

func attemptStatus(err error) string {
	switch {
	case domain.Is(err, domain.CodeInvalidCredentials):
		return "invalid_credentials"
	case domain.Is(err, domain.CodeInfrastructure):
		return "infrastructure_error"
	default:
		return "error"
	}
}
