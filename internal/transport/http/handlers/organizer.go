package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/validate"
)

// OrganizerHandler serves the dashboard. Every route sits behind
// AuthMiddleware.Require.
type OrganizerHandler struct {
	store *catalog.Store
}

func NewOrganizerHandler(store *catalog.Store) *OrganizerHandler {
	return &OrganizerHandler{store: store}
}

func (h *OrganizerHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.User(r)
	if !ok {
		response.Err(w, r, domain.ErrUnauthorized("login required"))
		return
	}

	var req dto.EventReq
	if err := validate.Body(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	e, err := h.store.AddEvent(req.ToEventInput(u))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	zlog.Info().Str("event_id", e.ID).Str("organizer_id", u.ID).Msg("event created")
	response.Data(w, http.StatusCreated, dto.ToEventResp(e, false))
}

// Update replaces the editable fields. The event keeps its organizer even
// when an admin edits it.
func (h *OrganizerHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, u, ok := h.managed(w, r)
	if !ok {
		return
	}

	var req dto.EventReq
	if err := validate.Body(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	owner := domain.User{ID: existing.OrganizerID, Name: existing.Organizer}
	next := domain.NewEvent(existing.ID, req.ToEventInput(owner))

	updated, found, err := h.store.UpdateEvent(next)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	if !found {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return
	}
	zlog.Info().Str("event_id", updated.ID).Str("actor_id", u.ID).Msg("event updated")
	response.Data(w, http.StatusOK, dto.ToEventResp(updated, h.store.IsLiked(updated.ID)))
}

func (h *OrganizerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, u, ok := h.managed(w, r)
	if !ok {
		return
	}
	if !h.store.DeleteEvent(existing.ID) {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return
	}
	zlog.Info().Str("event_id", existing.ID).Str("actor_id", u.ID).Msg("event deleted")
	w.WriteHeader(http.StatusNoContent)
}

// ListMine returns the caller's events with their totals.
func (h *OrganizerHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.User(r)
	if !ok {
		response.Err(w, r, domain.ErrUnauthorized("login required"))
		return
	}
	response.Data(w, http.StatusOK, dto.OrganizerResp{
		Items: dto.ToEventResps(h.store.ByOrganizer(u.ID), h.store.IsLiked),
		Stats: dto.ToStatsResp(h.store.Stats(u.ID)),
	})
}

// managed loads the path event and checks the caller may change it. It
// writes the error response itself.
func (h *OrganizerHandler) managed(w http.ResponseWriter, r *http.Request) (domain.Event, domain.User, bool) {
	u, ok := middleware.User(r)
	if !ok {
		response.Err(w, r, domain.ErrUnauthorized("login required"))
		return domain.Event{}, domain.User{}, false
	}
	e, ok := h.store.Get(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return domain.Event{}, domain.User{}, false
	}
	if !domain.CanManage(&u, e) {
		response.Err(w, r, domain.ErrForbidden("only the organizer or an admin can change this event"))
		return domain.Event{}, domain.User{}, false
	}
	return e, u, true
}
