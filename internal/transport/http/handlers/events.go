package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/response"
)

const (
	defaultFeatured = 3
	maxFeatured     = 50
)

type EventsHandler struct {
	store   *catalog.Store
	baseURL string
}

func NewEventsHandler(store *catalog.Store, publicBaseURL string) *EventsHandler {
	return &EventsHandler{store: store, baseURL: publicBaseURL}
}

// Filtered returns the derived view under the current criteria.
func (h *EventsHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	items := h.store.Filtered()
	response.Data(w, http.StatusOK, dto.FilteredResp{
		Items:    dto.ToEventResps(items, h.store.IsLiked),
		Total:    len(items),
		Criteria: dto.ToCriteriaResp(h.store.Criteria()),
	})
}

func (h *EventsHandler) All(w http.ResponseWriter, r *http.Request) {
	items := h.store.Events()
	response.Data(w, http.StatusOK, dto.ListResp{
		Items: dto.ToEventResps(items, h.store.IsLiked),
		Total: len(items),
	})
}

func (h *EventsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeatured
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxFeatured {
			response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
				"limit": "must be an integer between 0 and " + strconv.Itoa(maxFeatured),
			}))
			return
		}
		limit = n
	}

	items := h.store.Featured(limit)
	response.Data(w, http.StatusOK, dto.ListResp{
		Items: dto.ToEventResps(items, h.store.IsLiked),
		Total: len(items),
	})
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, ok := h.store.Get(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(e, h.store.IsLiked(e.ID)))
}

// View counts one opening of the event detail.
func (h *EventsHandler) View(w http.ResponseWriter, r *http.Request) {
	e, ok := h.store.IncrementViews(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(e, h.store.IsLiked(e.ID)))
}

func (h *EventsHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	e, ok := h.store.ToggleLike(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(e, h.store.IsLiked(e.ID)))
}

func (h *EventsHandler) Share(w http.ResponseWriter, r *http.Request) {
	e, ok := h.store.Get(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, r, domain.ErrNotFound("event not found"))
		return
	}
	response.Data(w, http.StatusOK, dto.ToShareResp(domain.BuildShareLinks(h.baseURL, e)))
}

func (h *EventsHandler) Likes(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, dto.LikesResp{IDs: h.store.LikedIDs()})
}
