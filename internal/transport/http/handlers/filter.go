package handlers

import (
	"net/http"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/validate"
)

type FilterHandler struct {
	store *catalog.Store
}

func NewFilterHandler(store *catalog.Store) *FilterHandler {
	return &FilterHandler{store: store}
}

func (h *FilterHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, dto.ToCriteriaResp(h.store.Criteria()))
}

// Put updates category and/or query. The whole request is validated before
// either criterion changes.
func (h *FilterHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterReq
	if err := validate.Body(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	if req.Category != nil {
		c, err := domain.ParseCategoryFilter(*req.Category)
		if err != nil {
			response.Err(w, r, err)
			return
		}
		if err := h.store.SetSelectedCategory(c); err != nil {
			response.Err(w, r, err)
			return
		}
	}
	if req.Query != nil {
		h.store.SetSearchQuery(*req.Query)
	}

	response.Data(w, http.StatusOK, dto.ToCriteriaResp(h.store.Criteria()))
}
