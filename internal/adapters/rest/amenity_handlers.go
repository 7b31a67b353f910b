package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/usecase"
)

type AmenityHandlers struct {
	list *usecase.AmenityListController
}

func NewAmenityHandlers(list *usecase.AmenityListController) *AmenityHandlers {
	return &AmenityHandlers{list: list}
}

// HandleList - обработчик для GET /api/v1/amenities
func (h *AmenityHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := applyListQuery(r, h.list.ListController); err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) || errors.Is(err, errInvalidPageParam) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeListState(w, h.list.ListController, toAmenityDTO)
}

// HandleNext - обработчик для POST /api/v1/amenities/next
func (h *AmenityHandlers) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.list.Next(r.Context())
	writeListState(w, h.list.ListController, toAmenityDTO)
}

// HandlePrevious - обработчик для POST /api/v1/amenities/previous
func (h *AmenityHandlers) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.list.Previous(r.Context())
	writeListState(w, h.list.ListController, toAmenityDTO)
}

// HandleAdd - обработчик для POST /api/v1/amenities
func (h *AmenityHandlers) HandleAdd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleAddAmenity"})

	var reqDTO struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(reqDTO.Name) == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'name' is required")
		return
	}

	if err := h.list.Add(r.Context(), reqDTO.Name); err != nil {
		logger.Error("Failed to add amenity", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to add amenity")
		return
	}

	writeListState(w, h.list.ListController, toAmenityDTO)
}
