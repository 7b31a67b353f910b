package rest

import (
	"errors"
	"net/http"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
	"admin-console-service/internal/core/usecase"
)

type PropertyHandlers struct {
	list      *usecase.PropertyListController
	detailsUC usecases_port.GetPropertyDetailsUseCasePort
}

func NewPropertyHandlers(list *usecase.PropertyListController, detailsUC usecases_port.GetPropertyDetailsUseCasePort) *PropertyHandlers {
	return &PropertyHandlers{list: list, detailsUC: detailsUC}
}

// HandleList - обработчик для GET /api/v1/properties
func (h *PropertyHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := applyListQuery(r, h.list.ListController); err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) || errors.Is(err, errInvalidPageParam) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeListState(w, h.list.ListController, toPropertyDTO)
}

// HandleNext - обработчик для POST /api/v1/properties/next
func (h *PropertyHandlers) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.list.Next(r.Context())
	writeListState(w, h.list.ListController, toPropertyDTO)
}

// HandlePrevious - обработчик для POST /api/v1/properties/previous
func (h *PropertyHandlers) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.list.Previous(r.Context())
	writeListState(w, h.list.ListController, toPropertyDTO)
}

// HandleSetStatus - обработчик для PUT /api/v1/properties/{id}/status
func (h *PropertyHandlers) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSetStatus"})

	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	status := domain.EntityStatus(r.URL.Query().Get("status"))
	if status != domain.StatusActive && status != domain.StatusInactive {
		WriteJSONError(w, http.StatusBadRequest, "Field 'status' must be ACTIVE or INACTIVE")
		return
	}

	if err := h.list.SetStatus(r.Context(), id, status); err != nil {
		logger.Error("Failed to set property status", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to update property status")
		return
	}

	writeListState(w, h.list.ListController, toPropertyDTO)
}

// HandleToggleMenu - обработчик для POST /api/v1/properties/{id}/menu
func (h *PropertyHandlers) HandleToggleMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	h.list.ToggleRowMenu(id)
	RespondWithJSON(w, http.StatusOK, map[string]bool{"open": h.list.RowMenuOpen(id)})
}

// HandleDetails - обработчик для GET /api/v1/properties/{id}
func (h *PropertyHandlers) HandleDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDetails"})

	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	property, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Failed to get property details", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to get property details")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyDTO(*property))
}
