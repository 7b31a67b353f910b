package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/usecase"
)

type RequirementHandlers struct {
	list *usecase.RequirementListController
	form *usecase.RequirementEditController
}

func NewRequirementHandlers(list *usecase.RequirementListController, form *usecase.RequirementEditController) *RequirementHandlers {
	return &RequirementHandlers{list: list, form: form}
}

// HandleList - обработчик для GET /api/v1/requirements
func (h *RequirementHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := applyListQuery(r, h.list.ListController); err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) || errors.Is(err, errInvalidPageParam) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeListState(w, h.list.ListController, toRequirementDTO)
}

// HandleNext - обработчик для POST /api/v1/requirements/next
func (h *RequirementHandlers) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.list.Next(r.Context())
	writeListState(w, h.list.ListController, toRequirementDTO)
}

// HandlePrevious - обработчик для POST /api/v1/requirements/previous
func (h *RequirementHandlers) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.list.Previous(r.Context())
	writeListState(w, h.list.ListController, toRequirementDTO)
}

// HandleSetStatus - обработчик для PUT /api/v1/requirements/{id}/status
func (h *RequirementHandlers) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSetRequirementStatus"})

	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid requirement id")
		return
	}

	status := domain.EntityStatus(r.URL.Query().Get("status"))
	if status != domain.StatusActive && status != domain.StatusInactive {
		WriteJSONError(w, http.StatusBadRequest, "Field 'status' must be ACTIVE or INACTIVE")
		return
	}

	if err := h.list.SetStatus(r.Context(), id, status); err != nil {
		logger.Error("Failed to set requirement status", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to update requirement status")
		return
	}

	writeListState(w, h.list.ListController, toRequirementDTO)
}

// HandleToggleMenu - обработчик для POST /api/v1/requirements/{id}/menu
func (h *RequirementHandlers) HandleToggleMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid requirement id")
		return
	}

	h.list.ToggleRowMenu(id)
	RespondWithJSON(w, http.StatusOK, map[string]bool{"open": h.list.RowMenuOpen(id)})
}

// HandleFormLoad - обработчик для POST /api/v1/requirement-form/load/{id}
func (h *RequirementHandlers) HandleFormLoad(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleRequirementFormLoad"})

	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid requirement id")
		return
	}

	if err := h.form.Load(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Requirement not found")
			return
		}
		logger.Error("Failed to load requirement form", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to load requirement")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFormFields - обработчик для PUT /api/v1/requirement-form/fields
func (h *RequirementHandlers) HandleFormFields(w http.ResponseWriter, r *http.Request) {
	var reqDTO requirementFormFieldsDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if reqDTO.LookingFor != nil {
		h.form.SetLookingFor(*reqDTO.LookingFor)
	}
	if reqDTO.PropertyType != nil {
		h.form.SetPropertyType(*reqDTO.PropertyType)
	}
	if reqDTO.BHKConfig != nil {
		h.form.SetBHKConfig(*reqDTO.BHKConfig)
	}
	if reqDTO.MinBudget != nil {
		h.form.SetMinBudget(*reqDTO.MinBudget)
	}
	if reqDTO.MaxBudget != nil {
		h.form.SetMaxBudget(*reqDTO.MaxBudget)
	}
	for i, loc := range reqDTO.PreferredLocations {
		h.form.SetLocation(i, loc)
	}
	if reqDTO.AdditionalRequirements != nil {
		h.form.SetAdditionalRequirements(*reqDTO.AdditionalRequirements)
	}
	if reqDTO.PhoneNumber != nil {
		h.form.SetPhoneNumber(*reqDTO.PhoneNumber)
	}
	if reqDTO.UserName != nil {
		h.form.SetUserName(*reqDTO.UserName)
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"fieldErrors": h.form.Errors()})
}

// HandleFormBlur - обработчик для POST /api/v1/requirement-form/blur
func (h *RequirementHandlers) HandleFormBlur(w http.ResponseWriter, r *http.Request) {
	var reqDTO struct {
		Field string `json:"field"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil || reqDTO.Field == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'field' is required")
		return
	}

	h.form.Blur(reqDTO.Field)
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"fieldErrors": h.form.Errors()})
}

// HandleFormSubmit - обработчик для POST /api/v1/requirement-form/submit
func (h *RequirementHandlers) HandleFormSubmit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleRequirementFormSubmit"})

	fieldErrs, err := h.form.Submit(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"fieldErrors": fieldErrs})
			return
		}
		logger.Error("Failed to submit requirement form", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to update requirement")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
