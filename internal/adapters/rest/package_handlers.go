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

type PackageHandlers struct {
	list *usecase.PackageListController
	form *usecase.PackageFormController
}

func NewPackageHandlers(list *usecase.PackageListController, form *usecase.PackageFormController) *PackageHandlers {
	return &PackageHandlers{list: list, form: form}
}

// HandleList - обработчик для GET /api/v1/packages
func (h *PackageHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := applyListQuery(r, h.list.ListController); err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) || errors.Is(err, errInvalidPageParam) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeListState(w, h.list.ListController, toPackageDTO)
}

// HandleNext - обработчик для POST /api/v1/packages/next
func (h *PackageHandlers) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.list.Next(r.Context())
	writeListState(w, h.list.ListController, toPackageDTO)
}

// HandlePrevious - обработчик для POST /api/v1/packages/previous
func (h *PackageHandlers) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.list.Previous(r.Context())
	writeListState(w, h.list.ListController, toPackageDTO)
}

// HandleFormLoad - обработчик для POST /api/v1/package-form/load/{id}
func (h *PackageHandlers) HandleFormLoad(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePackageFormLoad"})

	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	if err := h.form.Load(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Package not found")
			return
		}
		logger.Error("Failed to load package form", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to load package")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPackageDTO(h.form.Package()))
}

// HandleFormFields - обработчик для PUT /api/v1/package-form/fields
func (h *PackageHandlers) HandleFormFields(w http.ResponseWriter, r *http.Request) {
	var reqDTO packageDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.form.SetFields(toDomainPackage(reqDTO))
	RespondWithJSON(w, http.StatusOK, toPackageDTO(h.form.Package()))
}

// HandleFormSubmit - обработчик для POST /api/v1/package-form/submit
func (h *PackageHandlers) HandleFormSubmit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePackageFormSubmit"})

	fieldErrs, err := h.form.Submit(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"fieldErrors": fieldErrs})
			return
		}
		logger.Error("Failed to submit package form", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to save package")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
