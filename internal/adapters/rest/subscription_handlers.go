package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/usecase"
)

type SubscriptionHandlers struct {
	list *usecase.SubscriptionListController
	form *usecase.SubscriptionFormController
}

func NewSubscriptionHandlers(list *usecase.SubscriptionListController, form *usecase.SubscriptionFormController) *SubscriptionHandlers {
	return &SubscriptionHandlers{list: list, form: form}
}

// HandleList - обработчик для GET /api/v1/subscriptions
func (h *SubscriptionHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := applyListQuery(r, h.list.ListController); err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) || errors.Is(err, errInvalidPageParam) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeListState(w, h.list.ListController, toSubscriptionDTO)
}

// HandleNext - обработчик для POST /api/v1/subscriptions/next
func (h *SubscriptionHandlers) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.list.Next(r.Context())
	writeListState(w, h.list.ListController, toSubscriptionDTO)
}

// HandlePrevious - обработчик для POST /api/v1/subscriptions/previous
func (h *SubscriptionHandlers) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.list.Previous(r.Context())
	writeListState(w, h.list.ListController, toSubscriptionDTO)
}

// HandleDeactivate - обработчик для POST /api/v1/subscriptions/deactivate.
// Деактивация - серверный переход на платформе, подходящие строки
// текущей страницы помечаются INACTIVE без перезагрузки.
func (h *SubscriptionHandlers) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDeactivateSubscription"})

	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "Query parameter 'userId' is required")
		return
	}
	packageID, err := strconv.ParseInt(r.URL.Query().Get("packageId"), 10, 64)
	if err != nil || packageID <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "Query parameter 'packageId' is required")
		return
	}

	message, err := h.list.Deactivate(r.Context(), userID, packageID)
	if err != nil {
		logger.Error("Failed to deactivate subscription", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to deactivate subscription")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}

// HandleFormFields - обработчик для PUT /api/v1/subscription-form/fields
func (h *SubscriptionHandlers) HandleFormFields(w http.ResponseWriter, r *http.Request) {
	var reqDTO subscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.form.SetFields(toDomainSubscription(reqDTO))
	RespondWithJSON(w, http.StatusOK, toSubscriptionDTO(h.form.Subscription()))
}

// HandleFormSubmit - обработчик для POST /api/v1/subscription-form/submit
func (h *SubscriptionHandlers) HandleFormSubmit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSubscriptionFormSubmit"})

	fieldErrs, err := h.form.Submit(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"fieldErrors": fieldErrs})
			return
		}
		logger.Error("Failed to submit subscription form", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to add subscription")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
