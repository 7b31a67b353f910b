package rest

import (
	"errors"
	"net/http"

	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/usecase"
)

type CustomerHandlers struct {
	list *usecase.CustomerListController
}

func NewCustomerHandlers(list *usecase.CustomerListController) *CustomerHandlers {
	return &CustomerHandlers{list: list}
}

// HandleList - обработчик для GET /api/v1/customers
func (h *CustomerHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := applyListQuery(r, h.list.ListController); err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) || errors.Is(err, errInvalidPageParam) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeListState(w, h.list.ListController, toUserDTO)
}

// HandleNext - обработчик для POST /api/v1/customers/next
func (h *CustomerHandlers) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.list.Next(r.Context())
	writeListState(w, h.list.ListController, toUserDTO)
}

// HandlePrevious - обработчик для POST /api/v1/customers/previous
func (h *CustomerHandlers) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.list.Previous(r.Context())
	writeListState(w, h.list.ListController, toUserDTO)
}
