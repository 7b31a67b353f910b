package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"admin-console-service/internal/core/usecase"
)

var errInvalidPageParam = errors.New("invalid page parameter")

// Общая обвязка шести списочных ручек: разбор query-параметров,
// загрузка страницы и сериализация состояния контроллера.

// applyListQuery применяет search/category/page из запроса и загружает
// страницу. Ошибка загрузки не возвращается наверх: контроллер уже
// хранит ее в своем состоянии, и она уйдет в ответе.
func applyListQuery[T any](r *http.Request, ctrl *usecase.ListController[T]) error {
	q := r.URL.Query()
	if q.Has("search") {
		ctrl.SetSearch(q.Get("search"))
	}
	if q.Has("category") {
		ctrl.SetCategoryFilter(q.Get("category"))
	}

	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return errInvalidPageParam
		}
		if err := ctrl.GoToPage(r.Context(), page); err != nil {
			return err
		}
		return nil
	}

	ctrl.LoadPage(r.Context())
	return nil
}

// writeListState отдает видимые строки вместе с пагинацией и ошибкой
// последней загрузки, если она была.
func writeListState[T any, D any](w http.ResponseWriter, ctrl *usecase.ListController[T], toDTO func(T) D) {
	items := ctrl.VisibleItems()
	dtos := make([]D, len(items))
	for i, item := range items {
		dtos[i] = toDTO(item)
	}

	state := listStateDTO[D]{
		Items:         dtos,
		Page:          ctrl.Page(),
		TotalPages:    ctrl.TotalPages(),
		TotalElements: ctrl.TotalElements(),
	}
	if err := ctrl.Err(); err != nil {
		state.Error = err.Error()
	}

	RespondWithJSON(w, http.StatusOK, state)
}

// parseIDParam читает числовой идентификатор из пути.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
