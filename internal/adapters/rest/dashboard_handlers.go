package rest

import (
	"net/http"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

type DashboardHandlers struct {
	refreshUC usecases_port.DashboardRefreshUseCasePort
	dashboard port.DashboardStorePort
}

func NewDashboardHandlers(refreshUC usecases_port.DashboardRefreshUseCasePort, dashboard port.DashboardStorePort) *DashboardHandlers {
	return &DashboardHandlers{refreshUC: refreshUC, dashboard: dashboard}
}

// HandleGet - обработчик для GET /api/v1/dashboard.
// Отдает текущий агрегат как есть: счетчики могут быть несвежими,
// пока соответствующий список не перечитан.
func (h *DashboardHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toDashboardDTO(h.dashboard.Snapshot()))
}

// HandleRefresh - обработчик для POST /api/v1/dashboard/refresh.
// Согласованный снимок: все шесть доменов опрашиваются за один проход.
func (h *DashboardHandlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleRefresh"})

	aggregate, err := h.refreshUC.Execute(r.Context())
	if err != nil {
		logger.Error("Dashboard refresh failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to refresh dashboard")
		return
	}

	RespondWithJSON(w, http.StatusOK, toDashboardDTO(aggregate))
}
