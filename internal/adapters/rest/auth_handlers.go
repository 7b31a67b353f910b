package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

type AuthHandlers struct {
	loginUC usecases_port.LoginUseCasePort
	session port.SessionStorePort
}

func NewAuthHandlers(loginUC usecases_port.LoginUseCasePort, session port.SessionStorePort) *AuthHandlers {
	return &AuthHandlers{loginUC: loginUC, session: session}
}

// HandleLogin - обработчик для POST /api/v1/auth/login
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleLogin"})

	var reqDTO loginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Error("Failed to decode request body", err, nil)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, fieldErrs, err := h.loginUC.Execute(r.Context(), reqDTO.Email, reqDTO.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"fieldErrors": fieldErrs})
			return
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		WriteJSONError(w, http.StatusBadGateway, "Login failed. Please try again.")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user": adminUserDTO{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

// HandleLogout - обработчик для POST /api/v1/auth/logout
func (h *AuthHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleLogout"})

	if err := h.session.ClearSession(); err != nil {
		logger.Error("Failed to clear session", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSession - обработчик для GET /api/v1/auth/session
func (h *AuthHandlers) HandleSession(w http.ResponseWriter, r *http.Request) {
	user := h.session.CurrentUser()
	if user == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user": adminUserDTO{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}
