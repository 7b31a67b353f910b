package rest

import (
	"net/http"

	"admin-console-service/internal/core/port"
)

// SessionMiddleware пускает к защищенным маршрутам только при живой
// сессии администратора. Проверки протухания токена нет: невалидный
// токен проявится ошибкой ближайшего вызова платформы.
func SessionMiddleware(session port.SessionStorePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
