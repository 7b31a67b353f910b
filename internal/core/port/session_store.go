package port

import "admin-console-service/internal/core/domain"

// SessionStorePort - хранилище сессии администратора. Токен переживает
// перезапуск (аналог localStorage у браузерной консоли), проверка
// протухания не делается: невалидный токен обнаружится только ошибкой
// очередного вызова платформы.
type SessionStorePort interface {
	// SetSession сохраняет личность и токен в долговременное хранилище.
	SetSession(user *domain.AdminUser, token string) error

	// ClearSession удаляет и токен, и личность.
	ClearSession() error

	// IsAuthenticated возвращает true, если токен сейчас удерживается.
	IsAuthenticated() bool

	// Token возвращает текущий токен (пустая строка без сессии).
	Token() string

	// CurrentUser возвращает личность или nil.
	CurrentUser() *domain.AdminUser
}
