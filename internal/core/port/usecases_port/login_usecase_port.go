package usecases_port

import (
	"context"

	"admin-console-service/internal/core/domain"
)

// FieldErrors - ошибки валидации по именам полей формы.
type FieldErrors map[string]string

type LoginUseCasePort interface {
	// Execute проверяет поля, обращается к платформе и при успехе
	// сохраняет сессию. FieldErrors непустой только при ошибках
	// клиентской валидации.
	Execute(ctx context.Context, email, password string) (*domain.AdminUser, FieldErrors, error)
}
