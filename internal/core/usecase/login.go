package usecase

import (
	"context"
	"regexp"
	"strings"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// LoginUseCase проверяет учетные данные администратора на платформе
// и сохраняет сессию.
type LoginUseCase struct {
	api     port.PlatformAPIPort
	session port.SessionStorePort
}

func NewLoginUseCase(api port.PlatformAPIPort, session port.SessionStorePort) *LoginUseCase {
	return &LoginUseCase{api: api, session: session}
}

func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*domain.AdminUser, usecases_port.FieldErrors, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "Login"})
	ucLogger.Info("Use case started", nil)

	errs := usecases_port.FieldErrors{}
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = "Please enter your email"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}
	if password == "" {
		errs["password"] = "Please enter your password"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if len(errs) > 0 {
		ucLogger.Info("Login blocked by validation", port.Fields{"errors_count": len(errs)})
		return nil, errs, domain.ErrValidationFailed
	}

	user, token, err := uc.api.AdminLogin(ctx, email, password)
	if err != nil {
		ucLogger.Error("Admin login failed", err, nil)
		return nil, nil, err
	}

	if err := uc.session.SetSession(user, token); err != nil {
		ucLogger.Error("Failed to persist session", err, nil)
		return nil, nil, err
	}

	ucLogger.Info("Use case finished", port.Fields{"admin_id": user.ID})
	return user, nil, nil
}
