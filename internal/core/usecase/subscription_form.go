package usecase

import (
	"context"
	"strings"
	"sync"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

// SubscriptionFormController - форма создания подписки.
type SubscriptionFormController struct {
	mu  sync.Mutex
	api port.PlatformAPIPort

	sub domain.Subscription
}

func NewSubscriptionFormController(api port.PlatformAPIPort) *SubscriptionFormController {
	return &SubscriptionFormController{
		api: api,
		sub: domain.Subscription{
			Status: domain.StatusActive,
			Role:   "USER",
		},
	}
}

// SetFields замещает поля формы целиком.
func (c *SubscriptionFormController) SetFields(sub domain.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sub = sub
}

// Subscription возвращает текущее содержимое формы.
func (c *SubscriptionFormController) Subscription() domain.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sub
}

// Submit проверяет поля и создает подписку на платформе.
func (c *SubscriptionFormController) Submit(ctx context.Context) (usecases_port.FieldErrors, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SubscriptionForm.Submit"})
	ucLogger.Info("Use case started", nil)

	c.mu.Lock()
	errs := usecases_port.FieldErrors{}
	if c.sub.UserID <= 0 {
		errs["userId"] = "Please enter the user id"
	}
	if c.sub.PackageID <= 0 {
		errs["packageId"] = "Please enter the package id"
	}
	if c.sub.Price <= 0 {
		errs["price"] = "Please enter a valid price"
	}
	if strings.TrimSpace(c.sub.PaymentType) == "" {
		errs["paymentType"] = "Please enter the payment type"
	}
	if strings.TrimSpace(c.sub.StartDate) == "" {
		errs["startDate"] = "Please enter the start date"
	}
	if strings.TrimSpace(c.sub.EndDate) == "" {
		errs["endDate"] = "Please enter the end date"
	} else if c.sub.StartDate != "" && c.sub.EndDate <= c.sub.StartDate {
		// Даты идут строками ISO, лексикографическое сравнение корректно
		errs["endDate"] = "End date should be after the start date"
	}

	if len(errs) > 0 {
		c.mu.Unlock()
		ucLogger.Info("Submit blocked by validation", port.Fields{"errors_count": len(errs)})
		return errs, domain.ErrValidationFailed
	}

	sub := c.sub
	c.mu.Unlock()

	if _, err := c.api.AddSubscription(ctx, sub); err != nil {
		ucLogger.Error("Failed to add subscription", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished", nil)
	return nil, nil
}
