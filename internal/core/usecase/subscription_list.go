package usecase

import (
	"context"
	"strconv"
	"strings"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// SubscriptionListController - список подписок пользователей на пакеты.
type SubscriptionListController struct {
	*ListController[domain.Subscription]
	api port.PlatformAPIPort
}

func NewSubscriptionListController(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *SubscriptionListController {
	base := NewListController(
		"SubscriptionList",
		domain.CounterSubscribers,
		dashboard,
		constants.DefaultPageSize,
		api.ListSubscriptions,
		matchSubscription,
		func(s domain.Subscription) int64 { return s.ID },
	)
	return &SubscriptionListController{ListController: base, api: api}
}

func matchSubscription(s domain.Subscription, term string) bool {
	return strings.Contains(strconv.FormatFloat(s.Price, 'f', -1, 64), term) ||
		strings.Contains(strings.ToLower(s.PaymentType), term) ||
		strings.Contains(strings.ToLower(string(s.Status)), term) ||
		strings.Contains(strings.ToLower(s.Role), term)
}

// Deactivate запускает серверную деактивацию и возвращает сообщение
// платформы. Страница не перезагружается: подходящие строки текущей
// выдачи помечаются INACTIVE на месте, как и делала консоль.
func (c *SubscriptionListController) Deactivate(ctx context.Context, userID, packageID int64) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"controller": "SubscriptionList",
		"user_id":    userID,
		"package_id": packageID,
	})

	message, err := c.api.CheckAndDeactivateSubscription(ctx, userID, packageID)
	if err != nil {
		ucLogger.Error("Failed to deactivate subscription", err, nil)
		return "", err
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].UserID == userID && c.items[i].PackageID == packageID {
			c.items[i].Status = domain.StatusInactive
		}
	}
	c.mu.Unlock()

	ucLogger.Info("Subscription deactivated", nil)
	return message, nil
}
