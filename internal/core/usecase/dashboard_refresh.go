package usecase

import (
	"context"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// DashboardRefreshUseCase опрашивает первую страницу каждого домена и
// сливает все шесть счетчиков одним обновлением. Без него агрегат
// пополняется только попутно, при заходах на списки, и счетчики могут
// сколь угодно долго оставаться несогласованными между доменами.
type DashboardRefreshUseCase struct {
	api       port.PlatformAPIPort
	dashboard port.DashboardStorePort
}

func NewDashboardRefreshUseCase(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *DashboardRefreshUseCase {
	return &DashboardRefreshUseCase{api: api, dashboard: dashboard}
}

func (uc *DashboardRefreshUseCase) Execute(ctx context.Context) (domain.DashboardAggregate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DashboardRefresh"})
	ucLogger.Info("Use case started", nil)

	size := constants.DefaultPageSize
	delta := domain.CounterDelta{}

	properties, err := uc.api.ListProperties(ctx, 0, size)
	if err != nil {
		ucLogger.Error("Failed to fetch properties for dashboard", err, nil)
		return domain.DashboardAggregate{}, err
	}
	delta[domain.CounterProperties] = properties.TotalElements

	requirements, err := uc.api.ListRequirements(ctx, 0, size)
	if err != nil {
		ucLogger.Error("Failed to fetch requirements for dashboard", err, nil)
		return domain.DashboardAggregate{}, err
	}
	delta[domain.CounterRequirements] = requirements.TotalElements

	amenities, err := uc.api.ListAmenities(ctx, 0, size)
	if err != nil {
		ucLogger.Error("Failed to fetch amenities for dashboard", err, nil)
		return domain.DashboardAggregate{}, err
	}
	delta[domain.CounterAmenities] = amenities.TotalElements

	packages, err := uc.api.ListPackages(ctx)
	if err != nil {
		ucLogger.Error("Failed to fetch packages for dashboard", err, nil)
		return domain.DashboardAggregate{}, err
	}
	delta[domain.CounterPackages] = int64(len(packages))

	subscriptions, err := uc.api.ListSubscriptions(ctx, 0, size)
	if err != nil {
		ucLogger.Error("Failed to fetch subscriptions for dashboard", err, nil)
		return domain.DashboardAggregate{}, err
	}
	delta[domain.CounterSubscribers] = subscriptions.TotalElements

	users, err := uc.api.ListUsers(ctx, 0, size)
	if err != nil {
		ucLogger.Error("Failed to fetch users for dashboard", err, nil)
		return domain.DashboardAggregate{}, err
	}
	var customers int64
	for _, u := range users.Content {
		if u.UserRole == "CUSTOMER" {
			customers++
		}
	}
	delta[domain.CounterCustomers] = customers

	// Все шесть счетчиков сливаются разом, а не по одному
	uc.dashboard.Update(delta)

	snapshot := uc.dashboard.Snapshot()
	ucLogger.Info("Use case finished", port.Fields{
		"property_count":    snapshot.PropertyCount,
		"requirement_count": snapshot.RequirementCount,
	})
	return snapshot, nil
}
