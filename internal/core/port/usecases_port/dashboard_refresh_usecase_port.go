package usecases_port

import (
	"context"

	"admin-console-service/internal/core/domain"
)

type DashboardRefreshUseCasePort interface {
	// Execute опрашивает первый лист каждого домена и сливает все
	// шесть счетчиков одним обновлением.
	Execute(ctx context.Context) (domain.DashboardAggregate, error)
}
