package port

import "admin-console-service/internal/core/domain"

// DashboardStorePort - контейнер счетчиков дашборда. Не глобальный
// синглтон: экземпляр создается при сборке приложения и передается
// каждому списочному контроллеру явно.
type DashboardStorePort interface {
	// Update сливает именованные счетчики в агрегат по ключам,
	// последний писатель по каждому ключу побеждает.
	Update(delta domain.CounterDelta)

	// Snapshot возвращает копию текущего агрегата.
	Snapshot() domain.DashboardAggregate
}
