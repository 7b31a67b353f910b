package memstore

import (
	"sync"

	"admin-console-service/internal/core/domain"
)

// DashboardStore - потокобезопасный контейнер счетчиков дашборда.
// Живет в памяти процесса и передается списочным контроллерам явно,
// без скрытого глобального состояния.
type DashboardStore struct {
	mu  sync.RWMutex
	agg domain.DashboardAggregate
}

func NewDashboardStore() *DashboardStore {
	return &DashboardStore{}
}

// Update сливает дельту по ключам: кто последним выбрал свой домен,
// тот и определяет значение его счетчика.
func (s *DashboardStore) Update(delta domain.CounterDelta) {
	if len(delta) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agg.Apply(delta)
}

// Snapshot возвращает копию агрегата.
func (s *DashboardStore) Snapshot() domain.DashboardAggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agg
}
