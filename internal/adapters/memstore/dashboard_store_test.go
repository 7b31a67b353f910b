package memstore_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"admin-console-service/internal/adapters/memstore"
	"admin-console-service/internal/core/domain"
)

func TestDashboardStoreMergesByKey(t *testing.T) {
	store := memstore.NewDashboardStore()

	store.Update(domain.CounterDelta{
		domain.CounterProperties:   12,
		domain.CounterRequirements: 4,
	})
	store.Update(domain.CounterDelta{domain.CounterAmenities: 7})

	snapshot := store.Snapshot()
	assert.Equal(t, int64(12), snapshot.PropertyCount)
	assert.Equal(t, int64(4), snapshot.RequirementCount)
	assert.Equal(t, int64(7), snapshot.AmenityCount)

	// Последний писатель по ключу побеждает, прочие ключи не трогаются
	store.Update(domain.CounterDelta{domain.CounterProperties: 0})
	snapshot = store.Snapshot()
	assert.Equal(t, int64(0), snapshot.PropertyCount)
	assert.Equal(t, int64(4), snapshot.RequirementCount)
}

func TestDashboardStoreEmptyDeltaNoop(t *testing.T) {
	store := memstore.NewDashboardStore()
	store.Update(domain.CounterDelta{domain.CounterPackages: 2})

	store.Update(domain.CounterDelta{})
	store.Update(nil)

	assert.Equal(t, int64(2), store.Snapshot().PackageCount)
}

func TestDashboardStoreConcurrentUpdates(t *testing.T) {
	store := memstore.NewDashboardStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			store.Update(domain.CounterDelta{domain.CounterCustomers: v})
		}(int64(i))
	}
	wg.Wait()

	// Итоговое значение принадлежит одному из писателей
	got := store.Snapshot().CustomerCount
	assert.GreaterOrEqual(t, got, int64(0))
	assert.Less(t, got, int64(50))
}
