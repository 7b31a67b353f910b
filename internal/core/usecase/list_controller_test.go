package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/usecase"
)

func amenityFetcher(pages map[int]domain.Page[domain.Amenity], calls *int) usecase.ListFetcher[domain.Amenity] {
	return func(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error) {
		*calls++
		return pages[page], nil
	}
}

func newAmenityController(dashboard *fakeDashboard, fetch usecase.ListFetcher[domain.Amenity]) *usecase.ListController[domain.Amenity] {
	return usecase.NewListController(
		"AmenityList",
		domain.CounterAmenities,
		dashboard,
		10,
		fetch,
		func(a domain.Amenity, term string) bool { return false },
		func(a domain.Amenity) int64 { return a.ID },
	)
}

func TestListControllerSinglePageBounds(t *testing.T) {
	items := make([]domain.Amenity, 8)
	for i := range items {
		items[i] = domain.Amenity{ID: int64(i + 1), Name: fmt.Sprintf("amenity-%d", i+1)}
	}
	pages := map[int]domain.Page[domain.Amenity]{
		0: {Content: items, TotalPages: 1, TotalElements: 8},
	}

	calls := 0
	dashboard := &fakeDashboard{}
	c := newAmenityController(dashboard, amenityFetcher(pages, &calls))

	require.NoError(t, c.LoadPage(context.Background()))
	assert.Len(t, c.Items(), 8)
	assert.Equal(t, 1, c.TotalPages())
	assert.Equal(t, int64(8), c.TotalElements())
	assert.Equal(t, int64(8), dashboard.Snapshot().AmenityCount)
	assert.Equal(t, 1, calls)

	// На единственной странице Next и Previous не делают запросов
	require.NoError(t, c.Next(context.Background()))
	require.NoError(t, c.Previous(context.Background()))
	assert.Equal(t, 0, c.Page())
	assert.Equal(t, 1, calls)

	// Переход за известные границы отсекается без запроса
	assert.ErrorIs(t, c.GoToPage(context.Background(), 1), domain.ErrPageOutOfRange)
	assert.ErrorIs(t, c.GoToPage(context.Background(), -1), domain.ErrPageOutOfRange)
	assert.Equal(t, 1, calls)
}

func TestListControllerPagination(t *testing.T) {
	pages := map[int]domain.Page[domain.Amenity]{
		0: {Content: []domain.Amenity{{ID: 1}, {ID: 2}}, TotalPages: 2, TotalElements: 3},
		1: {Content: []domain.Amenity{{ID: 3}}, TotalPages: 2, TotalElements: 3},
	}

	calls := 0
	c := newAmenityController(&fakeDashboard{}, amenityFetcher(pages, &calls))

	require.NoError(t, c.LoadPage(context.Background()))
	require.NoError(t, c.Next(context.Background()))
	assert.Equal(t, 1, c.Page())
	assert.Len(t, c.Items(), 1)

	// На последней странице Next ничего не делает
	require.NoError(t, c.Next(context.Background()))
	assert.Equal(t, 1, c.Page())

	require.NoError(t, c.Previous(context.Background()))
	assert.Equal(t, 0, c.Page())
	assert.Len(t, c.Items(), 2)
}

func TestListControllerLoadFailureClearsState(t *testing.T) {
	loadErr := errors.New("platform unavailable")
	failing := false
	fetch := func(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error) {
		if failing {
			return domain.Page[domain.Amenity]{}, loadErr
		}
		return domain.Page[domain.Amenity]{
			Content:       []domain.Amenity{{ID: 1, Name: "Parking"}},
			TotalPages:    1,
			TotalElements: 1,
		}, nil
	}

	dashboard := &fakeDashboard{}
	c := newAmenityController(dashboard, fetch)

	require.NoError(t, c.LoadPage(context.Background()))
	require.Len(t, c.Items(), 1)
	require.Equal(t, int64(1), dashboard.Snapshot().AmenityCount)

	// Сбой очищает список и обнуляет счетчик, повторов нет
	failing = true
	err := c.LoadPage(context.Background())
	assert.ErrorIs(t, err, loadErr)
	assert.Empty(t, c.Items())
	assert.ErrorIs(t, c.Err(), loadErr)
	assert.Equal(t, int64(0), dashboard.Snapshot().AmenityCount)

	failing = false
	require.NoError(t, c.LoadPage(context.Background()))
	assert.NoError(t, c.Err())
	assert.Len(t, c.Items(), 1)
}

func TestListControllerSearchWithinPage(t *testing.T) {
	api := &fakePlatformAPI{
		listProperties: func(ctx context.Context, page, size int) (domain.Page[domain.Property], error) {
			return domain.Page[domain.Property]{
				Content: []domain.Property{
					{ID: 1, PropertyName: "Sunrise Villa", Category: domain.CategoryResidential, Address: domain.Address{Area: "Baner"}},
					{ID: 2, PropertyName: "Office Block", Category: domain.CategoryCommercial, Address: domain.Address{Area: "Kothrud"}},
					{ID: 3, PropertyName: "Corner Plot", Category: domain.CategoryPlot, Address: domain.Address{Area: "Baner"}},
				},
				TotalPages:    1,
				TotalElements: 3,
			}, nil
		},
	}

	c := usecase.NewPropertyListController(api, &fakeDashboard{})
	require.NoError(t, c.LoadPage(context.Background()))

	// Поиск регистронезависимый, по имени, району и категории
	c.SetSearch("SUNRISE")
	visible := c.VisibleItems()
	require.Len(t, visible, 1)
	assert.Equal(t, int64(1), visible[0].ID)

	c.SetSearch("baner")
	assert.Len(t, c.VisibleItems(), 2)

	c.SetSearch("")
	assert.Len(t, c.VisibleItems(), 3)
}

func TestListControllerCategoryFilter(t *testing.T) {
	api := &fakePlatformAPI{
		listProperties: func(ctx context.Context, page, size int) (domain.Page[domain.Property], error) {
			return domain.Page[domain.Property]{
				Content: []domain.Property{
					{ID: 1, Category: domain.CategoryResidential},
					{ID: 2, Category: domain.CategoryCommercial},
					{ID: 3, Category: domain.CategoryResidential},
				},
				TotalPages:    1,
				TotalElements: 3,
			}, nil
		},
	}

	c := usecase.NewPropertyListController(api, &fakeDashboard{})
	require.NoError(t, c.LoadPage(context.Background()))

	c.SetCategoryFilter("residential")
	assert.Len(t, c.VisibleItems(), 2)

	c.SetCategoryFilter("COMMERCIAL")
	assert.Len(t, c.VisibleItems(), 1)

	// "all" равносильно отсутствию фильтра
	c.SetCategoryFilter("all")
	assert.Len(t, c.VisibleItems(), 3)
}

func TestListControllerRowMenuSingleOpen(t *testing.T) {
	c := newAmenityController(&fakeDashboard{}, func(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error) {
		return domain.Page[domain.Amenity]{
			Content:       []domain.Amenity{{ID: 1}, {ID: 2}},
			TotalPages:    1,
			TotalElements: 2,
		}, nil
	})
	require.NoError(t, c.LoadPage(context.Background()))

	c.ToggleRowMenu(1)
	assert.True(t, c.RowMenuOpen(1))

	// Открытие другого меню закрывает первое
	c.ToggleRowMenu(2)
	assert.False(t, c.RowMenuOpen(1))
	assert.True(t, c.RowMenuOpen(2))

	c.ToggleRowMenu(2)
	assert.False(t, c.RowMenuOpen(2))

	// Перезагрузка страницы закрывает все меню
	c.ToggleRowMenu(1)
	require.NoError(t, c.LoadPage(context.Background()))
	assert.False(t, c.RowMenuOpen(1))
}

func TestCustomerListCountsOnlyCustomers(t *testing.T) {
	api := &fakePlatformAPI{
		listUsers: func(ctx context.Context, page, size int) (domain.Page[domain.User], error) {
			return domain.Page[domain.User]{
				Content: []domain.User{
					{ID: 1, UserRole: "CUSTOMER"},
					{ID: 2, UserRole: "BROKER"},
					{ID: 3, UserRole: "CUSTOMER"},
				},
				TotalPages:    1,
				TotalElements: 3,
			}, nil
		},
	}

	dashboard := &fakeDashboard{}
	c := usecase.NewCustomerListController(api, dashboard)
	require.NoError(t, c.LoadPage(context.Background()))

	assert.Equal(t, int64(2), dashboard.Snapshot().CustomerCount)
}

func TestSubscriptionDeactivateMarksRows(t *testing.T) {
	api := &fakePlatformAPI{
		listSubscriptions: func(ctx context.Context, page, size int) (domain.Page[domain.Subscription], error) {
			return domain.Page[domain.Subscription]{
				Content: []domain.Subscription{
					{ID: 1, UserID: 7, PackageID: 3, Status: domain.StatusActive},
					{ID: 2, UserID: 7, PackageID: 4, Status: domain.StatusActive},
				},
				TotalPages:    1,
				TotalElements: 2,
			}, nil
		},
		checkAndDeactivate: func(ctx context.Context, userID, packageID int64) (string, error) {
			return "Subscription deactivated successfully", nil
		},
	}

	c := usecase.NewSubscriptionListController(api, &fakeDashboard{})
	require.NoError(t, c.LoadPage(context.Background()))

	message, err := c.Deactivate(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, "Subscription deactivated successfully", message)

	// Помечается только совпавшая пара, без перезагрузки страницы
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.StatusInactive, items[0].Status)
	assert.Equal(t, domain.StatusActive, items[1].Status)
}
