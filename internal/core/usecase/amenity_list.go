package usecase

import (
	"context"
	"errors"
	"strings"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

var errAmenityNameRequired = errors.New("amenity name is required")

// AmenityListController - список удобств. Со стороны консоли список
// только пополняется, удаления и правки нет.
type AmenityListController struct {
	*ListController[domain.Amenity]
	api port.PlatformAPIPort
}

func NewAmenityListController(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *AmenityListController {
	base := NewListController(
		"AmenityList",
		domain.CounterAmenities,
		dashboard,
		constants.DefaultPageSize,
		api.ListAmenities,
		func(a domain.Amenity, term string) bool {
			return strings.Contains(strings.ToLower(a.Name), term)
		},
		func(a domain.Amenity) int64 { return a.ID },
	)
	return &AmenityListController{ListController: base, api: api}
}

// Add создает удобство и возвращает список на нулевую страницу,
// чтобы была видна пополненная выдача.
func (c *AmenityListController) Add(ctx context.Context, name string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"controller": "AmenityList"})

	name = strings.TrimSpace(name)
	if name == "" {
		return errAmenityNameRequired
	}

	if _, err := c.api.AddAmenity(ctx, name); err != nil {
		ucLogger.Error("Failed to add amenity", err, nil)
		return err
	}

	c.mu.Lock()
	c.page = 0
	err := c.loadPageLocked(ctx)
	c.mu.Unlock()
	return err
}
