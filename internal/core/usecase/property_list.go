package usecase

import (
	"context"
	"strings"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// PropertyListController - список объектов недвижимости.
// Поиск идет по имени, району и категории, фильтр по категории отдельный.
type PropertyListController struct {
	*ListController[domain.Property]
	api port.PlatformAPIPort
}

func NewPropertyListController(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *PropertyListController {
	base := NewListController(
		"PropertyList",
		domain.CounterProperties,
		dashboard,
		constants.DefaultPageSize,
		api.ListProperties,
		matchProperty,
		func(p domain.Property) int64 { return p.ID },
	)
	base.categoryOf = func(p domain.Property) string { return string(p.Category) }
	return &PropertyListController{ListController: base, api: api}
}

func matchProperty(p domain.Property, term string) bool {
	return strings.Contains(strings.ToLower(p.PropertyName), term) ||
		strings.Contains(strings.ToLower(p.Address.Area), term) ||
		strings.Contains(strings.ToLower(string(p.Category)), term)
}

// SetStatus меняет статус объекта на платформе и безусловно
// перезагружает текущую страницу. Оптимистичных правок нет: после
// мутации список всегда совпадает с сервером ценой одного запроса.
func (c *PropertyListController) SetStatus(ctx context.Context, id int64, status domain.EntityStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"controller":  "PropertyList",
		"property_id": id,
	})

	if err := c.api.UpdatePropertyStatus(ctx, id, status); err != nil {
		ucLogger.Error("Failed to update property status", err, nil)
		return err
	}

	return c.LoadPage(ctx)
}
