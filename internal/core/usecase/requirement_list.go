package usecase

import (
	"context"
	"strings"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// RequirementListController - список заявок "ищу жилье".
type RequirementListController struct {
	*ListController[domain.Requirement]
	api port.PlatformAPIPort
}

func NewRequirementListController(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *RequirementListController {
	base := NewListController(
		"RequirementList",
		domain.CounterRequirements,
		dashboard,
		constants.DefaultPageSize,
		api.ListRequirements,
		matchRequirement,
		func(r domain.Requirement) int64 { return r.ID },
	)
	return &RequirementListController{ListController: base, api: api}
}

func matchRequirement(r domain.Requirement, term string) bool {
	if strings.Contains(strings.ToLower(r.LookingFor), term) ||
		strings.Contains(strings.ToLower(r.PropertyType), term) {
		return true
	}
	for _, loc := range r.PreferredLocations {
		if strings.Contains(strings.ToLower(loc), term) {
			return true
		}
	}
	return false
}

// SetStatus меняет статус заявки и перезагружает текущую страницу.
func (c *RequirementListController) SetStatus(ctx context.Context, id int64, status domain.EntityStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"controller":     "RequirementList",
		"requirement_id": id,
	})

	if err := c.api.UpdateRequirementStatus(ctx, id, status); err != nil {
		ucLogger.Error("Failed to update requirement status", err, nil)
		return err
	}

	return c.LoadPage(ctx)
}
