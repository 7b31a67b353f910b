package usecase

import (
	"context"
	"strings"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// PackageListController - список тарифных пакетов. Эндпоинт платформы
// отдает весь список одним массивом, поэтому пагинация считается на
// нашей стороне поверх полного ответа.
type PackageListController struct {
	*ListController[domain.Package]
}

func NewPackageListController(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *PackageListController {
	fetch := func(ctx context.Context, page, size int) (domain.Page[domain.Package], error) {
		all, err := api.ListPackages(ctx)
		if err != nil {
			return domain.Page[domain.Package]{}, err
		}

		totalPages := (len(all) + size - 1) / size
		start := page * size
		if start > len(all) {
			start = len(all)
		}
		end := start + size
		if end > len(all) {
			end = len(all)
		}

		return domain.Page[domain.Package]{
			Content:       all[start:end],
			TotalPages:    totalPages,
			TotalElements: int64(len(all)),
		}, nil
	}

	base := NewListController(
		"PackageList",
		domain.CounterPackages,
		dashboard,
		constants.DefaultPageSize,
		fetch,
		func(p domain.Package, term string) bool {
			return strings.Contains(strings.ToLower(p.PackageName), term)
		},
		func(p domain.Package) int64 { return p.ID },
	)
	return &PackageListController{ListController: base}
}
