package usecase

import (
	"strings"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// CustomerListController - список пользователей платформы.
// Счетчик дашборда здесь не totalElements: консоль всегда считала
// количество пользователей с ролью CUSTOMER на загруженной странице.
// Семантика спорная, но сохранена как есть.
type CustomerListController struct {
	*ListController[domain.User]
}

func NewCustomerListController(api port.PlatformAPIPort, dashboard port.DashboardStorePort) *CustomerListController {
	base := NewListController(
		"CustomerList",
		domain.CounterCustomers,
		dashboard,
		constants.DefaultPageSize,
		api.ListUsers,
		matchUser,
		func(u domain.User) int64 { return u.ID },
	)
	base.counterValue = func(page domain.Page[domain.User]) int64 {
		var count int64
		for _, u := range page.Content {
			if u.UserRole == "CUSTOMER" {
				count++
			}
		}
		return count
	}
	return &CustomerListController{ListController: base}
}

func matchUser(u domain.User, term string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), term) ||
		strings.Contains(strings.ToLower(u.LastName), term) ||
		strings.Contains(strings.ToLower(u.Email), term) ||
		strings.Contains(strings.ToLower(u.PhoneNumber), term) ||
		strings.Contains(strings.ToLower(u.UserRole), term)
}
