package port

import (
	"context"

	"admin-console-service/internal/core/domain"
)

// PlatformAPIPort - контракт к REST API платформы объявлений.
// Платформа для консоли черный ящик: все данные живут у нее,
// консоль лишь вызывает перечисленные операции.
type PlatformAPIPort interface {
	// AdminLogin проверяет учетные данные администратора и возвращает
	// личность вместе с токеном сессии.
	AdminLogin(ctx context.Context, email, password string) (*domain.AdminUser, string, error)

	// ListProperties возвращает страницу объектов, отсортированную
	// платформой по убыванию идентификатора.
	ListProperties(ctx context.Context, page, size int) (domain.Page[domain.Property], error)
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
	UpdatePropertyStatus(ctx context.Context, id int64, status domain.EntityStatus) error
	GetPropertyEnums(ctx context.Context) (*domain.PropertyEnums, error)

	// AddProperty отправляет составной multipart-запрос: JSON объекта
	// плюс бинарники изображений. Запрос атомарный, частичных
	// результатов не бывает.
	AddProperty(ctx context.Context, property domain.Property, images []domain.ImageFile) (*domain.Property, error)

	ListAmenities(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error)
	AddAmenity(ctx context.Context, name string) (*domain.Amenity, error)

	ListRequirements(ctx context.Context, page, size int) (domain.Page[domain.Requirement], error)
	GetRequirement(ctx context.Context, id int64) (*domain.Requirement, error)
	UpdateRequirementStatus(ctx context.Context, id int64, status domain.EntityStatus) error
	UpdateRequirement(ctx context.Context, id int64, requirement domain.Requirement) error

	// ListPackages без пагинации: эндпоинт платформы отдает весь
	// список одним массивом.
	ListPackages(ctx context.Context) ([]domain.Package, error)
	GetPackage(ctx context.Context, id int64) (*domain.Package, error)
	AddPackage(ctx context.Context, pkg domain.Package) (*domain.Package, error)
	UpdatePackage(ctx context.Context, id int64, pkg domain.Package) error

	ListSubscriptions(ctx context.Context, page, size int) (domain.Page[domain.Subscription], error)
	AddSubscription(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error)

	// CheckAndDeactivateSubscription - серверный переход, а не правка
	// поля. Возвращает сообщение платформы для показа администратору.
	CheckAndDeactivateSubscription(ctx context.Context, userID, packageID int64) (string, error)

	ListUsers(ctx context.Context, page, size int) (domain.Page[domain.User], error)
}
