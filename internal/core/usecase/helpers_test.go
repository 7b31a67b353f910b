package usecase_test

import (
	"context"
	"sync"

	"admin-console-service/internal/core/domain"
)

// fakePlatformAPI - реализация порта платформы на настраиваемых
// функциях. Незаданные операции возвращают нулевые значения.
type fakePlatformAPI struct {
	adminLogin              func(ctx context.Context, email, password string) (*domain.AdminUser, string, error)
	listProperties          func(ctx context.Context, page, size int) (domain.Page[domain.Property], error)
	getProperty             func(ctx context.Context, id int64) (*domain.Property, error)
	updatePropertyStatus    func(ctx context.Context, id int64, status domain.EntityStatus) error
	getPropertyEnums        func(ctx context.Context) (*domain.PropertyEnums, error)
	addProperty             func(ctx context.Context, property domain.Property, images []domain.ImageFile) (*domain.Property, error)
	listAmenities           func(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error)
	addAmenity              func(ctx context.Context, name string) (*domain.Amenity, error)
	listRequirements        func(ctx context.Context, page, size int) (domain.Page[domain.Requirement], error)
	getRequirement          func(ctx context.Context, id int64) (*domain.Requirement, error)
	updateRequirementStatus func(ctx context.Context, id int64, status domain.EntityStatus) error
	updateRequirement       func(ctx context.Context, id int64, requirement domain.Requirement) error
	listPackages            func(ctx context.Context) ([]domain.Package, error)
	getPackage              func(ctx context.Context, id int64) (*domain.Package, error)
	addPackage              func(ctx context.Context, pkg domain.Package) (*domain.Package, error)
	updatePackage           func(ctx context.Context, id int64, pkg domain.Package) error
	listSubscriptions       func(ctx context.Context, page, size int) (domain.Page[domain.Subscription], error)
	addSubscription         func(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error)
	checkAndDeactivate      func(ctx context.Context, userID, packageID int64) (string, error)
	listUsers               func(ctx context.Context, page, size int) (domain.Page[domain.User], error)
}

func (f *fakePlatformAPI) AdminLogin(ctx context.Context, email, password string) (*domain.AdminUser, string, error) {
	if f.adminLogin != nil {
		return f.adminLogin(ctx, email, password)
	}
	return &domain.AdminUser{}, "", nil
}

func (f *fakePlatformAPI) ListProperties(ctx context.Context, page, size int) (domain.Page[domain.Property], error) {
	if f.listProperties != nil {
		return f.listProperties(ctx, page, size)
	}
	return domain.Page[domain.Property]{}, nil
}

func (f *fakePlatformAPI) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	if f.getProperty != nil {
		return f.getProperty(ctx, id)
	}
	return &domain.Property{ID: id}, nil
}

func (f *fakePlatformAPI) UpdatePropertyStatus(ctx context.Context, id int64, status domain.EntityStatus) error {
	if f.updatePropertyStatus != nil {
		return f.updatePropertyStatus(ctx, id, status)
	}
	return nil
}

func (f *fakePlatformAPI) GetPropertyEnums(ctx context.Context) (*domain.PropertyEnums, error) {
	if f.getPropertyEnums != nil {
		return f.getPropertyEnums(ctx)
	}
	return &domain.PropertyEnums{}, nil
}

func (f *fakePlatformAPI) AddProperty(ctx context.Context, property domain.Property, images []domain.ImageFile) (*domain.Property, error) {
	if f.addProperty != nil {
		return f.addProperty(ctx, property, images)
	}
	created := property
	created.ID = 1
	return &created, nil
}

func (f *fakePlatformAPI) ListAmenities(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error) {
	if f.listAmenities != nil {
		return f.listAmenities(ctx, page, size)
	}
	return domain.Page[domain.Amenity]{}, nil
}

func (f *fakePlatformAPI) AddAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	if f.addAmenity != nil {
		return f.addAmenity(ctx, name)
	}
	return &domain.Amenity{ID: 1, Name: name}, nil
}

func (f *fakePlatformAPI) ListRequirements(ctx context.Context, page, size int) (domain.Page[domain.Requirement], error) {
	if f.listRequirements != nil {
		return f.listRequirements(ctx, page, size)
	}
	return domain.Page[domain.Requirement]{}, nil
}

func (f *fakePlatformAPI) GetRequirement(ctx context.Context, id int64) (*domain.Requirement, error) {
	if f.getRequirement != nil {
		return f.getRequirement(ctx, id)
	}
	return &domain.Requirement{ID: id}, nil
}

func (f *fakePlatformAPI) UpdateRequirementStatus(ctx context.Context, id int64, status domain.EntityStatus) error {
	if f.updateRequirementStatus != nil {
		return f.updateRequirementStatus(ctx, id, status)
	}
	return nil
}

func (f *fakePlatformAPI) UpdateRequirement(ctx context.Context, id int64, requirement domain.Requirement) error {
	if f.updateRequirement != nil {
		return f.updateRequirement(ctx, id, requirement)
	}
	return nil
}

func (f *fakePlatformAPI) ListPackages(ctx context.Context) ([]domain.Package, error) {
	if f.listPackages != nil {
		return f.listPackages(ctx)
	}
	return nil, nil
}

func (f *fakePlatformAPI) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	if f.getPackage != nil {
		return f.getPackage(ctx, id)
	}
	return &domain.Package{ID: id}, nil
}

func (f *fakePlatformAPI) AddPackage(ctx context.Context, pkg domain.Package) (*domain.Package, error) {
	if f.addPackage != nil {
		return f.addPackage(ctx, pkg)
	}
	created := pkg
	created.ID = 1
	return &created, nil
}

func (f *fakePlatformAPI) UpdatePackage(ctx context.Context, id int64, pkg domain.Package) error {
	if f.updatePackage != nil {
		return f.updatePackage(ctx, id, pkg)
	}
	return nil
}

func (f *fakePlatformAPI) ListSubscriptions(ctx context.Context, page, size int) (domain.Page[domain.Subscription], error) {
	if f.listSubscriptions != nil {
		return f.listSubscriptions(ctx, page, size)
	}
	return domain.Page[domain.Subscription]{}, nil
}

func (f *fakePlatformAPI) AddSubscription(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error) {
	if f.addSubscription != nil {
		return f.addSubscription(ctx, sub)
	}
	created := sub
	created.ID = 1
	return &created, nil
}

func (f *fakePlatformAPI) CheckAndDeactivateSubscription(ctx context.Context, userID, packageID int64) (string, error) {
	if f.checkAndDeactivate != nil {
		return f.checkAndDeactivate(ctx, userID, packageID)
	}
	return "", nil
}

func (f *fakePlatformAPI) ListUsers(ctx context.Context, page, size int) (domain.Page[domain.User], error) {
	if f.listUsers != nil {
		return f.listUsers(ctx, page, size)
	}
	return domain.Page[domain.User]{}, nil
}

// fakeDashboard запоминает все дельты для проверок в тестах.
type fakeDashboard struct {
	mu      sync.Mutex
	agg     domain.DashboardAggregate
	updates []domain.CounterDelta
}

func (d *fakeDashboard) Update(delta domain.CounterDelta) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.updates = append(d.updates, delta)
	d.agg.Apply(delta)
}

func (d *fakeDashboard) Snapshot() domain.DashboardAggregate {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.agg
}

// fakeSession - хранилище сессии в памяти.
type fakeSession struct {
	user   *domain.AdminUser
	token  string
	setErr error
}

func (s *fakeSession) SetSession(user *domain.AdminUser, token string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.user = user
	s.token = token
	return nil
}

func (s *fakeSession) ClearSession() error {
	s.user = nil
	s.token = ""
	return nil
}

func (s *fakeSession) IsAuthenticated() bool { return s.token != "" }

func (s *fakeSession) Token() string { return s.token }

func (s *fakeSession) CurrentUser() *domain.AdminUser { return s.user }
