package usecase

import (
	"context"
	"strings"
	"sync"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

// PackageFormController - форма тарифного пакета. Без id работает в
// режиме создания, с id подтягивает пакет и обновляет его.
type PackageFormController struct {
	mu  sync.Mutex
	api port.PlatformAPIPort

	id  int64
	pkg domain.Package
}

func NewPackageFormController(api port.PlatformAPIPort) *PackageFormController {
	return &PackageFormController{
		api: api,
		pkg: domain.Package{UserRole: "BROKER"},
	}
}

// Load переводит форму в режим редактирования пакета.
func (c *PackageFormController) Load(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "PackageForm.Load",
		"package_id": id,
	})
	ucLogger.Info("Use case started", nil)

	pkg, err := c.api.GetPackage(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load package", err, nil)
		return err
	}

	c.mu.Lock()
	c.id = id
	c.pkg = *pkg
	c.mu.Unlock()

	ucLogger.Info("Use case finished", nil)
	return nil
}

// SetFields замещает редактируемые поля целиком. Форма маленькая и
// плоская, посеточные сеттеры здесь не окупаются.
func (c *PackageFormController) SetFields(pkg domain.Package) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id
	c.pkg = pkg
	c.pkg.ID = id
}

// Package возвращает текущее содержимое формы.
func (c *PackageFormController) Package() domain.Package {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pkg
}

// Submit проверяет поля и создает либо обновляет пакет.
func (c *PackageFormController) Submit(ctx context.Context) (usecases_port.FieldErrors, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "PackageForm.Submit"})
	ucLogger.Info("Use case started", nil)

	c.mu.Lock()
	errs := usecases_port.FieldErrors{}
	if strings.TrimSpace(c.pkg.PackageName) == "" {
		errs["packageName"] = "Please enter the package name"
	}
	if c.pkg.Price <= 0 {
		errs["price"] = "Please enter a valid price"
	}
	if c.pkg.DurationDays <= 0 {
		errs["durationDays"] = "Please enter a valid duration"
	}
	if c.pkg.UserRole != "BROKER" && c.pkg.UserRole != "OWNER" {
		errs["userRole"] = "Please select a role"
	}

	if len(errs) > 0 {
		c.mu.Unlock()
		ucLogger.Info("Submit blocked by validation", port.Fields{"errors_count": len(errs)})
		return errs, domain.ErrValidationFailed
	}

	pkg := c.pkg
	id := c.id
	c.mu.Unlock()

	if id == 0 {
		if _, err := c.api.AddPackage(ctx, pkg); err != nil {
			ucLogger.Error("Failed to add package", err, nil)
			return nil, err
		}
	} else {
		if err := c.api.UpdatePackage(ctx, id, pkg); err != nil {
			ucLogger.Error("Failed to update package", err, nil)
			return nil, err
		}
	}

	ucLogger.Info("Use case finished", nil)
	return nil, nil
}
