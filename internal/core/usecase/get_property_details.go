package usecase

import (
	"context"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

// GetPropertyDetailsUseCase отдает карточку одного объекта.
type GetPropertyDetailsUseCase struct {
	api port.PlatformAPIPort
}

func NewGetPropertyDetailsUseCase(api port.PlatformAPIPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{api: api}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id int64) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.api.GetProperty(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to get property details", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished", nil)
	return property, nil
}
