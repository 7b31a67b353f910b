package usecases_port

import (
	"context"

	"admin-console-service/internal/core/domain"
)

type GetPropertyDetailsUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.Property, error)
}
