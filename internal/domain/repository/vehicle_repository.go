package repository

import (
	"context"

	"vroomza/internal/domain/entity"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)

	// ListAll returns every non-deleted vehicle with the given status
	// (all statuses when empty). Filtering happens in memory above the
	// repository; see internal/domain/filter.
	ListAll(ctx context.Context, status string) ([]*entity.Vehicle, error)

	ListByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]*entity.Vehicle, int64, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	UpdateStatus(ctx context.Context, id string, status string) error
	SoftDelete(ctx context.Context, id string, reason string) error
}
