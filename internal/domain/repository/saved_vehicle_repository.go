package repository

import (
	"context"

	"vroomza/internal/domain/entity"
)

type SavedVehicleRepository interface {
	// Save records a user's like of a vehicle.
	Save(ctx context.Context, userID, vehicleID string) (*entity.SavedVehicle, error)

	// Unsave removes the like; not found is an error.
	Unsave(ctx context.Context, userID, vehicleID string) error

	IsSaved(ctx context.Context, userID, vehicleID string) (bool, error)

	// ListByUserID returns saved vehicles with listing details,
	// skipping listings that have since been soft-deleted.
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.SavedVehicleWithDetails, int64, error)

	CountByUserID(ctx context.Context, userID string) (int64, error)
}
