package usecase

import (
	"context"

	"vroomza/internal/domain/entity"
	"vroomza/internal/domain/repository"
	"vroomza/pkg/errors"
)

type SavedVehicleUseCase struct {
	savedRepo   repository.SavedVehicleRepository
	vehicleRepo repository.VehicleRepository
}

func NewSavedVehicleUseCase(savedRepo repository.SavedVehicleRepository, vehicleRepo repository.VehicleRepository) *SavedVehicleUseCase {
	return &SavedVehicleUseCase{
		savedRepo:   savedRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (uc *SavedVehicleUseCase) SaveVehicle(ctx context.Context, userID, vehicleID string) (*entity.SavedVehicle, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, errors.NotFound("Vehicle", err)
	}

	if vehicle.UserID == userID {
		return nil, errors.BadRequest("You cannot save your own listing", nil)
	}

	return uc.savedRepo.Save(ctx, userID, vehicleID)
}

func (uc *SavedVehicleUseCase) UnsaveVehicle(ctx context.Context, userID, vehicleID string) error {
	return uc.savedRepo.Unsave(ctx, userID, vehicleID)
}

func (uc *SavedVehicleUseCase) IsSaved(ctx context.Context, userID, vehicleID string) (bool, error) {
	return uc.savedRepo.IsSaved(ctx, userID, vehicleID)
}

// ListSavedVehicles returns the user's saved listings, newest first.
// Entries whose vehicle has since been removed are dropped.
func (uc *SavedVehicleUseCase) ListSavedVehicles(ctx context.Context, userID string, limit, offset int) ([]entity.SavedVehicleWithDetails, int64, error) {
	return uc.savedRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *SavedVehicleUseCase) CountSavedVehicles(ctx context.Context, userID string) (int64, error) {
	return uc.savedRepo.CountByUserID(ctx, userID)
}
