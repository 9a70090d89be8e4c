package usecase

import (
	"context"
	"fmt"
	"time"

	"vroomza/internal/domain/entity"
	"vroomza/internal/domain/filter"
	"vroomza/internal/domain/repository"
	"vroomza/pkg/errors"
	"vroomza/pkg/logger"
)

type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
}

func NewVehicleUseCase(vehicleRepo repository.VehicleRepository, userRepo repository.UserRepository) *VehicleUseCase {
	return &VehicleUseCase{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
	}
}

type VehicleInput struct {
	Make           string
	Model          string
	Variant        string
	Year           int
	Price          float64
	Mileage        string
	Transmission   string
	Fuel           string
	EngineCapacity string
	BodyType       string
	Description    string
	Images         []string
	City           string
	Province       string
}

func validateVehicleInput(input VehicleInput) error {
	if !entity.IsValidBodyType(input.BodyType) {
		return errors.BadRequest("Invalid body type", nil)
	}
	if !entity.IsValidFuelType(input.Fuel) {
		return errors.BadRequest("Invalid fuel type", nil)
	}
	if !entity.IsValidTransmission(input.Transmission) {
		return errors.BadRequest("Invalid transmission", nil)
	}
	if input.Province != "" && !entity.IsValidProvince(input.Province) {
		return errors.BadRequest("Invalid province", nil)
	}
	if input.Price < 0 {
		return errors.BadRequest("Price cannot be negative", nil)
	}
	if len(input.Images) < entity.MinListingImages || len(input.Images) > entity.MaxListingImages {
		return errors.BadRequest(
			fmt.Sprintf("A listing requires between %d and %d images", entity.MinListingImages, entity.MaxListingImages), nil)
	}
	return nil
}

// CreateVehicle publishes a new listing. The seller's contact and
// location fields are copied onto the vehicle record at this point and
// are not kept in sync with later profile edits.
func (uc *VehicleUseCase) CreateVehicle(ctx context.Context, userID string, input VehicleInput) (*entity.Vehicle, error) {
	seller, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	if !seller.ProfileComplete() {
		return nil, errors.BadRequest("Complete your profile before listing a vehicle", nil)
	}

	if err := validateVehicleInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		UserID:         userID,
		Make:           input.Make,
		Model:          input.Model,
		Variant:        input.Variant,
		Year:           input.Year,
		Price:          input.Price,
		Mileage:        input.Mileage,
		Transmission:   input.Transmission,
		Fuel:           input.Fuel,
		EngineCapacity: input.EngineCapacity,
		BodyType:       input.BodyType,
		Description:    input.Description,
		Images:         input.Images,
		City:           input.City,
		Province:       input.Province,

		SellerName:       seller.FullName(),
		SellerEmail:      seller.Email,
		SellerPhone:      seller.Phone,
		SellerSuburb:     seller.Suburb,
		SellerCity:       seller.City,
		SellerProvince:   seller.Province,
		SellerProfilePic: seller.ProfilePic,

		Status:    entity.VehicleStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (uc *VehicleUseCase) UpdateVehicle(ctx context.Context, id string, userID string, input VehicleInput) (*entity.Vehicle, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if vehicle.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to update this vehicle", nil)
	}

	if err := validateVehicleInput(input); err != nil {
		return nil, err
	}

	// The seller snapshot is intentionally left untouched.
	vehicle.Make = input.Make
	vehicle.Model = input.Model
	vehicle.Variant = input.Variant
	vehicle.Year = input.Year
	vehicle.Price = input.Price
	vehicle.Mileage = input.Mileage
	vehicle.Transmission = input.Transmission
	vehicle.Fuel = input.Fuel
	vehicle.EngineCapacity = input.EngineCapacity
	vehicle.BodyType = input.BodyType
	vehicle.Description = input.Description
	vehicle.Images = input.Images
	vehicle.City = input.City
	vehicle.Province = input.Province
	vehicle.UpdatedAt = time.Now()

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (uc *VehicleUseCase) GetVehicleByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	return uc.vehicleRepo.GetByID(ctx, id)
}

// BrowseVehicles fetches all active listings and evaluates the filter
// criteria in memory, paginating after the filter pass. A backend read
// failure is logged and surfaces as an empty page rather than an error.
func (uc *VehicleUseCase) BrowseVehicles(ctx context.Context, criteria filter.Criteria, page, pageSize int) ([]*entity.Vehicle, int64, error) {
	vehicles, err := uc.vehicleRepo.ListAll(ctx, entity.VehicleStatusActive)
	if err != nil {
		logger.Error("Failed to fetch vehicles for browse: %v", err)
		return []*entity.Vehicle{}, 0, nil
	}

	matched := filter.Apply(vehicles, criteria)
	total := int64(len(matched))

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []*entity.Vehicle{}, total, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func (uc *VehicleUseCase) ListByUserID(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Vehicle, int64, error) {
	_, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, errors.BadRequest("Invalid seller", err)
	}

	return uc.vehicleRepo.ListByUserID(ctx, userID, status, limit, offset)
}

func (uc *VehicleUseCase) ChangeStatus(ctx context.Context, id string, userID string, status string) (*entity.Vehicle, error) {
	switch status {
	case entity.VehicleStatusActive, entity.VehicleStatusSold, entity.VehicleStatusInactive:
	default:
		return nil, errors.BadRequest("Invalid status", nil)
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if vehicle.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to update this vehicle", nil)
	}

	if err := uc.vehicleRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	vehicle.Status = status
	vehicle.UpdatedAt = time.Now()
	return vehicle, nil
}

// DeleteVehicle soft-deletes a listing. The record stays in storage
// with the deletion reason and timestamp; it disappears from reads.
func (uc *VehicleUseCase) DeleteVehicle(ctx context.Context, id string, userID string, reason string) error {
	if reason == "" {
		return errors.BadRequest("A deletion reason is required", nil)
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if vehicle.UserID != userID {
		return errors.Forbidden("You don't have permission to delete this vehicle", nil)
	}

	return uc.vehicleRepo.SoftDelete(ctx, id, reason)
}
