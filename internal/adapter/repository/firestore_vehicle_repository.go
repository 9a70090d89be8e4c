package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vroomza/internal/domain/entity"
	"vroomza/internal/domain/repository"
	"vroomza/pkg/errors"
)

type firestoreVehicleRepository struct {
	client *firestore.Client
}

func NewFirestoreVehicleRepository(client *firestore.Client) repository.VehicleRepository {
	return &firestoreVehicleRepository{
		client: client,
	}
}

func (r *firestoreVehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if vehicle.ID == "" {
		doc := r.client.Collection("vehicles").NewDoc()
		vehicle.ID = doc.ID
	}

	now := time.Now()
	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = now
	}
	vehicle.UpdatedAt = now

	_, err := r.client.Collection("vehicles").Doc(vehicle.ID).Set(ctx, vehicle)
	if err != nil {
		return errors.Internal("Failed to create vehicle", err)
	}

	return nil
}

func (r *firestoreVehicleRepository) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	doc, err := r.client.Collection("vehicles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vehicle", err)
		}
		return nil, errors.Internal("Failed to get vehicle", err)
	}

	var vehicle entity.Vehicle
	if err := doc.DataTo(&vehicle); err != nil {
		return nil, errors.Internal("Failed to parse vehicle data", err)
	}

	if vehicle.DeletedAt != nil {
		return nil, errors.NotFound("Vehicle", nil)
	}

	return &vehicle, nil
}

func (r *firestoreVehicleRepository) ListAll(ctx context.Context, status string) ([]*entity.Vehicle, error) {
	query := r.client.Collection("vehicles").Query.Where("deletedAt", "==", nil)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var vehicles []*entity.Vehicle

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate vehicles", err)
		}

		var vehicle entity.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			return nil, errors.Internal("Failed to parse vehicle data", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *firestoreVehicleRepository) ListByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]*entity.Vehicle, int64, error) {
	query := r.client.Collection("vehicles").Query.
		Where("userId", "==", userID).
		Where("deletedAt", "==", nil)

	if status != "" {
		query = query.Where("status", "==", status)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count seller vehicles", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var vehicles []*entity.Vehicle

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate seller vehicles", err)
		}

		var vehicle entity.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			return nil, 0, errors.Internal("Failed to parse vehicle data", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, total, nil
}

func (r *firestoreVehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicle.UpdatedAt = time.Now()

	_, err := r.client.Collection("vehicles").Doc(vehicle.ID).Set(ctx, vehicle)
	if err != nil {
		return errors.Internal("Failed to update vehicle", err)
	}

	return nil
}

func (r *firestoreVehicleRepository) UpdateStatus(ctx context.Context, id string, vehicleStatus string) error {
	_, err := r.client.Collection("vehicles").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: vehicleStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Vehicle", err)
		}
		return errors.Internal("Failed to update vehicle status", err)
	}

	return nil
}

func (r *firestoreVehicleRepository) SoftDelete(ctx context.Context, id string, reason string) error {
	now := time.Now()
	_, err := r.client.Collection("vehicles").Doc(id).Update(ctx, []firestore.Update{
		{Path: "deletedAt", Value: now},
		{Path: "deleteReason", Value: reason},
		{Path: "status", Value: entity.VehicleStatusInactive},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Vehicle", err)
		}
		return errors.Internal("Failed to delete vehicle", err)
	}

	return nil
}
