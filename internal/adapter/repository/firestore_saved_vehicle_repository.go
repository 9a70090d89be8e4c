package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vroomza/internal/domain/entity"
	"vroomza/internal/domain/repository"
	"vroomza/pkg/errors"
	"vroomza/pkg/logger"
)

type firestoreSavedVehicleRepository struct {
	client *firestore.Client
}

func NewFirestoreSavedVehicleRepository(client *firestore.Client) repository.SavedVehicleRepository {
	return &firestoreSavedVehicleRepository{client: client}
}

func savedVehicleDocID(userID, vehicleID string) string {
	return fmt.Sprintf("%s_%s", userID, vehicleID)
}

func (r *firestoreSavedVehicleRepository) Save(ctx context.Context, userID, vehicleID string) (*entity.SavedVehicle, error) {
	exists, err := r.IsSaved(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.BadRequest("Vehicle already saved", nil)
	}

	saved := entity.SavedVehicle{
		ID:        savedVehicleDocID(userID, vehicleID),
		UserID:    userID,
		VehicleID: vehicleID,
		CreatedAt: time.Now(),
	}

	_, err = r.client.Collection("saved_vehicles").Doc(saved.ID).Set(ctx, saved)
	if err != nil {
		return nil, errors.Internal("Failed to save vehicle", err)
	}

	logger.Debug("Saved vehicle %s for user %s", vehicleID, userID)
	return &saved, nil
}

func (r *firestoreSavedVehicleRepository) Unsave(ctx context.Context, userID, vehicleID string) error {
	exists, err := r.IsSaved(ctx, userID, vehicleID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Saved vehicle", nil)
	}

	_, err = r.client.Collection("saved_vehicles").Doc(savedVehicleDocID(userID, vehicleID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to unsave vehicle", err)
	}

	logger.Debug("Unsaved vehicle %s for user %s", vehicleID, userID)
	return nil
}

func (r *firestoreSavedVehicleRepository) IsSaved(ctx context.Context, userID, vehicleID string) (bool, error) {
	doc, err := r.client.Collection("saved_vehicles").Doc(savedVehicleDocID(userID, vehicleID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check saved vehicle", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreSavedVehicleRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.SavedVehicleWithDetails, int64, error) {
	query := r.client.Collection("saved_vehicles").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to get saved vehicles", err)
	}

	var allItems []entity.SavedVehicle
	vehicleIDs := make([]string, 0, len(allDocs))
	for _, doc := range allDocs {
		var item entity.SavedVehicle
		if err := doc.DataTo(&item); err != nil {
			logger.Warn("Skipping unreadable saved vehicle %s: %v", doc.Ref.ID, err)
			continue
		}
		allItems = append(allItems, item)
		vehicleIDs = append(vehicleIDs, item.VehicleID)
	}

	if len(vehicleIDs) == 0 {
		return []entity.SavedVehicleWithDetails{}, 0, nil
	}

	vehicleMap := r.fetchVehicles(ctx, vehicleIDs)

	// Soft-deleted listings drop out of the result and the count.
	var items []entity.SavedVehicleWithDetails
	var visibleCount int64
	for _, item := range allItems {
		vehicle, ok := vehicleMap[item.VehicleID]
		if !ok || vehicle.DeletedAt != nil {
			continue
		}
		visibleCount++

		if int(visibleCount) > offset && (limit <= 0 || len(items) < limit) {
			items = append(items, entity.SavedVehicleWithDetails{
				ID:        item.ID,
				UserID:    item.UserID,
				VehicleID: item.VehicleID,
				Vehicle:   vehicle,
				CreatedAt: item.CreatedAt,
			})
		}
	}

	return items, visibleCount, nil
}

func (r *firestoreSavedVehicleRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("saved_vehicles").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count saved vehicles", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	vehicleIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var item entity.SavedVehicle
		if err := doc.DataTo(&item); err != nil {
			continue
		}
		vehicleIDs = append(vehicleIDs, item.VehicleID)
	}

	vehicleMap := r.fetchVehicles(ctx, vehicleIDs)

	var count int64
	for _, id := range vehicleIDs {
		if vehicle, ok := vehicleMap[id]; ok && vehicle.DeletedAt == nil {
			count++
		}
	}

	return count, nil
}

// fetchVehicles batch-reads vehicle documents, 30 refs per GetAll call
// (the Firestore batch read ceiling). Unreadable batches are skipped so
// one bad read never empties a user's saved list.
func (r *firestoreSavedVehicleRepository) fetchVehicles(ctx context.Context, vehicleIDs []string) map[string]*entity.Vehicle {
	vehicleMap := make(map[string]*entity.Vehicle)

	for i := 0; i < len(vehicleIDs); i += 30 {
		end := i + 30
		if end > len(vehicleIDs) {
			end = len(vehicleIDs)
		}

		batchIDs := vehicleIDs[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batchIDs))
		for j, id := range batchIDs {
			docRefs[j] = r.client.Collection("vehicles").Doc(id)
		}

		vehicleDocs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			logger.Warn("Batch fetching vehicles failed: %v", err)
			continue
		}

		for _, doc := range vehicleDocs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var vehicle entity.Vehicle
			if err := doc.DataTo(&vehicle); err != nil {
				continue
			}
			vehicleMap[doc.Ref.ID] = &vehicle
		}
	}

	return vehicleMap
}
