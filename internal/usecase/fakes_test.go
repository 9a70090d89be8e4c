package usecase

import (
	"context"
	"fmt"
	"time"

	"vroomza/internal/domain/entity"
	"vroomza/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[string]*entity.Vehicle
	nextID   int
	listErr  error
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[string]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	r.nextID++
	vehicle.ID = fmt.Sprintf("v%d", r.nextID)
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok || vehicle.DeletedAt != nil {
		return nil, errors.NotFound("Vehicle", nil)
	}
	return vehicle, nil
}

func (r *fakeVehicleRepo) ListAll(ctx context.Context, status string) ([]*entity.Vehicle, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*entity.Vehicle
	for i := 1; i <= r.nextID; i++ {
		v, ok := r.vehicles[fmt.Sprintf("v%d", i)]
		if !ok || v.DeletedAt != nil {
			continue
		}
		if status != "" && v.Status != status {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *fakeVehicleRepo) ListByUserID(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Vehicle, int64, error) {
	var result []*entity.Vehicle
	for i := 1; i <= r.nextID; i++ {
		v, ok := r.vehicles[fmt.Sprintf("v%d", i)]
		if !ok || v.DeletedAt != nil || v.UserID != userID {
			continue
		}
		if status != "" && v.Status != status {
			continue
		}
		result = append(result, v)
	}
	return result, int64(len(result)), nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return errors.NotFound("Vehicle", nil)
	}
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) UpdateStatus(ctx context.Context, id, status string) error {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return errors.NotFound("Vehicle", nil)
	}
	vehicle.Status = status
	return nil
}

func (r *fakeVehicleRepo) SoftDelete(ctx context.Context, id, reason string) error {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return errors.NotFound("Vehicle", nil)
	}
	now := time.Now()
	vehicle.DeletedAt = &now
	vehicle.DeleteReason = reason
	vehicle.Status = entity.VehicleStatusInactive
	return nil
}

type fakeSavedVehicleRepo struct {
	saved       map[string]*entity.SavedVehicle
	vehicleRepo *fakeVehicleRepo
}

func newFakeSavedVehicleRepo(vehicleRepo *fakeVehicleRepo) *fakeSavedVehicleRepo {
	return &fakeSavedVehicleRepo{
		saved:       make(map[string]*entity.SavedVehicle),
		vehicleRepo: vehicleRepo,
	}
}

func savedKey(userID, vehicleID string) string {
	return userID + "_" + vehicleID
}

func (r *fakeSavedVehicleRepo) Save(ctx context.Context, userID, vehicleID string) (*entity.SavedVehicle, error) {
	key := savedKey(userID, vehicleID)
	if _, ok := r.saved[key]; ok {
		return nil, errors.BadRequest("Vehicle already saved", nil)
	}
	sv := &entity.SavedVehicle{
		ID:        key,
		UserID:    userID,
		VehicleID: vehicleID,
		CreatedAt: time.Now(),
	}
	r.saved[key] = sv
	return sv, nil
}

func (r *fakeSavedVehicleRepo) Unsave(ctx context.Context, userID, vehicleID string) error {
	key := savedKey(userID, vehicleID)
	if _, ok := r.saved[key]; !ok {
		return errors.NotFound("Saved vehicle", nil)
	}
	delete(r.saved, key)
	return nil
}

func (r *fakeSavedVehicleRepo) IsSaved(ctx context.Context, userID, vehicleID string) (bool, error) {
	_, ok := r.saved[savedKey(userID, vehicleID)]
	return ok, nil
}

func (r *fakeSavedVehicleRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.SavedVehicleWithDetails, int64, error) {
	var result []entity.SavedVehicleWithDetails
	for _, sv := range r.saved {
		if sv.UserID != userID {
			continue
		}
		vehicle, err := r.vehicleRepo.GetByID(ctx, sv.VehicleID)
		if err != nil {
			continue
		}
		result = append(result, entity.SavedVehicleWithDetails{
			ID:        sv.ID,
			UserID:    sv.UserID,
			VehicleID: sv.VehicleID,
			Vehicle:   vehicle,
			CreatedAt: sv.CreatedAt,
		})
	}
	return result, int64(len(result)), nil
}

func (r *fakeSavedVehicleRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, sv := range r.saved {
		if sv.UserID != userID {
			continue
		}
		if _, err := r.vehicleRepo.GetByID(ctx, sv.VehicleID); err != nil {
			continue
		}
		count++
	}
	return count, nil
}

type fakeAuthClient struct {
	users     map[string]string
	passwords map[string]string
	nextUID   int
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		users:     make(map[string]string),
		passwords: make(map[string]string),
	}
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	c.nextUID++
	uid := fmt.Sprintf("uid%d", c.nextUID)
	c.users[email] = uid
	c.passwords[email] = password
	return uid, nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	for email, uid := range c.users {
		if token == "token-"+email {
			return uid, nil
		}
	}
	return "", errors.Unauthorized("Invalid token", nil)
}

func (c *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	for email, id := range c.users {
		if id == uid {
			c.passwords[email] = newPassword
			return nil
		}
	}
	return errors.NotFound("User", nil)
}

func (c *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	for email, id := range c.users {
		if id == uid {
			delete(c.users, email)
			delete(c.passwords, email)
			return nil
		}
	}
	return errors.NotFound("User", nil)
}

func (c *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	stored, ok := c.passwords[email]
	if !ok || stored != password {
		return "", "", errors.Unauthorized("Invalid credentials", nil)
	}
	return "token-" + email, "refresh-" + email, nil
}

func (c *fakeAuthClient) RefreshIDToken(refreshToken string) (string, string, error) {
	for email := range c.users {
		if refreshToken == "refresh-"+email {
			return "token-" + email, "refresh-" + email, nil
		}
	}
	return "", "", errors.Unauthorized("Invalid refresh token", nil)
}
