package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedUseCaseForTest(t *testing.T) (*SavedVehicleUseCase, *VehicleUseCase, string) {
	t.Helper()

	vehicleRepo := newFakeVehicleRepo()
	userRepo := newFakeUserRepo()
	savedRepo := newFakeSavedVehicleRepo(vehicleRepo)

	vehicleUC := NewVehicleUseCase(vehicleRepo, userRepo)
	savedUC := NewSavedVehicleUseCase(savedRepo, vehicleRepo)

	userRepo.Create(context.Background(), completeSeller("seller1"))
	vehicle, err := vehicleUC.CreateVehicle(context.Background(), "seller1", validInput())
	require.NoError(t, err)

	return savedUC, vehicleUC, vehicle.ID
}

func TestSaveAndUnsaveVehicle(t *testing.T) {
	savedUC, _, vehicleID := newSavedUseCaseForTest(t)

	sv, err := savedUC.SaveVehicle(context.Background(), "buyer1", vehicleID)
	require.NoError(t, err)
	assert.Equal(t, "buyer1", sv.UserID)
	assert.Equal(t, vehicleID, sv.VehicleID)

	saved, err := savedUC.IsSaved(context.Background(), "buyer1", vehicleID)
	require.NoError(t, err)
	assert.True(t, saved)

	// Saving twice is rejected.
	_, err = savedUC.SaveVehicle(context.Background(), "buyer1", vehicleID)
	assert.Error(t, err)

	err = savedUC.UnsaveVehicle(context.Background(), "buyer1", vehicleID)
	require.NoError(t, err)

	saved, err = savedUC.IsSaved(context.Background(), "buyer1", vehicleID)
	require.NoError(t, err)
	assert.False(t, saved)

	err = savedUC.UnsaveVehicle(context.Background(), "buyer1", vehicleID)
	assert.Error(t, err)
}

func TestSaveOwnVehicleRejected(t *testing.T) {
	savedUC, _, vehicleID := newSavedUseCaseForTest(t)

	_, err := savedUC.SaveVehicle(context.Background(), "seller1", vehicleID)
	assert.Error(t, err)
}

func TestSaveMissingVehicleRejected(t *testing.T) {
	savedUC, _, _ := newSavedUseCaseForTest(t)

	_, err := savedUC.SaveVehicle(context.Background(), "buyer1", "nope")
	assert.Error(t, err)
}

func TestListSavedSkipsDeletedVehicles(t *testing.T) {
	savedUC, vehicleUC, vehicleID := newSavedUseCaseForTest(t)

	_, err := savedUC.SaveVehicle(context.Background(), "buyer1", vehicleID)
	require.NoError(t, err)

	list, total, err := savedUC.ListSavedVehicles(context.Background(), "buyer1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, vehicleID, list[0].Vehicle.ID)

	err = vehicleUC.DeleteVehicle(context.Background(), vehicleID, "seller1", "No longer for sale")
	require.NoError(t, err)

	list, total, err = savedUC.ListSavedVehicles(context.Background(), "buyer1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, list)

	count, err := savedUC.CountSavedVehicles(context.Background(), "buyer1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
