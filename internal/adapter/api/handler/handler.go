package handler

import (
	"vroomza/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	vehicleHandler      *VehicleHandler
	savedVehicleHandler *SavedVehicleHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	vehicleUseCase *usecase.VehicleUseCase,
	savedVehicleUseCase *usecase.SavedVehicleUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	vehicleHandler = NewVehicleHandler(vehicleUseCase, savedVehicleUseCase)
	savedVehicleHandler = NewSavedVehicleHandler(savedVehicleUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetVehicleHandler() *VehicleHandler {
	return vehicleHandler
}

func GetSavedVehicleHandler() *SavedVehicleHandler {
	return savedVehicleHandler
}
