package router

import (
	"github.com/labstack/echo/v4"

	"vroomza/internal/adapter/api/handler"
	"vroomza/internal/adapter/api/middleware"
)

func SetupSavedVehicleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	savedHandler := handler.GetSavedVehicleHandler()

	saved := e.Group("/v1/saved-vehicles")
	saved.Use(authMiddleware.Authenticate)

	saved.GET("", savedHandler.ListSavedVehicles)
	saved.GET("/count", savedHandler.GetSavedCount)
	saved.GET("/:vehicleId/status", savedHandler.CheckSavedStatus)
	saved.POST("/:vehicleId", savedHandler.SaveVehicle)
	saved.DELETE("/:vehicleId", savedHandler.UnsaveVehicle)
}
