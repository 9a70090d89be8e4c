package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"vroomza/internal/adapter/api/handler"
	"vroomza/internal/adapter/api/middleware"
)

func SetupVehicleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	vehicleHandler := handler.GetVehicleHandler()

	vehicles := e.Group("/v1/vehicles")
	vehicles.Use(middleware.GeneralRateLimit())
	vehicles.GET("", vehicleHandler.BrowseVehicles)
	vehicles.GET("/filter-options", vehicleHandler.FilterOptions)

	// Detail view picks up the caller's uid when present so the saved
	// flag can be included.
	vehicleDetail := e.Group("/v1/vehicles")
	vehicleDetail.Use(VerifyToken(authClient))
	vehicleDetail.GET("/:id", vehicleHandler.GetVehicle)

	myVehicles := e.Group("/v1/my-vehicles")
	myVehicles.Use(authMiddleware.Authenticate)
	myVehicles.GET("", vehicleHandler.ListMyVehicles)
	myVehicles.POST("", vehicleHandler.CreateVehicle)
	myVehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
	myVehicles.PATCH("/:id/status", vehicleHandler.UpdateStatus)
	myVehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
}
