package router

import (
	"github.com/labstack/echo/v4"

	"vroomza/internal/adapter/api/handler"
	"vroomza/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.Use(middleware.UploadRateLimit())

	files.POST("/vehicle-image", fileHandler.UploadVehicleImage)
	files.POST("/vehicle-images", fileHandler.UploadVehicleImages)
	files.POST("/profile-photo", fileHandler.UploadProfilePhoto)
	files.DELETE("", fileHandler.DeleteFile)

	e.GET("/v1/vehicles/:id/images", fileHandler.ListVehicleImages)
}
