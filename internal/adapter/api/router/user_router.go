package router

import (
	"github.com/labstack/echo/v4"

	"vroomza/internal/adapter/api/handler"
	"vroomza/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users/me")
	users.Use(authMiddleware.Authenticate)

	users.GET("", userHandler.GetProfile)
	users.PATCH("", userHandler.UpdateProfile)
	users.PUT("/password", userHandler.UpdatePassword)
}
