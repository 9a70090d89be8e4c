package handler

import (
	"github.com/labstack/echo/v4"

	"vroomza/internal/usecase"
	"vroomza/pkg/errors"
	"vroomza/pkg/response"
	"vroomza/pkg/utils"
)

type SavedVehicleHandler struct {
	savedUseCase *usecase.SavedVehicleUseCase
}

func NewSavedVehicleHandler(savedUseCase *usecase.SavedVehicleUseCase) *SavedVehicleHandler {
	return &SavedVehicleHandler{
		savedUseCase: savedUseCase,
	}
}

func (h *SavedVehicleHandler) SaveVehicle(c echo.Context) error {
	userID := c.Get("uid").(string)
	vehicleID := c.Param("vehicleId")

	if vehicleID == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	result, err := h.savedUseCase.SaveVehicle(c.Request().Context(), userID, vehicleID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *SavedVehicleHandler) UnsaveVehicle(c echo.Context) error {
	userID := c.Get("uid").(string)
	vehicleID := c.Param("vehicleId")

	if vehicleID == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	if err := h.savedUseCase.UnsaveVehicle(c.Request().Context(), userID, vehicleID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Vehicle removed from saved list",
	})
}

func (h *SavedVehicleHandler) ListSavedVehicles(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.savedUseCase.ListSavedVehicles(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *SavedVehicleHandler) CheckSavedStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	vehicleID := c.Param("vehicleId")

	if vehicleID == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	saved, err := h.savedUseCase.IsSaved(c.Request().Context(), userID, vehicleID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"vehicle_id": vehicleID,
		"is_saved":   saved,
	})
}

func (h *SavedVehicleHandler) GetSavedCount(c echo.Context) error {
	userID := c.Get("uid").(string)

	count, err := h.savedUseCase.CountSavedVehicles(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"count": count,
	})
}
