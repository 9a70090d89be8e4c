package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"vroomza/internal/domain/entity"
	"vroomza/internal/domain/filter"
	"vroomza/internal/usecase"
	"vroomza/pkg/errors"
	"vroomza/pkg/response"
	"vroomza/pkg/utils"
)

type VehicleHandler struct {
	vehicleUseCase *usecase.VehicleUseCase
	savedUseCase   *usecase.SavedVehicleUseCase
}

func NewVehicleHandler(vehicleUseCase *usecase.VehicleUseCase, savedUseCase *usecase.SavedVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{
		vehicleUseCase: vehicleUseCase,
		savedUseCase:   savedUseCase,
	}
}

type vehicleRequest struct {
	Make           string   `json:"make" validate:"required"`
	Model          string   `json:"model" validate:"required"`
	Variant        string   `json:"variant"`
	Year           int      `json:"year" validate:"required,min=1900"`
	Price          float64  `json:"price" validate:"required,min=0"`
	Mileage        string   `json:"mileage" validate:"required"`
	Transmission   string   `json:"transmission" validate:"required"`
	Fuel           string   `json:"fuel" validate:"required"`
	EngineCapacity string   `json:"engine_capacity"`
	BodyType       string   `json:"body_type" validate:"required"`
	Description    string   `json:"description"`
	Images         []string `json:"images" validate:"required"`
	City           string   `json:"city" validate:"required"`
	Province       string   `json:"province" validate:"required"`
}

func (r vehicleRequest) toInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		Make:           r.Make,
		Model:          r.Model,
		Variant:        r.Variant,
		Year:           r.Year,
		Price:          r.Price,
		Mileage:        r.Mileage,
		Transmission:   r.Transmission,
		Fuel:           r.Fuel,
		EngineCapacity: r.EngineCapacity,
		BodyType:       r.BodyType,
		Description:    r.Description,
		Images:         r.Images,
		City:           r.City,
		Province:       r.Province,
	}
}

// queryAmount accepts both plain numbers and formatted amounts
// ("R 500,000"), falling back to the permissive parser when the value
// is not a bare float. Values with no numeric content are absent.
func queryAmount(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return &v
	}
	if v := filter.ParseAmount(raw); v != 0 {
		return &v
	}
	return nil
}

func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryList(c echo.Context, name string) []string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}

// criteriaFromQuery maps browse query parameters onto filter criteria.
// Unparseable numeric values are treated as absent.
func criteriaFromQuery(c echo.Context) filter.Criteria {
	return filter.Criteria{
		Query:             c.QueryParam("q"),
		MinPrice:          queryAmount(c, "min_price"),
		MaxPrice:          queryAmount(c, "max_price"),
		Province:          c.QueryParam("province"),
		BodyTypes:         queryList(c, "body_types"),
		FuelTypes:         queryList(c, "fuel_types"),
		MinYear:           queryInt(c, "min_year"),
		MaxYear:           queryInt(c, "max_year"),
		MinMileage:        queryInt(c, "min_mileage"),
		MaxMileage:        queryInt(c, "max_mileage"),
		Transmission:      c.QueryParam("transmission"),
		EngineCapacityMin: queryFloat(c, "min_engine"),
		EngineCapacityMax: queryFloat(c, "max_engine"),
	}
}

func (h *VehicleHandler) BrowseVehicles(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	criteria := criteriaFromQuery(c)

	vehicles, total, err := h.vehicleUseCase.BrowseVehicles(c.Request().Context(), criteria, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, vehicles, total, pagination.Page, pagination.PageSize)
}

func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	vehicle, err := h.vehicleUseCase.GetVehicleByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	// When the caller is signed in, include whether they saved it.
	if userID, ok := c.Get("uid").(string); ok && userID != "" {
		saved, err := h.savedUseCase.IsSaved(c.Request().Context(), userID, id)
		if err == nil {
			return response.Success(c, map[string]interface{}{
				"vehicle":  vehicle,
				"is_saved": saved,
			})
		}
	}

	return response.Success(c, map[string]interface{}{
		"vehicle": vehicle,
	})
}

// FilterOptions exposes the fixed vocabularies the browse UI filters on.
func (h *VehicleHandler) FilterOptions(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"body_types":    entity.BodyTypes,
		"fuel_types":    entity.FuelTypes,
		"transmissions": entity.Transmissions,
		"provinces":     entity.Provinces,
	})
}

func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vehicle, err := h.vehicleUseCase.CreateVehicle(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vehicle, err := h.vehicleUseCase.UpdateVehicle(c.Request().Context(), id, userID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vehicle)
}

func (h *VehicleHandler) UpdateStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var req struct {
		Status string `json:"status" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vehicle, err := h.vehicleUseCase.ChangeStatus(c.Request().Context(), id, userID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var req struct {
		Reason string `json:"reason" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.vehicleUseCase.DeleteVehicle(c.Request().Context(), id, userID, req.Reason); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Vehicle deleted successfully",
	})
}

func (h *VehicleHandler) ListMyVehicles(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)
	status := c.QueryParam("status")

	vehicles, total, err := h.vehicleUseCase.ListByUserID(c.Request().Context(), userID, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, vehicles, total, pagination.Page, pagination.PageSize)
}
