package handler

import (
	"github.com/labstack/echo/v4"

	"vroomza/internal/usecase"
	"vroomza/pkg/errors"
	"vroomza/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type profileResponse struct {
	userResponse
	ProfileComplete bool `json:"profile_complete"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profileResponse{
		userResponse:    toUserResponse(user),
		ProfileComplete: user.ProfileComplete(),
	})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req struct {
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Phone      string `json:"phone"`
		Suburb     string `json:"suburb"`
		City       string `json:"city"`
		Province   string `json:"province"`
		ProfilePic string `json:"profile_pic"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Suburb:     req.Suburb,
		City:       req.City,
		Province:   req.Province,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profileResponse{
		userResponse:    toUserResponse(user),
		ProfileComplete: user.ProfileComplete(),
	})
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.UpdatePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated successfully",
	})
}
