package handler

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/domain/entity"
	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type userProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,len=10,numeric"`
	Provider string `json:"provider" validate:"required,oneof=email google"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) UpsertProfile(c echo.Context) error {
	var req userProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile := &entity.UserProfile{
		ID:       c.Param("id"),
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Provider: req.Provider,
		PhotoURL: req.PhotoURL,
	}

	res, err := h.userUseCase.UpsertProfile(c.Request().Context(), profile)
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, profile, res)
}
