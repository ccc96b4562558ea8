package handler

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return response.Success(c, h.categoryUseCase.List(c.Request().Context()))
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, res, err := h.categoryUseCase.Add(c.Request().Context(), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return respondCreated(c, category, res)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	res, err := h.categoryUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, map[string]interface{}{"deleted": c.Param("id")}, res)
}
