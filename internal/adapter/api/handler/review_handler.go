package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reviewRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	Author    string `json:"author"`
}

func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}
	return response.Success(c, h.reviewUseCase.ListByProduct(c.Request().Context(), productID))
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, res, err := h.reviewUseCase.AddReview(c.Request().Context(), usecase.ReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Author:    req.Author,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return respondCreated(c, review, res)
}
