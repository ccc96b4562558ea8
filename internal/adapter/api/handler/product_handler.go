package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Name          string  `json:"name" validate:"required"`
	Price         int64   `json:"price" validate:"required,gt=0"`
	OriginalPrice int64   `json:"original_price" validate:"omitempty,gt=0"`
	Discount      int     `json:"discount" validate:"omitempty,min=0,max=100"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	Category      string  `json:"category" validate:"required"`
	Size          string  `json:"size"`
	InStock       bool    `json:"in_stock"`
	IsNew         bool    `json:"is_new"`
	IsBestseller  bool    `json:"is_bestseller"`
	IsPrime       bool    `json:"is_prime"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Discount:      r.Discount,
		Image:         r.Image,
		Rating:        r.Rating,
		Category:      r.Category,
		Size:          r.Size,
		InStock:       r.InStock,
		IsNew:         r.IsNew,
		IsBestseller:  r.IsBestseller,
		IsPrime:       r.IsPrime,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products := h.productUseCase.ListProducts(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("search"),
	)
	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, res, err := h.productUseCase.AddProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return respondCreated(c, product, res)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, res, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, product, res)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	res, err := h.productUseCase.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, map[string]interface{}{"deleted": id}, res)
}

func (h *ProductHandler) ToggleStock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	product, res, err := h.productUseCase.ToggleStock(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, product, res)
}
