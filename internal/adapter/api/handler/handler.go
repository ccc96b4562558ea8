package handler

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/domain/repository"
	"taruvae/internal/domain/service"
	"taruvae/internal/usecase"
	"taruvae/pkg/response"
)

var (
	productHandler  *ProductHandler
	categoryHandler *CategoryHandler
	orderHandler    *OrderHandler
	blogHandler     *BlogHandler
	reviewHandler   *ReviewHandler
	addressHandler  *AddressHandler
	userHandler     *UserHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	orderUseCase *usecase.OrderUseCase,
	blogUseCase *usecase.BlogUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	addressUseCase *usecase.AddressUseCase,
	userUseCase *usecase.UserUseCase,
	upiService *service.UPIService,
) {
	productHandler = NewProductHandler(productUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	addressHandler = NewAddressHandler(addressUseCase)
	userHandler = NewUserHandler(userUseCase)
	orderHandler = NewOrderHandler(orderUseCase, upiService)
}

func GetProductHandler() *ProductHandler   { return productHandler }
func GetCategoryHandler() *CategoryHandler { return categoryHandler }
func GetOrderHandler() *OrderHandler       { return orderHandler }
func GetBlogHandler() *BlogHandler         { return blogHandler }
func GetReviewHandler() *ReviewHandler     { return reviewHandler }
func GetAddressHandler() *AddressHandler   { return addressHandler }
func GetUserHandler() *UserHandler         { return userHandler }

// respondWrite surfaces a degraded (mirror-only) write through the message
// text only; status and shape match a full remote success.
func respondWrite(c echo.Context, data interface{}, res repository.WriteResult) error {
	if res.Message != "" {
		return response.SuccessWithMessage(c, data, res.Message)
	}
	return response.Success(c, data)
}

func respondCreated(c echo.Context, data interface{}, res repository.WriteResult) error {
	return response.CreatedWithMessage(c, data, res.Message)
}
