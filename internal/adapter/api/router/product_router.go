package router

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/adapter/api/handler"
	"taruvae/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	admin := e.Group("/v1/admin/products", adminMiddleware.AdminOnly, rateLimit.Limit("admin_write"))
	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
	admin.PATCH("/:id/stock", productHandler.ToggleStock)
}

func SetupCategoryRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/v1/categories", categoryHandler.ListCategories)

	admin := e.Group("/v1/admin/categories", adminMiddleware.AdminOnly, rateLimit.Limit("admin_write"))
	admin.POST("", categoryHandler.CreateCategory)
	admin.DELETE("/:id", categoryHandler.DeleteCategory)
}
