package router

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/adapter/api/handler"
	"taruvae/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	orderHandler := handler.GetOrderHandler()

	e.POST("/v1/checkout", orderHandler.Checkout, rateLimit.Limit("checkout"))
	e.POST("/v1/checkout/upi-link", orderHandler.UPILink)
	e.GET("/v1/orders", orderHandler.ListOrders)
	e.GET("/v1/orders/:id", orderHandler.GetOrder)

	admin := e.Group("/v1/admin/orders", adminMiddleware.AdminOnly, rateLimit.Limit("admin_write"))
	admin.GET("", orderHandler.ListAllOrders)
	admin.PATCH("/:id/status", orderHandler.UpdateStatus)
}
