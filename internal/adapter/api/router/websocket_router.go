package router

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/adapter/api/handler"
	"taruvae/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws", wsHandler.HandleConnection)
}

func SetupUploadRouter(e *echo.Echo, uploadHandler *handler.UploadHandler, adminMiddleware *middleware.AdminMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	e.POST("/v1/admin/uploads", uploadHandler.UploadImage, adminMiddleware.AdminOnly, rateLimit.Limit("admin_write"))
}
