package router

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	SetupHealthRouter(e)
	SetupProductRouter(e, adminMiddleware, rateLimit)
	SetupCategoryRouter(e, adminMiddleware, rateLimit)
	SetupOrderRouter(e, adminMiddleware, rateLimit)
	SetupBlogRouter(e, adminMiddleware, rateLimit)
	SetupReviewRouter(e, rateLimit)
	SetupAddressRouter(e)
	SetupUserRouter(e)
}
