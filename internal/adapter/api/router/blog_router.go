package router

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/adapter/api/handler"
	"taruvae/internal/adapter/api/middleware"
)

func SetupBlogRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	blogHandler := handler.GetBlogHandler()

	e.GET("/v1/blogs", blogHandler.ListPublished)
	e.GET("/v1/blogs/:slug", blogHandler.GetBySlug)

	admin := e.Group("/v1/admin/blogs", adminMiddleware.AdminOnly, rateLimit.Limit("admin_write"))
	admin.GET("", blogHandler.ListAll)
	admin.POST("", blogHandler.CreatePost)
	admin.PUT("/:id", blogHandler.UpdatePost)
	admin.DELETE("/:id", blogHandler.DeletePost)
}

func SetupReviewRouter(e *echo.Echo, rateLimit *middleware.RateLimitMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/products/:id/reviews", reviewHandler.ListByProduct)
	e.POST("/v1/reviews", reviewHandler.CreateReview, rateLimit.Limit("review"))
}
