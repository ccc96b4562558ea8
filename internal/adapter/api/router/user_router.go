package router

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/adapter/api/handler"
)

func SetupAddressRouter(e *echo.Echo) {
	addressHandler := handler.GetAddressHandler()

	addresses := e.Group("/v1/addresses/:owner")
	addresses.GET("", addressHandler.ListAddresses)
	addresses.POST("", addressHandler.CreateAddress)
	addresses.PUT("/:id", addressHandler.UpdateAddress)
	addresses.DELETE("/:id", addressHandler.DeleteAddress)
	addresses.PATCH("/:id/default", addressHandler.SetDefaultAddress)
}

func SetupUserRouter(e *echo.Echo) {
	userHandler := handler.GetUserHandler()

	e.GET("/v1/users/:id", userHandler.GetProfile)
	e.PUT("/v1/users/:id", userHandler.UpsertProfile)
}
