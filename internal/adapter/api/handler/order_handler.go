package handler

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/service"
	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
	"taruvae/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
	upiService   *service.UPIService
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, upiService *service.UPIService) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		upiService:   upiService,
	}
}

type checkoutItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type checkoutRequest struct {
	Name          string                `json:"name" validate:"required"`
	Email         string                `json:"email" validate:"required,email"`
	Phone         string                `json:"phone" validate:"required,len=10,numeric"`
	Line1         string                `json:"line1" validate:"required"`
	Line2         string                `json:"line2"`
	City          string                `json:"city" validate:"required"`
	State         string                `json:"state" validate:"required"`
	Pincode       string                `json:"pincode" validate:"required,len=6,numeric"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=upi cod"`
	Items         []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.CheckoutItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, res, err := h.orderUseCase.Checkout(c.Request().Context(), usecase.CheckoutInput{
		Customer: entity.Customer{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		ShippingAddress: entity.ShippingAddress{
			Line1:   req.Line1,
			Line2:   req.Line2,
			City:    req.City,
			State:   req.State,
			Pincode: req.Pincode,
		},
		Items:         items,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return respondCreated(c, order, res)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.Error(c, errors.BadRequest("email query parameter is required", nil))
	}
	return response.Success(c, h.orderUseCase.ListByEmail(c.Request().Context(), email))
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	orders := h.orderUseCase.ListAll(c.Request().Context())

	total := int64(len(orders))
	start := params.Offset
	if start > len(orders) {
		start = len(orders)
	}
	end := start + params.PageSize
	if end > len(orders) {
		end = len(orders)
	}

	return response.Paginated(c, orders[start:end], total, params.Page, params.PageSize)
}

type updateStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	Message        string `json:"message"`
	TrackingNumber string `json:"tracking_number"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, res, err := h.orderUseCase.UpdateStatus(
		c.Request().Context(),
		c.Param("id"),
		req.Status,
		req.Message,
		req.TrackingNumber,
	)
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, order, res)
}

type upiLinkRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	App     string `json:"app" validate:"omitempty,oneof=upi gpay phonepe paytm"`
}

// UPILink builds the deep link a customer follows to pay for an order.
// There is no callback: the redirect is best effort.
func (h *OrderHandler) UPILink(c echo.Context) error {
	var req upiLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), req.OrderID)
	if err != nil {
		return response.Error(c, err)
	}

	link, err := h.upiService.PaymentLink(req.App, order.OrderID, order.Total)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"link": link})
}
