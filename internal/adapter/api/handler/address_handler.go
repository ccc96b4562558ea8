package handler

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

// AddressHandler keys every operation by owner id: an authenticated user id
// or a client-generated guest id, both opaque here.
type AddressHandler struct {
	addressUseCase *usecase.AddressUseCase
}

func NewAddressHandler(addressUseCase *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{
		addressUseCase: addressUseCase,
	}
}

type addressRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,len=10,numeric"`
	Line1   string `json:"line1" validate:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
}

func (r addressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Line1:   r.Line1,
		Line2:   r.Line2,
		City:    r.City,
		State:   r.State,
		Pincode: r.Pincode,
	}
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	return response.Success(c, h.addressUseCase.List(c.Request().Context(), c.Param("owner")))
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	address, res, err := h.addressUseCase.Add(c.Request().Context(), c.Param("owner"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return respondCreated(c, address, res)
}

func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	address, res, err := h.addressUseCase.Update(c.Request().Context(), c.Param("owner"), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, address, res)
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	res, err := h.addressUseCase.Delete(c.Request().Context(), c.Param("owner"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, map[string]interface{}{"deleted": c.Param("id")}, res)
}

func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	res, err := h.addressUseCase.SetDefault(c.Request().Context(), c.Param("owner"), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, h.addressUseCase.List(c.Request().Context(), c.Param("owner")), res)
}
