package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/app/middleware"
	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceBindingController defines the device binding controller interface
type InterfaceBindingController interface {
	GetBindingState()
	Bind()
	Unbind()
	SetCCDC()
}

// BindingController handles device-to-shop binding requests
type BindingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBindingController creates a new binding controller
func NewBindingController(ctx *gin.Context, container *container.ServiceContainer) *BindingController {
	return &BindingController{
		Ctx:       ctx,
		Container: container,
	}
}

// BindRequest represents a bind request
type BindRequest struct {
	DeviceID   uint   `json:"device_id" binding:"required" example:"3"`
	DeviceType string `json:"device_type" example:"pos"`
}

// CCDCRequest toggles the CCDC flag of one binding
type CCDCRequest struct {
	DeviceID uint  `json:"device_id" binding:"required" example:"3"`
	CCDC     *bool `json:"ccdc" binding:"required"`
}

// HandleBindingFunc returns a Gin handler dispatching to the binding controller
func HandleBindingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBindingController(ctx, container)

		switch method {
		case "getBindingState":
			controller.GetBindingState()
		case "bind":
			controller.Bind()
		case "unbind":
			controller.Unbind()
		case "setCCDC":
			controller.SetCCDC()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetBindingState returns the bound and available device sets of a shop
// @Summary      Get binding state
// @Description  Get the devices bound to a shop and the devices still free to bind
// @Tags         Binding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /shops/{id}/devices [get]
func (c *BindingController) GetBindingState() {
	shopID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	bindingService := c.Container.GetService("binding").(services.InterfaceBindingService)
	state, err := bindingService.GetBindingState(uint(shopID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to load binding state: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, state)
}

// 2. Bind binds a device to a shop
// @Summary      Bind device
// @Description  Bind a free device to a shop; a device belongs to at most one shop
// @Tags         Binding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Param        binding body BindRequest true "Device to bind"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id}/devices [post]
func (c *BindingController) Bind() {
	shopID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	var req BindRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	bindingService := c.Container.GetService("binding").(services.InterfaceBindingService)
	state, err := bindingService.Bind(uint(shopID), req.DeviceID, req.DeviceType)
	if err != nil {
		if errors.Is(err, services.ErrDeviceAlreadyBound) {
			response.Fail(c.Ctx, code.ErrDeviceAlreadyBound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to bind device: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/devices")
	response.Success(c.Ctx, state)
}

// 3. Unbind removes a device's binding to a shop
// @Summary      Unbind device
// @Description  Release a device from a shop, making it available again
// @Tags         Binding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Param        device_id path int true "Device ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id}/devices/{device_id} [delete]
func (c *BindingController) Unbind() {
	shopID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}
	deviceID, err := strconv.Atoi(c.Ctx.Param("device_id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device id")
		return
	}

	bindingService := c.Container.GetService("binding").(services.InterfaceBindingService)
	state, err := bindingService.Unbind(uint(shopID), uint(deviceID))
	if err != nil {
		if errors.Is(err, services.ErrBindingNotFound) {
			response.Fail(c.Ctx, code.ErrBindingNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to unbind device: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/devices")
	response.Success(c.Ctx, state)
}

// 4. SetCCDC toggles the CCDC flag of one binding
// @Summary      Set CCDC flag
// @Description  Toggle the CCDC flag of a device binding
// @Tags         Binding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Param        flag body CCDCRequest true "Device and flag value"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id}/devices/ccdc [patch]
func (c *BindingController) SetCCDC() {
	shopID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	var req CCDCRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	bindingService := c.Container.GetService("binding").(services.InterfaceBindingService)
	state, err := bindingService.SetCCDC(uint(shopID), req.DeviceID, *req.CCDC)
	if err != nil {
		if errors.Is(err, services.ErrBindingNotFound) {
			response.Fail(c.Ctx, code.ErrBindingNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update binding: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/devices")
	response.Success(c.Ctx, state)
}
