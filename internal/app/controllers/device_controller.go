package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/app/middleware"
	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceDeviceController defines the device controller interface
type InterfaceDeviceController interface {
	GetDevices()
	GetDevice()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
	GetDeviceStatus()
	GetDeviceShop()
}

// DeviceController handles device management requests
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController creates a new device controller
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeviceRequest represents a device registration request
type DeviceRequest struct {
	DeviceID     string `json:"device_id" example:"POS-0042"`
	DeviceType   string `json:"device_type" example:"pos"`
	SerialNumber string `json:"serial_number" binding:"required" example:"SN-9F27A1"`
}

// HandleDeviceFunc returns a Gin handler dispatching to the device controller
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDevice":
			controller.GetDevice()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		case "getDeviceStatus":
			controller.GetDeviceStatus()
		case "getDeviceShop":
			controller.GetDeviceShop()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetDevices lists devices
// @Summary      List devices
// @Description  Get all devices with pagination, bindings included
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /devices [get]
func (c *DeviceController) GetDevices() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}
	query.Clamp()

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	devices, total, err := deviceService.GetAllDevices(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list devices: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query.Page, query.PageSize, devices))
}

// 2. GetDevice gets a single device
// @Summary      Get device
// @Description  Get one device by id with its binding
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device id")
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.GetDeviceByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDeviceNotFound, nil)
		return
	}

	response.Success(c.Ctx, device)
}

// 3. CreateDevice registers a device
// @Summary      Create device
// @Description  Register a new device; serial numbers are unique
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        device body DeviceRequest true "Device information"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /devices [post]
func (c *DeviceController) CreateDevice() {
	var req DeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	device := &models.Device{
		DeviceID:     req.DeviceID,
		DeviceType:   req.DeviceType,
		SerialNumber: req.SerialNumber,
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	if err := deviceService.CreateDevice(device); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDeviceAlreadyExist, err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/devices")
	response.Success(c.Ctx, device)
}

// 4. UpdateDevice updates a device
// @Summary      Update device
// @Description  Update device fields; the serial number stays unique
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device ID"
// @Param        device body DeviceRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device id")
		return
	}

	var req DeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"serial_number": req.SerialNumber,
	}
	if req.DeviceID != "" {
		updates["device_id"] = req.DeviceID
	}
	if req.DeviceType != "" {
		updates["device_type"] = req.DeviceType
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.UpdateDevice(uint(id), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update device: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/devices")
	response.Success(c.Ctx, device)
}

// 5. DeleteDevice deletes a device
// @Summary      Delete device
// @Description  Delete a device together with its shop binding
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device id")
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	if err := deviceService.DeleteDevice(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete device: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/devices")
	response.Success(c.Ctx, gin.H{"deleted": id})
}

// 6. GetDeviceStatus gets the last reported status
// @Summary      Get device status
// @Description  Get the last status the device reported over the status feed
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /devices/{id}/status [get]
func (c *DeviceController) GetDeviceStatus() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device id")
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	status, err := deviceService.GetDeviceStatus(uint(id))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDeviceNotFound, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"id": id, "status": status})
}

// 7. GetDeviceShop gets the shop a device is bound to
// @Summary      Get device shop
// @Description  Get the shop a device is currently bound to
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /devices/{id}/shop [get]
func (c *DeviceController) GetDeviceShop() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device id")
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	shop, err := deviceService.GetDeviceShop(uint(id))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, shop)
}
