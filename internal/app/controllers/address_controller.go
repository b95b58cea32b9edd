package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceAddressController defines the address hierarchy controller interface
type InterfaceAddressController interface {
	GetProvinces()
	GetDistricts()
	GetSubdistricts()
	GetProvinceTree()
	ResolveZipCode()
}

// AddressController serves the province/district/subdistrict hierarchy
type AddressController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAddressController creates a new address controller
func NewAddressController(ctx *gin.Context, container *container.ServiceContainer) *AddressController {
	return &AddressController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResolveZipRequest asks for the postal code of one hierarchy path
type ResolveZipRequest struct {
	Province    string `json:"province" binding:"required" example:"ตาก"`
	District    string `json:"district" binding:"required" example:"ท่าสองยาง"`
	Subdistrict string `json:"subdistrict" binding:"required" example:"แม่ต้าน"`
}

// HandleAddressFunc returns a Gin handler dispatching to the address controller
func HandleAddressFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAddressController(ctx, container)

		switch method {
		case "getProvinces":
			controller.GetProvinces()
		case "getDistricts":
			controller.GetDistricts()
		case "getSubdistricts":
			controller.GetSubdistricts()
		case "getProvinceTree":
			controller.GetProvinceTree()
		case "resolveZipCode":
			controller.ResolveZipCode()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetProvinces lists all provinces
// @Summary      List provinces
// @Description  Get all provinces of the reference hierarchy
// @Tags         Address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /addresses/provinces [get]
func (c *AddressController) GetProvinces() {
	addressService := c.Container.GetService("address").(services.InterfaceAddressService)
	provinces, err := addressService.GetProvinces()
	if err != nil {
		if errors.Is(err, services.ErrAddressDataUnavailable) {
			response.Fail(c.Ctx, code.ErrAddressDataUnavailable, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list provinces: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, provinces)
}

// 2. GetDistricts lists the districts of one province
// @Summary      List districts
// @Description  Get the districts of one province
// @Tags         Address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Province ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /addresses/provinces/{id}/districts [get]
func (c *AddressController) GetDistricts() {
	provinceID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid province id")
		return
	}

	addressService := c.Container.GetService("address").(services.InterfaceAddressService)
	districts, err := addressService.GetDistricts(uint(provinceID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list districts: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, districts)
}

// 3. GetSubdistricts lists the subdistricts of one district
// @Summary      List subdistricts
// @Description  Get the subdistricts of one district
// @Tags         Address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "District ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /addresses/districts/{id}/subdistricts [get]
func (c *AddressController) GetSubdistricts() {
	districtID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid district id")
		return
	}

	addressService := c.Container.GetService("address").(services.InterfaceAddressService)
	subdistricts, err := addressService.GetSubdistricts(uint(districtID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list subdistricts: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, subdistricts)
}

// 4. GetProvinceTree returns the full cached hierarchy
// @Summary      Get province tree
// @Description  Get the full province/district/subdistrict hierarchy in one response
// @Tags         Address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /addresses/tree [get]
func (c *AddressController) GetProvinceTree() {
	addressService := c.Container.GetService("address").(services.InterfaceAddressService)
	tree, err := addressService.GetProvinceTree()
	if err != nil {
		if errors.Is(err, services.ErrAddressDataUnavailable) {
			response.Fail(c.Ctx, code.ErrAddressDataUnavailable, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to load province tree: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, tree)
}

// 5. ResolveZipCode resolves the postal code of one hierarchy path
// @Summary      Resolve zip code
// @Description  Walk province, district, subdistrict by Thai name and return the postal code
// @Tags         Address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        path body ResolveZipRequest true "Hierarchy path"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /addresses/resolve [post]
func (c *AddressController) ResolveZipCode() {
	var req ResolveZipRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	addressService := c.Container.GetService("address").(services.InterfaceAddressService)
	zip, err := addressService.ResolveZipCode(req.Province, req.District, req.Subdistrict)
	if err != nil {
		if errors.Is(err, services.ErrAddressDataUnavailable) {
			response.Fail(c.Ctx, code.ErrAddressDataUnavailable, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrAddressNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"zip_code": zip})
}
