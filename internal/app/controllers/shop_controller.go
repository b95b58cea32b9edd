package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/app/middleware"
	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceShopController defines the shop controller interface
type InterfaceShopController interface {
	GetShops()
	GetShop()
	GetShopForm()
	CreateShop()
	UpdateShopForm()
	ApproveShop()
	DeleteShop()
}

// ShopController handles shop management requests
type ShopController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewShopController creates a new shop controller
func NewShopController(ctx *gin.Context, container *container.ServiceContainer) *ShopController {
	return &ShopController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateShopRequest wraps the structured form and the owner assignment
type CreateShopRequest struct {
	models.ShopForm
	OwnerID uint `json:"owner_id"`
}

// ApproveRequest toggles the approval state
type ApproveRequest struct {
	Approved bool `json:"approved"`
}

// HandleShopFunc returns a Gin handler dispatching to the shop controller
func HandleShopFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewShopController(ctx, container)

		switch method {
		case "getShops":
			controller.GetShops()
		case "getShop":
			controller.GetShop()
		case "getShopForm":
			controller.GetShopForm()
		case "createShop":
			controller.CreateShop()
		case "updateShopForm":
			controller.UpdateShopForm()
		case "approveShop":
			controller.ApproveShop()
		case "deleteShop":
			controller.DeleteShop()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetShops lists shops
// @Summary      List shops
// @Description  Get all shops with pagination, optionally filtered by status
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Param        status query string false "Filter by status: active, pending"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /shops [get]
func (c *ShopController) GetShops() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}
	query.Clamp()
	status := models.ShopStatus(c.Ctx.Query("status"))

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	shops, total, err := shopService.GetAllShops(query.Page, query.PageSize, status)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list shops: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query.Page, query.PageSize, shops))
}

// 2. GetShop gets a single shop with relations
// @Summary      Get shop
// @Description  Get one shop by id with all relations
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id} [get]
func (c *ShopController) GetShop() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	shop, err := shopService.GetShopByID(uint(id))
	if err != nil {
		response.NotFound(c.Ctx, "shop not found: "+err.Error())
		return
	}

	response.Success(c.Ctx, shop)
}

// 3. GetShopForm gets the structured edit form of a shop
// @Summary      Get shop form
// @Description  Get the structured edit form of a shop, including the parsed address and an ambiguity flag
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id}/form [get]
func (c *ShopController) GetShopForm() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	form, err := shopService.GetShopForm(uint(id))
	if err != nil {
		response.NotFound(c.Ctx, "shop not found: "+err.Error())
		return
	}

	response.Success(c.Ctx, form)
}

// 4. CreateShop registers a new shop from the structured form
// @Summary      Create shop
// @Description  Register a new shop from the structured form
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        shop body CreateShopRequest true "Shop form"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /shops [post]
func (c *ShopController) CreateShop() {
	var req CreateShopRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	shop, err := shopService.CreateShop(&req.ShopForm, req.OwnerID)
	if err != nil {
		if errors.Is(err, services.ErrNoTypeSelected) {
			response.Fail(c.Ctx, code.ErrNoTypeSelected, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create shop: "+err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, shop)
}

// 5. UpdateShopForm updates a shop from the structured form
// @Summary      Update shop form
// @Description  Replace a shop's editable fields from the structured form
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Param        shop body models.ShopForm true "Shop form"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id}/form [put]
func (c *ShopController) UpdateShopForm() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	var form models.ShopForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	shop, err := shopService.UpdateShopForm(uint(id), &form)
	if err != nil {
		if errors.Is(err, services.ErrNoTypeSelected) {
			response.Fail(c.Ctx, code.ErrNoTypeSelected, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update shop: "+err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, shop)
}

// 6. ApproveShop toggles the approval state
// @Summary      Approve shop
// @Description  Set or clear the approval state of a shop
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Param        approval body ApproveRequest true "Approval state"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id}/approve [put]
func (c *ShopController) ApproveShop() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	var req ApproveRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	shop, err := shopService.SetApproval(uint(id), req.Approved)
	if err != nil {
		response.NotFound(c.Ctx, "shop not found: "+err.Error())
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, shop)
}

// 7. DeleteShop deletes a shop
// @Summary      Delete shop
// @Description  Delete a shop together with its hours, images and device bindings
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /shops/{id} [delete]
func (c *ShopController) DeleteShop() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	shopService := c.Container.GetService("shop").(services.InterfaceShopService)
	if err := shopService.DeleteShop(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete shop: "+err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, gin.H{"deleted": id})
}
