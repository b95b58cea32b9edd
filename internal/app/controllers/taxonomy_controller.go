package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceTaxonomyController defines the taxonomy controller interface
type InterfaceTaxonomyController interface {
	GetStoreTypes()
	GetCuisines()
}

// TaxonomyController serves the store type / cuisine classification
type TaxonomyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTaxonomyController creates a new taxonomy controller
func NewTaxonomyController(ctx *gin.Context, container *container.ServiceContainer) *TaxonomyController {
	return &TaxonomyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTaxonomyFunc returns a Gin handler dispatching to the taxonomy controller
func HandleTaxonomyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTaxonomyController(ctx, container)

		switch method {
		case "getStoreTypes":
			controller.GetStoreTypes()
		case "getCuisines":
			controller.GetCuisines()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetStoreTypes lists all store types
// @Summary      List store types
// @Description  Get all store types
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /taxonomy/types [get]
func (c *TaxonomyController) GetStoreTypes() {
	taxonomyService := c.Container.GetService("taxonomy").(services.InterfaceTaxonomyService)
	types, err := taxonomyService.GetStoreTypes()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list store types: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, types)
}

// 2. GetCuisines lists cuisines, scoped to the selected types
// @Summary      List cuisines
// @Description  Get cuisines; pass type_ids to scope the list to selected store types
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        type_ids query string false "Comma separated store type ids"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /taxonomy/cuisines [get]
func (c *TaxonomyController) GetCuisines() {
	var typeIDs []uint
	if raw := c.Ctx.Query("type_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				response.ParamError(c.Ctx, "invalid type id: "+part)
				return
			}
			typeIDs = append(typeIDs, uint(id))
		}
	}

	taxonomyService := c.Container.GetService("taxonomy").(services.InterfaceTaxonomyService)
	cuisines, err := taxonomyService.GetCuisines(typeIDs)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list cuisines: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, cuisines)
}
