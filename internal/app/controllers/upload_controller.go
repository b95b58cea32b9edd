package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
	"shopdesk-http-service/pkg/logger"
)

// InterfaceUploadController defines the image upload controller interface
type InterfaceUploadController interface {
	UploadShopImages()
}

// UploadController handles shop image uploads
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController creates a new upload controller
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUploadFunc returns a Gin handler dispatching to the upload controller
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "uploadShopImages":
			controller.UploadShopImages()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. UploadShopImages validates and stores a batch of shop images
// @Summary      Upload shop images
// @Description  Upload up to five images per shop; every file must be an image of at most 5 MiB. The whole batch is rejected if any file fails validation.
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Shop ID"
// @Param        images formData file true "Image files"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /shops/{id}/images [post]
func (c *UploadController) UploadShopImages() {
	shopID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid shop id")
		return
	}

	uploadService, ok := c.Container.GetService("upload").(services.InterfaceUploadService)
	if !ok || uploadService == nil {
		response.FailWithMessage(c.Ctx, code.ErrUploadFailed, "image storage is not available", nil)
		return
	}
	shopService := c.Container.GetService("shop").(services.InterfaceShopService)

	shop, err := shopService.GetShopByID(uint(shopID))
	if err != nil {
		response.NotFound(c.Ctx, "shop not found: "+err.Error())
		return
	}

	form, err := c.Ctx.MultipartForm()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid multipart form: "+err.Error(), nil)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.ParamError(c.Ctx, "no images in request")
		return
	}

	if err := uploadService.ValidateImages(files, len(shop.Images)); err != nil {
		switch {
		case errors.Is(err, services.ErrTooManyImages):
			response.Fail(c.Ctx, code.ErrTooManyImages, nil)
		case errors.Is(err, services.ErrInvalidImageType):
			response.Fail(c.Ctx, code.ErrInvalidImageType, nil)
		case errors.Is(err, services.ErrImageTooLarge):
			response.Fail(c.Ctx, code.ErrImageTooLarge, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrUploadFailed, err.Error(), nil)
		}
		return
	}

	paths, err := uploadService.UploadShopImages(c.Ctx.Request.Context(), uint(shopID), files)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUploadFailed, nil)
		return
	}

	// The images are stored at this point; attaching them to the shop is
	// best effort and reported separately so the client can retry.
	if err := shopService.AttachImages(uint(shopID), paths); err != nil {
		logger.Warning("Stored %d images for shop %d but failed to attach: %v", len(paths), shopID, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "images stored but not attached: "+err.Error(), gin.H{"paths": paths})
		return
	}

	response.Success(c.Ctx, gin.H{"paths": paths})
}
