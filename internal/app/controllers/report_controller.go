package controllers

import (
	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InterfaceReportController defines the report controller interface
type InterfaceReportController interface {
	ExportShops()
	ExportBindings()
}

// ReportController serves spreadsheet exports
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleReportFunc returns a Gin handler dispatching to the report controller
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "exportShops":
			controller.ExportShops()
		case "exportBindings":
			controller.ExportBindings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. ExportShops downloads the shop report workbook
// @Summary      Export shops
// @Description  Download all shops as an xlsx workbook
// @Tags         Report
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} binary
// @Failure      500 {object} ErrorResponse
// @Router       /reports/shops [get]
func (c *ReportController) ExportShops() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	buf, filename, err := reportService.ExportShops()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build report: "+err.Error(), nil)
		return
	}

	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(200, xlsxContentType, buf.Bytes())
}

// 2. ExportBindings downloads the device binding report workbook
// @Summary      Export device bindings
// @Description  Download all device bindings as an xlsx workbook
// @Tags         Report
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} binary
// @Failure      500 {object} ErrorResponse
// @Router       /reports/bindings [get]
func (c *ReportController) ExportBindings() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	buf, filename, err := reportService.ExportBindings()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build report: "+err.Error(), nil)
		return
	}

	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(200, xlsxContentType, buf.Bytes())
}
