package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceAdminController defines the admin controller interface
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController handles console account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdminRequest represents a console account request
type AdminRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" example:"admin123"`
	Email    string `json:"email" example:"admin@example.com"`
	Phone    string `json:"phone" example:"0812345678"`
	Role     string `json:"role" example:"staff"` // admin, staff
}

// HandleAdminFunc returns a Gin handler dispatching to the admin controller
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetAdmins lists console accounts
// @Summary      List admins
// @Description  Get all console accounts with pagination
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /admins [get]
func (c *AdminController) GetAdmins() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}
	query.Clamp()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, total, err := adminService.GetAllAdmins(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list admins: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query.Page, query.PageSize, admins))
}

// 2. GetAdmin gets a single console account
// @Summary      Get admin
// @Description  Get one console account by id
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Admin ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /admins/{id} [get]
func (c *AdminController) GetAdmin() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(uint(id))
	if err != nil {
		response.NotFound(c.Ctx, "admin not found: "+err.Error())
		return
	}

	response.Success(c.Ctx, admin)
}

// 3. CreateAdmin creates a console account
// @Summary      Create admin
// @Description  Create a new console account
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        admin body AdminRequest true "Account information"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /admins [post]
func (c *AdminController) CreateAdmin() {
	var req AdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}
	if req.Password == "" {
		response.ParamError(c.Ctx, "password is required")
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     models.AdminRole(req.Role),
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUserAlreadyExist, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// 4. UpdateAdmin updates a console account
// @Summary      Update admin
// @Description  Update an existing console account
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Admin ID"
// @Param        admin body AdminRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admins/{id} [put]
func (c *AdminController) UpdateAdmin() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	var req AdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"username": req.Username,
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(uint(id), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update admin: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// 5. DeleteAdmin deletes a console account
// @Summary      Delete admin
// @Description  Delete a console account; the last admin cannot be removed
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Admin ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admins/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete admin: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": id})
}
