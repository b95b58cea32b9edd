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

// InterfaceUserController defines the shop owner controller interface
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
	UpdateUser()
	DeleteUser()
}

// UserController handles shop owner account requests
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserRequest represents a shop owner account request
type UserRequest struct {
	Username    string `json:"username" binding:"required" example:"somchai"`
	Password    string `json:"password" example:"secret"`
	DisplayName string `json:"display_name" example:"Somchai J."`
	Email       string `json:"email" example:"somchai@example.com"`
	Phone       string `json:"phone" example:"0812345678"`
	Status      string `json:"status" example:"active"` // active, suspended
}

// HandleUserFunc returns a Gin handler dispatching to the user controller
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetUsers lists shop owners
// @Summary      List users
// @Description  Get all shop owner accounts with pagination
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /users [get]
func (c *UserController) GetUsers() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}
	query.Clamp()

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list users: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query.Page, query.PageSize, users))
}

// 2. GetUser gets a single shop owner
// @Summary      Get user
// @Description  Get one shop owner account with their shops
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /users/{id} [get]
func (c *UserController) GetUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(id))
	if err != nil {
		response.NotFound(c.Ctx, "user not found: "+err.Error())
		return
	}

	response.Success(c.Ctx, user)
}

// 3. CreateUser creates a shop owner account
// @Summary      Create user
// @Description  Create a new shop owner account
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user body UserRequest true "Account information"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /users [post]
func (c *UserController) CreateUser() {
	var req UserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}
	if req.Password == "" {
		response.ParamError(c.Ctx, "password is required")
		return
	}

	user := &models.User{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if req.Status != "" {
		user.Status = req.Status
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.CreateUser(user); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUserAlreadyExist, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 4. UpdateUser updates a shop owner account
// @Summary      Update user
// @Description  Update an existing shop owner account
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        user body UserRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /users/{id} [put]
func (c *UserController) UpdateUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	var req UserRequest
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
	if req.DisplayName != "" {
		updates["display_name"] = req.DisplayName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(uint(id), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 5. DeleteUser deletes a shop owner account
// @Summary      Delete user
// @Description  Delete a shop owner account; owners that still hold shops are kept
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /users/{id} [delete]
func (c *UserController) DeleteUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": id})
}
