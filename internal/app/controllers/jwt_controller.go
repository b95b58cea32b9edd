package controllers

import (
	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/code"
	"shopdesk-http-service/internal/error/response"
)

// InterfaceJWTController defines the auth controller interface
type InterfaceJWTController interface {
	Login()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Code    int         `json:"code" example:"100000"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    int         `json:"code" example:"100004"`
	Message string      `json:"message" example:"invalid token"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a Gin handler dispatching to the auth controller
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Login processes a console login
// @Summary      Console Login
// @Description  Authenticate a console account and return a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  LoginResponse  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	db := c.Container.GetDB()
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	var admin models.Admin
	if err := db.Where("username = ?", req.Username).First(&admin).Error; err == nil {
		if admin.CheckPassword(req.Password) {
			token, err := jwtService.GenerateToken(admin.ID, string(admin.Role))
			if err != nil {
				response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to generate token", nil)
				return
			}

			response.Success(c.Ctx, gin.H{
				"token":      token,
				"user_id":    admin.ID,
				"role":       admin.Role,
				"username":   admin.Username,
				"created_at": admin.CreatedAt,
			})
			return
		}
	}

	response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
}
