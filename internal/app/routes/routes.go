package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "shopdesk-http-service/docs"
	"shopdesk-http-service/internal/app/controllers"
	"shopdesk-http-service/internal/app/middleware"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	middleware.InitAuthMiddleware(cfg, db)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no authentication
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	health := controllers.NewHealthCheckController(container)
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Status)

	api.POST("/auth/login", middleware.PathRateLimiter(5, 10), controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind the auth middleware
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Console account routes, admin role only
	adminGroup := auth.Group("/admins")
	adminGroup.Use(middleware.AuthenticateSystemAdmin())
	adminGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	// Shop owner routes
	userGroup := auth.Group("/users")
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	userGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	userGroup.POST("", controllers.HandleUserFunc(container, "createUser"))
	userGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// Shop routes
	shopGroup := auth.Group("/shops")
	{
		shopGroup.GET("", controllers.HandleShopFunc(container, "getShops"))
		shopGroup.GET("/:id", controllers.HandleShopFunc(container, "getShop"))
		shopGroup.GET("/:id/form", controllers.HandleShopFunc(container, "getShopForm"))
		shopGroup.POST("", controllers.HandleShopFunc(container, "createShop"))
		shopGroup.PUT("/:id/form", controllers.HandleShopFunc(container, "updateShopForm"))
		shopGroup.PUT("/:id/approve", controllers.HandleShopFunc(container, "approveShop"))
		shopGroup.DELETE("/:id", controllers.HandleShopFunc(container, "deleteShop"))

		// Device bindings of one shop
		shopGroup.GET("/:id/devices", controllers.HandleBindingFunc(container, "getBindingState"))
		shopGroup.POST("/:id/devices", controllers.HandleBindingFunc(container, "bind"))
		shopGroup.DELETE("/:id/devices/:device_id", controllers.HandleBindingFunc(container, "unbind"))
		shopGroup.PATCH("/:id/devices/ccdc", controllers.HandleBindingFunc(container, "setCCDC"))

		// Image uploads, limited per client and path
		shopGroup.POST("/:id/images", middleware.CombinedRateLimiter(1, 5), controllers.HandleUploadFunc(container, "uploadShopImages"))
	}

	// Device routes
	devicesGroup := auth.Group("/devices")
	{
		devicesGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleDeviceFunc(container, "getDevices"))
		devicesGroup.GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
		devicesGroup.POST("", controllers.HandleDeviceFunc(container, "createDevice"))
		devicesGroup.PUT("/:id", controllers.HandleDeviceFunc(container, "updateDevice"))
		devicesGroup.DELETE("/:id", controllers.HandleDeviceFunc(container, "deleteDevice"))
		devicesGroup.GET("/:id/status", controllers.HandleDeviceFunc(container, "getDeviceStatus"))
		devicesGroup.GET("/:id/shop", controllers.HandleDeviceFunc(container, "getDeviceShop"))
	}

	// Address hierarchy routes, reference data changes rarely
	addressGroup := auth.Group("/addresses")
	addressGroup.GET("/provinces", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Hour}), controllers.HandleAddressFunc(container, "getProvinces"))
	addressGroup.GET("/provinces/:id/districts", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Hour}), controllers.HandleAddressFunc(container, "getDistricts"))
	addressGroup.GET("/districts/:id/subdistricts", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Hour}), controllers.HandleAddressFunc(container, "getSubdistricts"))
	addressGroup.GET("/tree", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Hour}), controllers.HandleAddressFunc(container, "getProvinceTree"))
	addressGroup.POST("/resolve", controllers.HandleAddressFunc(container, "resolveZipCode"))

	// Taxonomy routes
	taxonomyGroup := auth.Group("/taxonomy")
	taxonomyGroup.GET("/types", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleTaxonomyFunc(container, "getStoreTypes"))
	taxonomyGroup.GET("/cuisines", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleTaxonomyFunc(container, "getCuisines"))

	// Report routes, console staff and admins only
	reportGroup := auth.Group("/reports")
	reportGroup.Use(middleware.AuthenticateStaff())
	reportGroup.Use(middleware.PathRateLimiter(2, 4))
	reportGroup.GET("/shops", controllers.HandleReportFunc(container, "exportShops"))
	reportGroup.GET("/bindings", controllers.HandleReportFunc(container, "exportBindings"))
}
