package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/infrastructure/config"
	"shopdesk-http-service/pkg/logger"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// Device status feed
	deviceStatusService services.InterfaceDeviceStatusService

	// Business services
	adminService    services.InterfaceAdminService
	userService     services.InterfaceUserService
	shopService     services.InterfaceShopService
	deviceService   services.InterfaceDeviceService
	bindingService  services.InterfaceBindingService
	addressService  services.InterfaceAddressService
	taxonomyService services.InterfaceTaxonomyService
	uploadService   services.InterfaceUploadService
	reportService   services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	// Probe the Redis connection; the address tree cache degrades to direct
	// database reads when Redis is unreachable
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warning("Redis ping failed: %v, continuing without cache", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// Business services
	c.adminService = services.NewAdminService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.taxonomyService = services.NewTaxonomyService(c.db, c.config)
	c.shopService = services.NewShopService(c.db, c.config, c.taxonomyService)
	c.deviceService = services.NewDeviceService(c.db, c.config)
	c.bindingService = services.NewBindingService(c.db, c.config)
	c.addressService = services.NewAddressService(c.db, c.config, c.redisService)
	c.reportService = services.NewReportService(c.db, c.config)

	// Image storage
	uploadService, err := services.NewUploadService(c.config)
	if err != nil {
		logger.Warning("MinIO unavailable: %v, image uploads disabled", err)
	} else {
		c.uploadService = uploadService
	}

	// Device status feed
	c.deviceStatusService = services.NewDeviceStatusService(c.config, c.deviceService)
	if err := c.deviceStatusService.Connect(); err != nil {
		logger.Warning("MQTT connection failed: %v", err)
	}
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "device_status":
		return c.deviceStatusService
	case "admin":
		return c.adminService
	case "user":
		return c.userService
	case "shop":
		return c.shopService
	case "device":
		return c.deviceService
	case "binding":
		return c.bindingService
	case "address":
		return c.addressService
	case "taxonomy":
		return c.taxonomyService
	case "upload":
		return c.uploadService
	case "report":
		return c.reportService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
