// @title           ShopDesk HTTP Service API
// @version         1.0
// @description     Admin console backend for shop registration, device binding and address resolution
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@shopdesk.example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"shopdesk-http-service/internal/app/routes"
	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/domain/services"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/infrastructure/config"
	"shopdesk-http-service/internal/infrastructure/database"
	Logger "shopdesk-http-service/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		Logger.Warning("No .env file loaded: %v", err)
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)
	ensureTaxonomyExists(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// Load the address reference hierarchy; the console keeps running with
	// the address selectors disabled when the data is missing
	addressService := serviceContainer.GetService("address").(services.InterfaceAddressService)
	if err := addressService.SeedFromFile(cfg.AddressDataPath); err != nil {
		Logger.Warning("Address reference data not loaded: %v", err)
	}

	r := routes.SetupRouter(db, cfg, serviceContainer)

	port := cfg.ServerPort
	printSystemInfo(pool)
	Logger.Info("Starting server on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// autoMigrate adds new tables and columns without touching existing ones
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Shop{},
		&models.OpeningHour{},
		&models.ShopImage{},
		&models.StoreType{},
		&models.Cuisine{},
		&models.Device{},
		&models.ShopDeviceBinding{},
		&models.Province{},
		&models.District{},
		&models.Subdistrict{},
	)
}

// dropAndRecreateTables drops every managed table and migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return err
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"shop_type_relations", "shop_cuisine_relations",
		"shop_device_bindings", "opening_hours", "shop_images",
		"shops", "devices", "cuisines", "store_types",
		"subdistricts", "districts", "provinces",
		"users", "admins",
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists creates the default admin account on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		hashedPassword, err := models.HashPassword(cfg.DefaultAdminPassword)
		if err != nil {
			log.Fatalf("failed to hash default admin password: %v", err)
		}

		admin := models.Admin{
			Username: "admin",
			Password: hashedPassword,
			Role:     models.AdminRoleAdmin,
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create default admin account: %v", err)
		}

		log.Println("created default admin account")
	}
}

// ensureTaxonomyExists seeds the default store types and their cuisines on
// first start. Editable afterwards through the database.
func ensureTaxonomyExists(db *gorm.DB) {
	var count int64
	db.Model(&models.StoreType{}).Count(&count)
	if count > 0 {
		return
	}

	seed := map[string][]string{
		"ร้านอาหาร":   {"อาหารไทย", "อาหารอีสาน", "อาหารใต้", "อาหารจีน", "อาหารญี่ปุ่น", "อาหารตะวันตก"},
		"คาเฟ่":       {"กาแฟ", "ชานมไข่มุก", "เบเกอรี่"},
		"ร้านของหวาน": {"ไอศกรีม", "ขนมไทย"},
	}

	for typeName, cuisines := range seed {
		storeType := models.StoreType{Name: typeName}
		if err := db.Create(&storeType).Error; err != nil {
			log.Printf("failed to seed store type %s: %v", typeName, err)
			continue
		}
		for _, cuisineName := range cuisines {
			cuisine := models.Cuisine{Name: cuisineName, StoreTypeID: storeType.ID}
			if err := db.Create(&cuisine).Error; err != nil {
				log.Printf("failed to seed cuisine %s: %v", cuisineName, err)
			}
		}
	}
	log.Println("seeded default store types and cuisines")
}

// printSystemInfo logs pool and runtime information at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		log.Printf("database connection pool: %+v", stats)
	}

	log.Printf("cpu cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
