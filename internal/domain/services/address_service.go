package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
	"shopdesk-http-service/pkg/logger"
)

// ErrAddressDataUnavailable is returned while the reference tables are empty.
// Callers must disable dependent selectors instead of offering free input.
var ErrAddressDataUnavailable = errors.New("address reference data not loaded")

// InterfaceAddressService defines the address hierarchy service interface
type InterfaceAddressService interface {
	SeedFromFile(path string) error
	GetProvinces() ([]models.Province, error)
	GetDistricts(provinceID uint) ([]models.District, error)
	GetSubdistricts(districtID uint) ([]models.Subdistrict, error)
	GetProvinceTree() ([]models.Province, error)
	ResolveZipCode(province, district, subdistrict string) (string, error)
}

// AddressService serves the read-only province/district/subdistrict
// hierarchy. Lookups for a child level are always scoped by the parent's id,
// never unconstrained.
type AddressService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

// invalidateTree drops the cached hierarchy after the reference tables change
func (s *AddressService) invalidateTree() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.InvalidateProvinceTree(); err != nil {
		logger.Warning("Failed to invalidate cached province tree: %v", err)
	}
}

// NewAddressService creates a new address service
func NewAddressService(db *gorm.DB, cfg *config.Config, redis InterfaceRedisService) InterfaceAddressService {
	return &AddressService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
	}
}

// seedProvince mirrors the upstream reference data JSON layout
type seedProvince struct {
	ID      uint   `json:"id"`
	NameTH  string `json:"name_th"`
	Amphure []struct {
		ID     uint   `json:"id"`
		NameTH string `json:"name_th"`
		Tambon []struct {
			ID      uint        `json:"id"`
			NameTH  string      `json:"name_th"`
			ZipCode json.Number `json:"zip_code"`
		} `json:"tambon"`
	} `json:"amphure"`
}

// SeedFromFile loads the reference hierarchy into the database when the
// tables are empty. A missing or malformed file is reported to the caller;
// the service then keeps answering ErrAddressDataUnavailable.
func (s *AddressService) SeedFromFile(path string) error {
	var count int64
	if err := s.DB.Model(&models.Province{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Address reference data already present (%d provinces)", count)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read address data file: %w", err)
	}

	var seeds []seedProvince
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("failed to parse address data file: %w", err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, p := range seeds {
			province := models.Province{ID: p.ID, NameTH: p.NameTH}
			if err := tx.Create(&province).Error; err != nil {
				return err
			}
			for _, a := range p.Amphure {
				district := models.District{ID: a.ID, ProvinceID: p.ID, NameTH: a.NameTH}
				if err := tx.Create(&district).Error; err != nil {
					return err
				}
				for _, t := range a.Tambon {
					sub := models.Subdistrict{
						ID:         t.ID,
						DistrictID: a.ID,
						NameTH:     t.NameTH,
						ZipCode:    t.ZipCode.String(),
					}
					if err := tx.Create(&sub).Error; err != nil {
						return err
					}
				}
			}
		}
		logger.Info("Seeded %d provinces of address reference data", len(seeds))
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateTree()
	return nil
}

// GetProvinces lists all provinces
func (s *AddressService) GetProvinces() ([]models.Province, error) {
	var provinces []models.Province
	if err := s.DB.Order("id").Find(&provinces).Error; err != nil {
		return nil, err
	}
	if len(provinces) == 0 {
		return nil, ErrAddressDataUnavailable
	}
	return provinces, nil
}

// GetDistricts lists the districts of one province
func (s *AddressService) GetDistricts(provinceID uint) ([]models.District, error) {
	var districts []models.District
	if err := s.DB.Where("province_id = ?", provinceID).Order("id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

// GetSubdistricts lists the subdistricts of one district
func (s *AddressService) GetSubdistricts(districtID uint) ([]models.Subdistrict, error) {
	var subdistricts []models.Subdistrict
	if err := s.DB.Where("district_id = ?", districtID).Order("id").Find(&subdistricts).Error; err != nil {
		return nil, err
	}
	return subdistricts, nil
}

// GetProvinceTree returns the full hierarchy, Redis-cached for a day
func (s *AddressService) GetProvinceTree() ([]models.Province, error) {
	if s.Redis != nil {
		if provinces, err := s.Redis.GetProvinceTree(); err == nil && len(provinces) > 0 {
			return provinces, nil
		}
	}

	var provinces []models.Province
	if err := s.DB.Preload("Districts.Subdistricts").Order("id").Find(&provinces).Error; err != nil {
		return nil, err
	}
	if len(provinces) == 0 {
		return nil, ErrAddressDataUnavailable
	}

	if s.Redis != nil {
		if err := s.Redis.CacheProvinceTree(provinces, 24*time.Hour); err != nil {
			logger.Warning("Failed to cache province tree: %v", err)
		}
	}
	return provinces, nil
}

// ResolveZipCode walks the hierarchy strictly province -> district ->
// subdistrict by Thai name and returns the subdistrict's postal code. The
// postal code is always derived this way, never taken from user input.
func (s *AddressService) ResolveZipCode(province, district, subdistrict string) (string, error) {
	var count int64
	if err := s.DB.Model(&models.Province{}).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "", ErrAddressDataUnavailable
	}

	var prov models.Province
	if err := s.DB.Where("name_th = ?", province).First(&prov).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("unknown province: %s", province)
		}
		return "", err
	}

	var dist models.District
	if err := s.DB.Where("province_id = ? AND name_th = ?", prov.ID, district).First(&dist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("unknown district: %s", district)
		}
		return "", err
	}

	var sub models.Subdistrict
	if err := s.DB.Where("district_id = ? AND name_th = ?", dist.ID, subdistrict).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("unknown subdistrict: %s", subdistrict)
		}
		return "", err
	}

	return sub.ZipCode, nil
}
