package services

import (
	"errors"

	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
)

// InterfaceShopService defines the shop service interface
type InterfaceShopService interface {
	GetAllShops(page, pageSize int, status models.ShopStatus) ([]models.Shop, int64, error)
	GetShopByID(id uint) (*models.Shop, error)
	GetShopForm(id uint) (*models.ShopForm, error)
	CreateShop(form *models.ShopForm, ownerID uint) (*models.Shop, error)
	UpdateShopForm(id uint, form *models.ShopForm) (*models.Shop, error)
	SetApproval(id uint, approved bool) (*models.Shop, error)
	DeleteShop(id uint) error
	AttachImages(id uint, paths []string) error
}

// ShopService provides shop management. Form-facing operations run through
// the record/form transformer so the stored flat address and the structured
// form shape stay consistent.
type ShopService struct {
	DB       *gorm.DB
	Config   *config.Config
	Taxonomy InterfaceTaxonomyService
}

// NewShopService creates a new shop service
func NewShopService(db *gorm.DB, cfg *config.Config, taxonomy InterfaceTaxonomyService) InterfaceShopService {
	return &ShopService{
		DB:       db,
		Config:   cfg,
		Taxonomy: taxonomy,
	}
}

// 1 GetAllShops lists shops with pagination, optionally filtered by status
func (s *ShopService) GetAllShops(page, pageSize int, status models.ShopStatus) ([]models.Shop, int64, error) {
	var shops []models.Shop
	var total int64

	query := s.DB.Model(&models.Shop{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Types").Preload("Cuisines").Preload("Images").
		Limit(pageSize).Offset(offset).Order("id").Find(&shops).Error; err != nil {
		return nil, 0, err
	}

	return shops, total, nil
}

// 2 GetShopByID loads a shop with all relations
func (s *ShopService) GetShopByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := s.DB.Preload("Types").Preload("Cuisines").
		Preload("OpeningHours").Preload("Images").
		First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shop not found")
		}
		return nil, err
	}

	return &shop, nil
}

// 3 GetShopForm returns the structured form view of a shop
func (s *ShopService) GetShopForm(id uint) (*models.ShopForm, error) {
	shop, err := s.GetShopByID(id)
	if err != nil {
		return nil, err
	}

	allTypes, err := s.Taxonomy.GetStoreTypes()
	if err != nil {
		return nil, err
	}
	allCuisines, err := s.Taxonomy.GetCuisines(nil)
	if err != nil {
		return nil, err
	}

	form := RecordToForm(ShopToRecord(shop), allTypes, allCuisines)
	return &form, nil
}

// 4 CreateShop creates a shop from the structured form. The taxonomy
// selection is validated before anything is written.
func (s *ShopService) CreateShop(form *models.ShopForm, ownerID uint) (*models.Shop, error) {
	types, cuisines, err := s.Taxonomy.ResolveSelection(form.Types, form.Cuisines)
	if err != nil {
		return nil, err
	}

	record := FormToRecord(*form, s.Config.MediaBaseURL)

	shop := &models.Shop{
		Name:                  record.Name,
		Description:           record.Description,
		PriceRange:            record.PriceRange,
		AveragePricePerPerson: record.AveragePricePerPerson,
		Latitude:              record.Latitude,
		Longitude:             record.Longitude,
		Address:               record.Address,
		PhoneNumber:           record.PhoneNumber,
		Status:                record.Status,
		HasAirPurifier:        record.HasAirPurifier,
		HasAirVentilator:      record.HasAirVentilator,
		OwnerID:               ownerID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shop).Error; err != nil {
			return err
		}
		if err := tx.Model(shop).Association("Types").Replace(types); err != nil {
			return err
		}
		if err := tx.Model(shop).Association("Cuisines").Replace(cuisines); err != nil {
			return err
		}
		for _, h := range record.OpeningHours {
			hour := models.OpeningHour{
				ShopID:    shop.ID,
				DayOfWeek: h.DayOfWeek,
				IsOpen:    h.IsOpen,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
			}
			if err := tx.Create(&hour).Error; err != nil {
				return err
			}
		}
		for i, path := range record.Images {
			img := models.ShopImage{ShopID: shop.ID, Path: path, Position: i}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetShopByID(shop.ID)
}

// 5 UpdateShopForm replaces a shop's editable fields from the form. Cuisines
// orphaned by a type removal are pruned before the selection is validated.
func (s *ShopService) UpdateShopForm(id uint, form *models.ShopForm) (*models.Shop, error) {
	shop, err := s.GetShopByID(id)
	if err != nil {
		return nil, err
	}

	allCuisines, err := s.Taxonomy.GetCuisines(nil)
	if err != nil {
		return nil, err
	}
	form.Cuisines = PruneOrphanCuisines(form.Types, form.Cuisines, allCuisines)

	types, cuisines, err := s.Taxonomy.ResolveSelection(form.Types, form.Cuisines)
	if err != nil {
		return nil, err
	}

	record := FormToRecord(*form, s.Config.MediaBaseURL)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":                     record.Name,
			"description":              record.Description,
			"price_range":              record.PriceRange,
			"average_price_per_person": record.AveragePricePerPerson,
			"latitude":                 record.Latitude,
			"longitude":                record.Longitude,
			"address":                  record.Address,
			"phone_number":             record.PhoneNumber,
			"status":                   record.Status,
			"has_air_purifier":         record.HasAirPurifier,
			"has_air_ventilator":       record.HasAirVentilator,
		}
		if err := tx.Model(shop).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(shop).Association("Types").Replace(types); err != nil {
			return err
		}
		if err := tx.Model(shop).Association("Cuisines").Replace(cuisines); err != nil {
			return err
		}

		if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.OpeningHour{}).Error; err != nil {
			return err
		}
		for _, h := range record.OpeningHours {
			hour := models.OpeningHour{
				ShopID:    shop.ID,
				DayOfWeek: h.DayOfWeek,
				IsOpen:    h.IsOpen,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
			}
			if err := tx.Create(&hour).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.ShopImage{}).Error; err != nil {
			return err
		}
		for i, path := range record.Images {
			img := models.ShopImage{ShopID: shop.ID, Path: path, Position: i}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetShopByID(id)
}

// 6 SetApproval flips the approval state (status active <-> pending)
func (s *ShopService) SetApproval(id uint, approved bool) (*models.Shop, error) {
	shop, err := s.GetShopByID(id)
	if err != nil {
		return nil, err
	}

	status := models.ShopStatusPending
	if approved {
		status = models.ShopStatusActive
	}

	if err := s.DB.Model(shop).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetShopByID(id)
}

// 7 DeleteShop deletes a shop and its dependents
func (s *ShopService) DeleteShop(id uint) error {
	shop, err := s.GetShopByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shop_id = ?", id).Delete(&models.ShopDeviceBinding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shop_id = ?", id).Delete(&models.OpeningHour{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shop_id = ?", id).Delete(&models.ShopImage{}).Error; err != nil {
			return err
		}
		if err := tx.Model(shop).Association("Types").Clear(); err != nil {
			return err
		}
		if err := tx.Model(shop).Association("Cuisines").Clear(); err != nil {
			return err
		}
		return tx.Delete(shop).Error
	})
}

// 8 AttachImages appends stored image paths to a shop, capped at five
func (s *ShopService) AttachImages(id uint, paths []string) error {
	shop, err := s.GetShopByID(id)
	if err != nil {
		return err
	}

	if len(shop.Images)+len(paths) > MaxShopImages {
		return ErrTooManyImages
	}

	position := len(shop.Images)
	for i, path := range paths {
		img := models.ShopImage{
			ShopID:   shop.ID,
			Path:     NormalizeImagePath(path, s.Config.MediaBaseURL),
			Position: position + i,
		}
		if err := s.DB.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}
