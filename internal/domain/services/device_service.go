package services

import (
	"errors"

	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
)

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	GetAllDevices(page, pageSize int) ([]models.Device, int64, error)
	GetDeviceByID(id uint) (*models.Device, error)
	CreateDevice(device *models.Device) error
	UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error)
	DeleteDevice(id uint) error
	GetDeviceStatus(id uint) (string, error)
	UpdateDeviceStatus(serialNumber string, status models.DeviceStatus) error
	GetDeviceShop(deviceID uint) (*models.Shop, error)
}

// DeviceService provides device management
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeviceService creates a new device service
func NewDeviceService(db *gorm.DB, cfg *config.Config) InterfaceDeviceService {
	return &DeviceService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllDevices lists devices with pagination
func (s *DeviceService) GetAllDevices(page, pageSize int) ([]models.Device, int64, error) {
	var devices []models.Device
	var total int64

	if err := s.DB.Model(&models.Device{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Binding").Limit(pageSize).Offset(offset).Order("id").Find(&devices).Error; err != nil {
		return nil, 0, err
	}

	return devices, total, nil
}

// 2 GetDeviceByID gets a device by its primary key
func (s *DeviceService) GetDeviceByID(id uint) (*models.Device, error) {
	var device models.Device
	if err := s.DB.Preload("Binding").First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("device not found")
		}
		return nil, err
	}

	return &device, nil
}

// 3 CreateDevice creates a new device
func (s *DeviceService) CreateDevice(device *models.Device) error {
	// Serial numbers must be unique
	var count int64
	if err := s.DB.Model(&models.Device{}).Where("serial_number = ?", device.SerialNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("device serial number already exists")
	}

	if device.Status == "" {
		device.Status = models.DeviceStatusOffline
	}

	return s.DB.Create(device).Error
}

// 4 UpdateDevice updates device fields
func (s *DeviceService) UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}

	// Re-check serial uniqueness when it changes
	if serialNumber, ok := updates["serial_number"].(string); ok && serialNumber != device.SerialNumber {
		var count int64
		if err := s.DB.Model(&models.Device{}).Where("serial_number = ? AND id != ?", serialNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("device serial number already exists")
		}
	}

	if err := s.DB.Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetDeviceByID(id)
}

// 5 DeleteDevice deletes a device and its binding, if any
func (s *DeviceService) DeleteDevice(id uint) error {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", id).Delete(&models.ShopDeviceBinding{}).Error; err != nil {
			return err
		}
		return tx.Delete(device).Error
	})
}

// 6 GetDeviceStatus returns the last reported status
func (s *DeviceService) GetDeviceStatus(id uint) (string, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return "", err
	}
	return string(device.Status), nil
}

// 7 UpdateDeviceStatus applies a status report from the device feed,
// keyed by serial number as devices report it
func (s *DeviceService) UpdateDeviceStatus(serialNumber string, status models.DeviceStatus) error {
	result := s.DB.Model(&models.Device{}).
		Where("serial_number = ?", serialNumber).
		Updates(map[string]interface{}{
			"status":    status,
			"is_active": status == models.DeviceStatusOnline,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("device not found")
	}
	return nil
}

// 8 GetDeviceShop returns the shop a device is bound to
func (s *DeviceService) GetDeviceShop(deviceID uint) (*models.Shop, error) {
	if _, err := s.GetDeviceByID(deviceID); err != nil {
		return nil, err
	}

	var binding models.ShopDeviceBinding
	if err := s.DB.Where("device_id = ?", deviceID).First(&binding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("device is not bound to a shop")
		}
		return nil, err
	}

	var shop models.Shop
	if err := s.DB.First(&shop, binding.ShopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("bound shop no longer exists")
		}
		return nil, err
	}

	return &shop, nil
}
