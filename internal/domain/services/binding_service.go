package services

import (
	"errors"

	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
)

// Binding errors surfaced to the controller layer
var (
	ErrDeviceAlreadyBound = errors.New("device is already bound to a shop")
	ErrBindingNotFound    = errors.New("device is not bound to this shop")
)

// BindingState is the reconciled view of one shop's devices: what is bound
// to it and what is still free to bind. Both sets are recomputed from the
// database on every read - the database is the single source of truth and
// nothing is cached between mutations.
type BindingState struct {
	Bound     []models.ShopDeviceBinding `json:"bound"`
	Available []models.Device            `json:"available"`
}

// InterfaceBindingService defines the device binding service interface
type InterfaceBindingService interface {
	GetBindingState(shopID uint) (*BindingState, error)
	ListBound(shopID uint) ([]models.ShopDeviceBinding, error)
	ListAvailable(shopID uint) ([]models.Device, error)
	Bind(shopID, deviceID uint, deviceType string) (*BindingState, error)
	Unbind(shopID, deviceID uint) (*BindingState, error)
	SetCCDC(shopID, deviceID uint, flag bool) (*BindingState, error)
}

// BindingService reconciles device-to-shop bindings. A device belongs to at
// most one shop; every mutation refetches the full state afterwards instead
// of patching it optimistically.
type BindingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBindingService creates a new binding service
func NewBindingService(db *gorm.DB, cfg *config.Config) InterfaceBindingService {
	return &BindingService{
		DB:     db,
		Config: cfg,
	}
}

// GetBindingState returns the bound and available sets for one shop
func (s *BindingService) GetBindingState(shopID uint) (*BindingState, error) {
	bound, err := s.ListBound(shopID)
	if err != nil {
		return nil, err
	}

	var all []models.Device
	if err := s.DB.Order("id").Find(&all).Error; err != nil {
		return nil, err
	}

	var takenIDs []uint
	if err := s.DB.Model(&models.ShopDeviceBinding{}).Pluck("device_id", &takenIDs).Error; err != nil {
		return nil, err
	}

	return &BindingState{
		Bound:     bound,
		Available: availableDevices(all, takenIDs),
	}, nil
}

// ListBound lists the bindings of one shop with their devices
func (s *BindingService) ListBound(shopID uint) ([]models.ShopDeviceBinding, error) {
	var bindings []models.ShopDeviceBinding
	if err := s.DB.Where("shop_id = ?", shopID).Preload("Device").Order("id").Find(&bindings).Error; err != nil {
		return nil, err
	}
	return bindings, nil
}

// ListAvailable lists devices not bound to any shop
func (s *BindingService) ListAvailable(shopID uint) ([]models.Device, error) {
	state, err := s.GetBindingState(shopID)
	if err != nil {
		return nil, err
	}
	return state.Available, nil
}

// Bind binds a device to a shop and refetches the state. The mutation is a
// single insert: a failure leaves prior bindings untouched.
func (s *BindingService) Bind(shopID, deviceID uint, deviceType string) (*BindingState, error) {
	var shop models.Shop
	if err := s.DB.First(&shop, shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shop not found")
		}
		return nil, err
	}

	var device models.Device
	if err := s.DB.First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("device not found")
		}
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.ShopDeviceBinding{}).Where("device_id = ?", deviceID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDeviceAlreadyBound
	}

	if deviceType == "" {
		deviceType = device.DeviceType
	}
	binding := models.ShopDeviceBinding{
		ShopID:     shopID,
		DeviceID:   deviceID,
		DeviceType: deviceType,
	}
	if err := s.DB.Create(&binding).Error; err != nil {
		return nil, err
	}

	return s.GetBindingState(shopID)
}

// Unbind removes a device's binding to a shop and refetches the state
func (s *BindingService) Unbind(shopID, deviceID uint) (*BindingState, error) {
	binding, err := s.findBinding(shopID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Delete(binding).Error; err != nil {
		return nil, err
	}

	return s.GetBindingState(shopID)
}

// SetCCDC toggles the per-binding CCDC flag and refetches the state
func (s *BindingService) SetCCDC(shopID, deviceID uint, flag bool) (*BindingState, error) {
	binding, err := s.findBinding(shopID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(binding).Update("ccdc", flag).Error; err != nil {
		return nil, err
	}

	return s.GetBindingState(shopID)
}

// findBinding loads the binding row for a shop/device pair
func (s *BindingService) findBinding(shopID, deviceID uint) (*models.ShopDeviceBinding, error) {
	var binding models.ShopDeviceBinding
	if err := s.DB.Where("shop_id = ? AND device_id = ?", shopID, deviceID).First(&binding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBindingNotFound
		}
		return nil, err
	}
	return &binding, nil
}

// availableDevices is the set difference of all devices minus every bound
// device id. Keyed by the device primary key throughout.
func availableDevices(all []models.Device, boundIDs []uint) []models.Device {
	taken := make(map[uint]bool, len(boundIDs))
	for _, id := range boundIDs {
		taken[id] = true
	}

	available := make([]models.Device, 0, len(all))
	for _, d := range all {
		if !taken[d.ID] {
			available = append(available, d)
		}
	}
	return available
}
