package services

import (
	"errors"

	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
)

// ErrNoTypeSelected rejects taxonomy selections with an empty type set
// before anything reaches the database.
var ErrNoTypeSelected = errors.New("select at least one type")

// InterfaceTaxonomyService defines the store type / cuisine service interface
type InterfaceTaxonomyService interface {
	GetStoreTypes() ([]models.StoreType, error)
	GetCuisines(typeIDs []uint) ([]models.Cuisine, error)
	ValidateSelection(typeIDs, cuisineIDs []uint) error
	ResolveSelection(typeIDs, cuisineIDs []uint) ([]models.StoreType, []models.Cuisine, error)
}

// TaxonomyService serves the type/cuisine classification pair. Cuisines are
// always scoped to the selected store types.
type TaxonomyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTaxonomyService creates a new taxonomy service
func NewTaxonomyService(db *gorm.DB, cfg *config.Config) InterfaceTaxonomyService {
	return &TaxonomyService{
		DB:     db,
		Config: cfg,
	}
}

// GetStoreTypes lists all store types
func (s *TaxonomyService) GetStoreTypes() ([]models.StoreType, error) {
	var types []models.StoreType
	if err := s.DB.Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetCuisines lists cuisines; when typeIDs is non-empty the result is
// filtered to cuisines whose store type is in the set
func (s *TaxonomyService) GetCuisines(typeIDs []uint) ([]models.Cuisine, error) {
	var cuisines []models.Cuisine
	query := s.DB.Order("id")
	if len(typeIDs) > 0 {
		query = query.Where("store_type_id IN ?", typeIDs)
	}
	if err := query.Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

// ValidateSelection checks a type/cuisine selection: at least one type, and
// every cuisine scoped to a selected type
func (s *TaxonomyService) ValidateSelection(typeIDs, cuisineIDs []uint) error {
	if len(typeIDs) == 0 {
		return ErrNoTypeSelected
	}
	if len(cuisineIDs) == 0 {
		return nil
	}

	var cuisines []models.Cuisine
	if err := s.DB.Where("id IN ?", cuisineIDs).Find(&cuisines).Error; err != nil {
		return err
	}
	if len(cuisines) != len(cuisineIDs) {
		return errors.New("unknown cuisine in selection")
	}

	return checkCuisineScope(typeIDs, cuisines)
}

// checkCuisineScope rejects any cuisine whose store type is not in the
// selected type set
func checkCuisineScope(typeIDs []uint, cuisines []models.Cuisine) error {
	selected := make(map[uint]bool, len(typeIDs))
	for _, id := range typeIDs {
		selected[id] = true
	}
	for _, c := range cuisines {
		if !selected[c.StoreTypeID] {
			return errors.New("cuisine " + c.Name + " is not scoped to a selected type")
		}
	}
	return nil
}

// ResolveSelection validates and loads the referenced rows
func (s *TaxonomyService) ResolveSelection(typeIDs, cuisineIDs []uint) ([]models.StoreType, []models.Cuisine, error) {
	if err := s.ValidateSelection(typeIDs, cuisineIDs); err != nil {
		return nil, nil, err
	}

	var types []models.StoreType
	if err := s.DB.Where("id IN ?", typeIDs).Find(&types).Error; err != nil {
		return nil, nil, err
	}
	if len(types) != len(typeIDs) {
		return nil, nil, errors.New("unknown store type in selection")
	}

	var cuisines []models.Cuisine
	if len(cuisineIDs) > 0 {
		if err := s.DB.Where("id IN ?", cuisineIDs).Find(&cuisines).Error; err != nil {
			return nil, nil, err
		}
	}
	return types, cuisines, nil
}

// PruneOrphanCuisines drops selected cuisines whose store type is no longer
// in the selected type set. Used whenever a type is removed so no orphaned
// cuisine selection survives.
func PruneOrphanCuisines(selectedTypes, selectedCuisines []uint, all []models.Cuisine) []uint {
	typeSet := make(map[uint]bool, len(selectedTypes))
	for _, id := range selectedTypes {
		typeSet[id] = true
	}

	scope := make(map[uint]uint, len(all))
	for _, c := range all {
		scope[c.ID] = c.StoreTypeID
	}

	kept := make([]uint, 0, len(selectedCuisines))
	for _, id := range selectedCuisines {
		if storeTypeID, ok := scope[id]; ok && typeSet[storeTypeID] {
			kept = append(kept, id)
		}
	}
	return kept
}
