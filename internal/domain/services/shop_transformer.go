package services

import (
	"strings"

	"shopdesk-http-service/internal/domain/models"
)

// RecordToForm maps a flat upstream shop record to the structured form shape.
// Taxonomy entries that arrive as bare names are resolved against the full
// reference lists; entries with embedded objects use their id directly.
// Unresolvable names are dropped rather than invented.
func RecordToForm(record models.ShopRecord, allTypes []models.StoreType, allCuisines []models.Cuisine) models.ShopForm {
	address, ambiguous := ParseShopAddress(record.Address)

	typesByName := make(map[string]uint, len(allTypes))
	for _, t := range allTypes {
		typesByName[t.Name] = t.ID
	}
	cuisinesByName := make(map[string]uint, len(allCuisines))
	for _, c := range allCuisines {
		cuisinesByName[c.Name] = c.ID
	}

	form := models.ShopForm{
		Name:                  record.Name,
		Description:           record.Description,
		PriceRange:            record.PriceRange,
		AveragePricePerPerson: record.AveragePricePerPerson,
		Location: models.FormLocation{
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		},
		Address:           address,
		AddressAmbiguous:  ambiguous,
		Phone:             record.PhoneNumber,
		Images:            append([]string(nil), record.Images...),
		Types:             resolveTaxonomyIDs(record.Types, typesByName),
		Cuisines:          resolveTaxonomyIDs(record.Cuisines, cuisinesByName),
		OpeningHours:      append([]models.FormOpeningHour(nil), record.OpeningHours...),
		HasAirPurifier:    record.HasAirPurifier,
		HasFreshAirSystem: record.HasAirVentilator,
		IsApproved:        record.Status == models.ShopStatusActive,
	}
	return form
}

// FormToRecord maps the structured form back to the flat record shape.
// Image entries pointing at the media host are stored as relative paths;
// everything else passes through untouched. New file uploads never reach this
// function - the upload pipeline has already turned them into paths.
func FormToRecord(form models.ShopForm, mediaBaseURL string) models.ShopRecord {
	status := models.ShopStatusPending
	if form.IsApproved {
		status = models.ShopStatusActive
	}

	images := make([]string, 0, len(form.Images))
	for _, img := range form.Images {
		images = append(images, NormalizeImagePath(img, mediaBaseURL))
	}

	types := make([]models.TaxonomyRef, 0, len(form.Types))
	for _, id := range form.Types {
		types = append(types, models.TaxonomyRef{ID: id})
	}
	cuisines := make([]models.TaxonomyRef, 0, len(form.Cuisines))
	for _, id := range form.Cuisines {
		cuisines = append(cuisines, models.TaxonomyRef{ID: id})
	}

	return models.ShopRecord{
		Name:                  form.Name,
		Description:           form.Description,
		PriceRange:            form.PriceRange,
		AveragePricePerPerson: form.AveragePricePerPerson,
		Latitude:              form.Location.Latitude,
		Longitude:             form.Location.Longitude,
		Address:               BuildShopAddress(form.Address),
		PhoneNumber:           form.Phone,
		Types:                 types,
		Cuisines:              cuisines,
		OpeningHours:          append([]models.FormOpeningHour(nil), form.OpeningHours...),
		Images:                images,
		HasAirPurifier:        form.HasAirPurifier,
		HasAirVentilator:      form.HasFreshAirSystem,
		Status:                status,
	}
}

// ShopToRecord flattens a loaded shop model into the record shape, with
// taxonomy entries as embedded objects.
func ShopToRecord(shop *models.Shop) models.ShopRecord {
	types := make([]models.TaxonomyRef, 0, len(shop.Types))
	for _, t := range shop.Types {
		types = append(types, models.TaxonomyRef{ID: t.ID, Name: t.Name})
	}
	cuisines := make([]models.TaxonomyRef, 0, len(shop.Cuisines))
	for _, c := range shop.Cuisines {
		cuisines = append(cuisines, models.TaxonomyRef{ID: c.ID, Name: c.Name, StoreTypeID: c.StoreTypeID})
	}
	hours := make([]models.FormOpeningHour, 0, len(shop.OpeningHours))
	for _, h := range shop.OpeningHours {
		hours = append(hours, models.FormOpeningHour{
			DayOfWeek: h.DayOfWeek,
			IsOpen:    h.IsOpen,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}
	images := make([]string, 0, len(shop.Images))
	for _, img := range shop.Images {
		images = append(images, img.Path)
	}

	return models.ShopRecord{
		ID:                    shop.ID,
		Name:                  shop.Name,
		Description:           shop.Description,
		PriceRange:            shop.PriceRange,
		AveragePricePerPerson: shop.AveragePricePerPerson,
		Latitude:              shop.Latitude,
		Longitude:             shop.Longitude,
		Address:               shop.Address,
		PhoneNumber:           shop.PhoneNumber,
		Types:                 types,
		Cuisines:              cuisines,
		OpeningHours:          hours,
		Images:                images,
		HasAirPurifier:        shop.HasAirPurifier,
		HasAirVentilator:      shop.HasAirVentilator,
		Status:                shop.Status,
	}
}

// NormalizeImagePath strips the media host prefix from an absolute URL,
// leaving the stored relative path. URLs on other hosts pass through.
func NormalizeImagePath(image, mediaBaseURL string) string {
	base := strings.TrimSuffix(mediaBaseURL, "/")
	if base == "" || !strings.HasPrefix(image, base) {
		return image
	}
	return strings.TrimPrefix(strings.TrimPrefix(image, base), "/")
}

// resolveTaxonomyIDs turns name-or-object references into a plain id list
func resolveTaxonomyIDs(refs []models.TaxonomyRef, byName map[string]uint) []uint {
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		if ref.ID != 0 {
			ids = append(ids, ref.ID)
			continue
		}
		if id, ok := byName[ref.Name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
