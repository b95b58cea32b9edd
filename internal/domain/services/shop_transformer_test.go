package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopdesk-http-service/internal/domain/models"
)

func storeType(id uint, name string) models.StoreType {
	return models.StoreType{BaseModel: models.BaseModel{ID: id}, Name: name}
}

func cuisine(id uint, name string, typeID uint) models.Cuisine {
	return models.Cuisine{BaseModel: models.BaseModel{ID: id}, Name: name, StoreTypeID: typeID}
}

func TestRecordToFormResolvesTaxonomyNames(t *testing.T) {
	allTypes := []models.StoreType{
		storeType(1, "ร้านอาหาร"),
		storeType(2, "คาเฟ่"),
	}
	allCuisines := []models.Cuisine{
		cuisine(10, "อาหารไทย", 1),
		cuisine(11, "กาแฟ", 2),
	}

	record := models.ShopRecord{
		Name: "ครัวคุณยาย",
		Types: []models.TaxonomyRef{
			{Name: "ร้านอาหาร"},          // bare name
			{ID: 2, Name: "คาเฟ่"},       // embedded object
			{Name: "ร้านที่ไม่มีในระบบ"}, // unknown, dropped
		},
		Cuisines: []models.TaxonomyRef{
			{Name: "อาหารไทย"},
			{ID: 11},
		},
		Status: models.ShopStatusActive,
	}

	form := RecordToForm(record, allTypes, allCuisines)

	assert.Equal(t, []uint{1, 2}, form.Types)
	assert.Equal(t, []uint{10, 11}, form.Cuisines)
	assert.True(t, form.IsApproved)
}

func TestRecordToFormPendingStatus(t *testing.T) {
	record := models.ShopRecord{
		Name:   "ร้านใหม่",
		Status: models.ShopStatusPending,
	}

	form := RecordToForm(record, nil, nil)
	assert.False(t, form.IsApproved)
}

func TestRecordToFormFlagsAmbiguousAddress(t *testing.T) {
	record := models.ShopRecord{
		Name:    "ร้านไม่มีรหัสไปรษณีย์",
		Address: "45, ท่าสองยาง, ตาก",
	}

	form := RecordToForm(record, nil, nil)
	assert.True(t, form.AddressAmbiguous)
	assert.Equal(t, "ตาก", form.Address.Province)
	assert.Equal(t, "ท่าสองยาง", form.Address.District)
}

func TestFormToRecordStatusEncoding(t *testing.T) {
	approved := FormToRecord(models.ShopForm{IsApproved: true}, "")
	assert.Equal(t, models.ShopStatusActive, approved.Status)

	pending := FormToRecord(models.ShopForm{IsApproved: false}, "")
	assert.Equal(t, models.ShopStatusPending, pending.Status)
}

func TestFormToRecordNormalizesImages(t *testing.T) {
	form := models.ShopForm{
		Images: []string{
			"https://media.shopdesk.example.com/shops/7/a.jpg",
			"shops/7/b.jpg",
			"https://other.example.com/c.jpg",
		},
	}

	record := FormToRecord(form, "https://media.shopdesk.example.com")

	assert.Equal(t, []string{
		"shops/7/a.jpg",
		"shops/7/b.jpg",
		"https://other.example.com/c.jpg",
	}, record.Images)
}

func TestFormToRecordRebuildsAddress(t *testing.T) {
	form := models.ShopForm{
		Address: models.FormAddress{
			HouseNumber: "99",
			Moo:         "4",
			Subdistrict: "แม่ต้าน",
			District:    "ท่าสองยาง",
			Province:    "ตาก",
			PostalCode:  "63150",
		},
	}

	record := FormToRecord(form, "")
	assert.Equal(t, "99, หมู่ 4, แม่ต้าน, ท่าสองยาง, ตาก, 63150", record.Address)
}

func TestShopToRecordEmbedsTaxonomy(t *testing.T) {
	shop := &models.Shop{
		ID:       7,
		Name:     "ครัวคุณยาย",
		Status:   models.ShopStatusActive,
		Types:    []models.StoreType{storeType(1, "ร้านอาหาร")},
		Cuisines: []models.Cuisine{cuisine(10, "อาหารไทย", 1)},
		Images: []models.ShopImage{
			{Path: "shops/7/a.jpg"},
		},
	}

	record := ShopToRecord(shop)

	assert.Equal(t, uint(7), record.ID)
	assert.Equal(t, []models.TaxonomyRef{{ID: 1, Name: "ร้านอาหาร"}}, record.Types)
	assert.Equal(t, []models.TaxonomyRef{{ID: 10, Name: "อาหารไทย", StoreTypeID: 1}}, record.Cuisines)
	assert.Equal(t, []string{"shops/7/a.jpg"}, record.Images)
}

func TestNormalizeImagePath(t *testing.T) {
	cases := []struct {
		name  string
		image string
		base  string
		want  string
	}{
		{"media host url", "https://media.example.com/shops/1/a.jpg", "https://media.example.com", "shops/1/a.jpg"},
		{"media host with trailing slash", "https://media.example.com/shops/1/a.jpg", "https://media.example.com/", "shops/1/a.jpg"},
		{"already relative", "shops/1/a.jpg", "https://media.example.com", "shops/1/a.jpg"},
		{"foreign host passes through", "https://cdn.example.org/a.jpg", "https://media.example.com", "https://cdn.example.org/a.jpg"},
		{"no base configured", "https://media.example.com/a.jpg", "", "https://media.example.com/a.jpg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeImagePath(tc.image, tc.base))
		})
	}
}
