package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopdesk-http-service/internal/domain/models"
)

func TestParseShopAddress(t *testing.T) {
	cases := []struct {
		name      string
		address   string
		want      models.FormAddress
		ambiguous bool
	}{
		{
			name:    "five segments with postal code",
			address: "123/4, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
			want: models.FormAddress{
				HouseNumber: "123/4",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: false,
		},
		{
			name:    "six segments with moo marker",
			address: "99, หมู่ 4, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
			want: models.FormAddress{
				HouseNumber: "99",
				Moo:         "4",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: false,
		},
		{
			name:    "six segments with bare soi",
			address: "12, ซอยสุขใจ, บางรัก, บางรัก, กรุงเทพมหานคร, 10500",
			want: models.FormAddress{
				HouseNumber: "12",
				Soi:         "ซอยสุขใจ",
				Subdistrict: "บางรัก",
				District:    "บางรัก",
				Province:    "กรุงเทพมหานคร",
				PostalCode:  "10500",
			},
			ambiguous: false,
		},
		{
			name:    "seven segments with moo and soi",
			address: "45, หมู่ 2, ซอยร่มเย็น, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
			want: models.FormAddress{
				HouseNumber: "45",
				Moo:         "2",
				Soi:         "ซอยร่มเย็น",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: false,
		},
		{
			name:    "soi before moo still resolves by marker",
			address: "45, ซอยร่มเย็น, หมู่ 2, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
			want: models.FormAddress{
				HouseNumber: "45",
				Moo:         "2",
				Soi:         "ซอยร่มเย็น",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: false,
		},
		{
			name:    "two unmarked middles are flagged",
			address: "45, ร่มเย็น, สุขใจ, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
			want: models.FormAddress{
				HouseNumber: "45",
				Moo:         "ร่มเย็น",
				Soi:         "สุขใจ",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: true,
		},
		{
			name:    "too few segments before postal code",
			address: "45, ตาก, 63150",
			want: models.FormAddress{
				HouseNumber: "45",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: true,
		},
		{
			name:    "no postal code four segments",
			address: "45, แม่ต้าน, ท่าสองยาง, ตาก",
			want: models.FormAddress{
				HouseNumber: "45",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
			},
			ambiguous: true,
		},
		{
			name:    "no postal code three segments",
			address: "45, ท่าสองยาง, ตาก",
			want: models.FormAddress{
				HouseNumber: "45",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
			},
			ambiguous: true,
		},
		{
			name:      "house number only",
			address:   "45",
			want:      models.FormAddress{HouseNumber: "45"},
			ambiguous: true,
		},
		{
			name:      "empty input",
			address:   "",
			want:      models.FormAddress{},
			ambiguous: false,
		},
		{
			name:    "extra whitespace around segments",
			address: "  123/4 ,  แม่ต้าน ,ท่าสองยาง,   ตาก , 63150 ",
			want: models.FormAddress{
				HouseNumber: "123/4",
				Subdistrict: "แม่ต้าน",
				District:    "ท่าสองยาง",
				Province:    "ตาก",
				PostalCode:  "63150",
			},
			ambiguous: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ambiguous := ParseShopAddress(tc.address)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ambiguous, ambiguous)
		})
	}
}

func TestBuildShopAddress(t *testing.T) {
	addr := models.FormAddress{
		HouseNumber: "99",
		Moo:         "4",
		Subdistrict: "แม่ต้าน",
		District:    "ท่าสองยาง",
		Province:    "ตาก",
		PostalCode:  "63150",
	}

	built := BuildShopAddress(addr)
	assert.Equal(t, "99, หมู่ 4, แม่ต้าน, ท่าสองยาง, ตาก, 63150", built)
}

func TestBuildShopAddressSkipsEmptyFields(t *testing.T) {
	addr := models.FormAddress{
		HouseNumber: "12",
		Province:    "ตาก",
	}

	assert.Equal(t, "12, ตาก", BuildShopAddress(addr))
}

// Well-formed addresses survive a parse/build cycle unchanged.
func TestAddressRoundTrip(t *testing.T) {
	inputs := []string{
		"123/4, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
		"99, หมู่ 4, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
		"45, หมู่ 2, ซอยร่มเย็น, แม่ต้าน, ท่าสองยาง, ตาก, 63150",
	}

	for _, input := range inputs {
		parsed, ambiguous := ParseShopAddress(input)
		assert.False(t, ambiguous, input)
		assert.Equal(t, input, BuildShopAddress(parsed))
	}
}
