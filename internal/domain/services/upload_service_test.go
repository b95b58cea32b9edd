package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0}
)

// fileHeader builds a real multipart file header so ValidateImages can open
// and sniff the content the way it does in a request.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["images"][0]
}

func TestValidateImagesAcceptsImages(t *testing.T) {
	svc := &UploadService{}

	files := []*multipart.FileHeader{
		fileHeader(t, "a.png", pngHeader),
		fileHeader(t, "b.jpg", jpegHeader),
	}

	assert.NoError(t, svc.ValidateImages(files, 0))
}

func TestValidateImagesRejectsNonImage(t *testing.T) {
	svc := &UploadService{}

	files := []*multipart.FileHeader{
		fileHeader(t, "a.png", pngHeader),
		fileHeader(t, "notes.txt", []byte("plain text pretending to be a picture")),
	}

	assert.ErrorIs(t, svc.ValidateImages(files, 0), ErrInvalidImageType)
}

func TestValidateImagesRejectsOversizedFile(t *testing.T) {
	svc := &UploadService{}

	// Size is checked before the file is opened.
	files := []*multipart.FileHeader{
		{Filename: "huge.png", Size: MaxImageSize + 1},
	}

	assert.ErrorIs(t, svc.ValidateImages(files, 0), ErrImageTooLarge)
}

func TestValidateImagesEnforcesShopCap(t *testing.T) {
	svc := &UploadService{}

	files := []*multipart.FileHeader{
		{Filename: "a.png"},
		{Filename: "b.png"},
	}

	// 4 existing + 2 new exceeds the cap of 5.
	assert.ErrorIs(t, svc.ValidateImages(files, 4), ErrTooManyImages)
}

func TestValidateImagesCapCountsWholeBatch(t *testing.T) {
	svc := &UploadService{}

	files := make([]*multipart.FileHeader, 0, MaxShopImages+1)
	for i := 0; i <= MaxShopImages; i++ {
		files = append(files, &multipart.FileHeader{Filename: "x.png"})
	}

	assert.ErrorIs(t, svc.ValidateImages(files, 0), ErrTooManyImages)
}
