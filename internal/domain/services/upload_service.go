package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"shopdesk-http-service/internal/infrastructure/config"
	"shopdesk-http-service/pkg/logger"
)

// Image upload limits
const (
	MaxShopImages    = 5
	MaxImageSize     = 5 << 20 // 5 MiB
	sniffHeaderBytes = 512
)

// Upload validation errors
var (
	ErrTooManyImages    = errors.New("a shop can hold at most 5 images")
	ErrInvalidImageType = errors.New("file is not an image")
	ErrImageTooLarge    = errors.New("image exceeds 5 MiB")
	ErrUploadFailed     = errors.New("failed to store image")
)

// InterfaceUploadService defines the image upload service interface
type InterfaceUploadService interface {
	ValidateImages(files []*multipart.FileHeader, existing int) error
	UploadShopImages(ctx context.Context, shopID uint, files []*multipart.FileHeader) ([]string, error)
	RemoveObject(ctx context.Context, path string) error
}

// UploadService stores shop images in MinIO. Validation happens before any
// byte is written, so a rejected batch stores nothing.
type UploadService struct {
	Config *config.Config
	Client *minio.Client
}

// NewUploadService creates a new upload service and connects to MinIO
func NewUploadService(cfg *config.Config) (InterfaceUploadService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	service := &UploadService{
		Config: cfg,
		Client: client,
	}
	if err := service.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	logger.Info("Connected to MinIO at %s (bucket %s)", cfg.MinioEndpoint, cfg.MinioBucket)
	return service, nil
}

// ensureBucket creates the image bucket when it does not exist yet
func (s *UploadService) ensureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := s.Client.BucketExists(ctx, s.Config.MinioBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.Client.MakeBucket(ctx, s.Config.MinioBucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// 1 ValidateImages checks a batch of uploads against the image rules:
// the shop's total stays within five, every file sniffs as an image and
// none exceeds the size cap. The declared Content-Type header is ignored.
func (s *UploadService) ValidateImages(files []*multipart.FileHeader, existing int) error {
	if existing+len(files) > MaxShopImages {
		return ErrTooManyImages
	}

	for _, file := range files {
		if file.Size > MaxImageSize {
			return ErrImageTooLarge
		}

		f, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open upload %s: %w", file.Filename, err)
		}
		header := make([]byte, sniffHeaderBytes)
		n, _ := f.Read(header)
		f.Close()

		contentType := http.DetectContentType(header[:n])
		if !strings.HasPrefix(contentType, "image/") {
			return ErrInvalidImageType
		}
	}
	return nil
}

// 2 UploadShopImages stores a validated batch and returns the object paths.
// Objects are keyed by shop id and a fresh uuid so re-uploads never collide.
func (s *UploadService) UploadShopImages(ctx context.Context, shopID uint, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", file.Filename, err)
		}

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read upload %s: %w", file.Filename, err)
		}
		f.Close()

		data := buf.Bytes()
		contentType := http.DetectContentType(data[:min(len(data), sniffHeaderBytes)])

		objectName := fmt.Sprintf("shops/%d/%s%s", shopID, uuid.New().String(), filepath.Ext(file.Filename))

		_, err = s.Client.PutObject(ctx, s.Config.MinioBucket, objectName,
			bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
				ContentType: contentType,
				UserMetadata: map[string]string{
					"filename": file.Filename,
				},
			})
		if err != nil {
			logger.Error("Failed to upload %s: %v", objectName, err)
			return nil, ErrUploadFailed
		}

		logger.Info("Uploaded %s (%d bytes)", objectName, len(data))
		paths = append(paths, objectName)
	}

	return paths, nil
}

// 3 RemoveObject deletes one stored image by its relative path
func (s *UploadService) RemoveObject(ctx context.Context, path string) error {
	return s.Client.RemoveObject(ctx, s.Config.MinioBucket, path, minio.RemoveObjectOptions{})
}
