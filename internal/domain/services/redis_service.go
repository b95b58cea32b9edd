package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
)

const provinceTreeKey = "address:province_tree"

// InterfaceRedisService defines the Redis cache service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheProvinceTree(provinces []models.Province, expiration time.Duration) error
	GetProvinceTree() ([]models.Province, error)
	InvalidateProvinceTree() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheProvinceTree caches the full province/district/subdistrict hierarchy
func (s *RedisService) CacheProvinceTree(provinces []models.Province, expiration time.Duration) error {
	return s.Set(provinceTreeKey, provinces, expiration)
}

// GetProvinceTree reads the cached hierarchy; redis.Nil when absent
func (s *RedisService) GetProvinceTree() ([]models.Province, error) {
	var provinces []models.Province
	if err := s.Get(provinceTreeKey, &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}

// InvalidateProvinceTree drops the cached hierarchy
func (s *RedisService) InvalidateProvinceTree() error {
	return s.Delete(provinceTreeKey)
}
