package storage

import (
	"time"

	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/phamqv/image-bundler/internal/config"
)

// StorageService wraps the optional backends: a Redis cache for
// processed results and job state, and Supabase object storage for
// async job outputs. The synchronous endpoints work without either.
type StorageService struct {
	sbClient      *storage_go.Client
	redisClient   *redis.Client
	bucket        string
	cacheDuration time.Duration
}

func NewStorageService(cfg *config.Config) *StorageService {
	var sbClient *storage_go.Client
	if cfg.Supabase.URL != "" {
		sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.Key, nil)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	return &StorageService{
		sbClient:      sbClient,
		redisClient:   redisClient,
		bucket:        cfg.Supabase.Bucket,
		cacheDuration: cfg.Limits.CacheDuration,
	}
}

// UploadEnabled reports whether object storage is configured.
func (s *StorageService) UploadEnabled() bool {
	return s.sbClient != nil
}

// CacheEnabled reports whether the Redis backend is configured. The
// result cache and the async job store both need it.
func (s *StorageService) CacheEnabled() bool {
	return s.redisClient != nil
}
