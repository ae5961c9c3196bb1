package storage

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/phamqv/image-bundler/internal/models"
)

// cachedImage is the cache representation of a processed result.
// ProcessedImage itself never serializes its payload, so the cache
// carries it explicitly.
type cachedImage struct {
	Filename      string `json:"filename"`
	Format        string `json:"format"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	OriginalBytes int64  `json:"original_bytes"`
	Data          []byte `json:"data"`
}

// CacheKey derives a cache key from the input bytes and the transform
// parameters, so identical uploads with identical parameters hit.
func (s *StorageService) CacheKey(data []byte, req *models.TransformRequest) string {
	hash := md5.New()
	hash.Write(data)
	fmt.Fprintf(hash, "transform_%d_%d_%.2f_%d_%s",
		req.Width, req.Height, req.Percentage, req.Quality, req.Format)
	return fmt.Sprintf("img_cache:%x", hash.Sum(nil))
}

// GetCachedImage returns a cached result, or nil on a miss. Without a
// configured Redis backend every lookup is a miss. Cache errors are
// reported but callers treat them as misses.
func (s *StorageService) GetCachedImage(ctx context.Context, key string) (*models.ProcessedImage, error) {
	if s.redisClient == nil {
		return nil, nil
	}

	raw, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var cached cachedImage
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("cache unmarshal error: %w", err)
	}

	return &models.ProcessedImage{
		Filename:      cached.Filename,
		Format:        cached.Format,
		Data:          cached.Data,
		Width:         cached.Width,
		Height:        cached.Height,
		OriginalBytes: cached.OriginalBytes,
	}, nil
}

func (s *StorageService) SetCachedImage(ctx context.Context, key string, img *models.ProcessedImage) error {
	if s.redisClient == nil {
		return nil
	}

	raw, err := json.Marshal(cachedImage{
		Filename:      img.Filename,
		Format:        img.Format,
		Width:         img.Width,
		Height:        img.Height,
		OriginalBytes: img.OriginalBytes,
		Data:          img.Data,
	})
	if err != nil {
		return err
	}
	return s.redisClient.Set(ctx, key, raw, s.cacheDuration).Err()
}

// SaveJob persists async job state for polling. Jobs expire with the
// cache duration and require the Redis backend.
func (s *StorageService) SaveJob(ctx context.Context, job *models.BatchJob) error {
	if s.redisClient == nil {
		return fmt.Errorf("job store not configured")
	}

	// File payloads travel through the queue, not the status record.
	record := *job
	record.Files = nil

	raw, err := json.Marshal(&record)
	if err != nil {
		return err
	}
	return s.redisClient.Set(ctx, jobKey(job.ID), raw, s.cacheDuration).Err()
}

// GetJob returns the stored job state, or nil when unknown.
func (s *StorageService) GetJob(ctx context.Context, id string) (*models.BatchJob, error) {
	if s.redisClient == nil {
		return nil, fmt.Errorf("job store not configured")
	}

	raw, err := s.redisClient.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("job get error: %w", err)
	}

	var job models.BatchJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("job unmarshal error: %w", err)
	}
	return &job, nil
}

func jobKey(id string) string {
	return "img_job:" + id
}
