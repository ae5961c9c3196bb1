package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phamqv/image-bundler/internal/config"
	"github.com/phamqv/image-bundler/internal/models"
	"github.com/phamqv/image-bundler/internal/services/archive"
	"github.com/phamqv/image-bundler/internal/services/processor"
	"github.com/phamqv/image-bundler/internal/services/queue"
	"github.com/phamqv/image-bundler/internal/services/storage"
)

const (
	imageParamKey  = "image"
	imagesParamKey = "images"

	archiveFilename = "processed_images.zip"
)

type ImageHandler struct {
	processor *processor.ImageProcessor
	assembler *archive.Assembler
	storage   *storage.StorageService
	queue     *queue.QueueService
	logger    *zap.Logger
	config    *config.Config
}

func NewImageHandler(
	processor *processor.ImageProcessor,
	assembler *archive.Assembler,
	storage *storage.StorageService,
	queue *queue.QueueService,
	logger *zap.Logger,
	config *config.Config,
) *ImageHandler {
	return &ImageHandler{
		processor: processor,
		assembler: assembler,
		storage:   storage,
		queue:     queue,
		logger:    logger,
		config:    config,
	}
}

// ProcessImage transforms a single uploaded image and returns it raw.
func (h *ImageHandler) ProcessImage(c *gin.Context) {
	req, err := h.parseTransformParams(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile(imageParamKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}

	data, err := h.readUploadedFile(fileHeader)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if img, ok := h.tryCache(c, data, req); ok {
		h.respondWithImage(c, img, nil)
		return
	}

	img, err := h.processor.Process(data, fileHeader.Filename, req)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.setCache(c, data, req, img)
	h.respondWithImage(c, img, nil)
}

// BundleImages transforms every uploaded image. A single survivor is
// returned raw, several are packaged into one ZIP archive. Files that
// cannot be decoded are skipped and reported, never fatal.
func (h *ImageHandler) BundleImages(c *gin.Context) {
	req, err := h.parseTransformParams(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeaders, err := h.parseMultipartFiles(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var (
		images  []*models.ProcessedImage
		skipped []models.SkippedFile
	)

	for _, fh := range fileHeaders {
		data, err := h.readUploadedFile(fh)
		if err != nil {
			skipped = append(skipped, models.SkippedFile{Filename: fh.Filename, Reason: err.Error()})
			continue
		}

		img, err := h.processor.Process(data, fh.Filename, req)
		if err != nil {
			h.logger.Warn("Skipping file",
				zap.String("filename", fh.Filename),
				zap.Error(err))
			skipped = append(skipped, models.SkippedFile{Filename: fh.Filename, Reason: err.Error()})
			continue
		}

		images = append(images, img)
	}

	if len(images) == 0 {
		h.respondError(c, http.StatusBadRequest, "All uploaded files were empty or invalid")
		return
	}

	if len(images) == 1 {
		h.respondWithImage(c, images[0], skipped)
		return
	}

	data, err := h.assembler.Bundle(images)
	if err != nil {
		h.logger.Error("Failed to build archive", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to build archive")
		return
	}

	h.respondWithArchive(c, data, skipped)
}

// CreateJob enqueues an asynchronous bundle job. Requires the queue,
// the job store and object storage; without them the endpoint
// reports 503.
func (h *ImageHandler) CreateJob(c *gin.Context) {
	if h.queue == nil || !h.storage.UploadEnabled() || !h.storage.CacheEnabled() {
		h.respondError(c, http.StatusServiceUnavailable, "Async processing is not configured")
		return
	}

	req, err := h.parseTransformParams(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeaders, err := h.parseMultipartFiles(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	files := make([]models.JobFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		data, err := h.readUploadedFile(fh)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		files = append(files, models.JobFile{Filename: fh.Filename, Data: data})
	}

	job := &models.BatchJob{
		ID:        uuid.New().String(),
		Request:   *req,
		Files:     files,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := h.storage.SaveJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to save job state", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	if err := h.queue.PublishJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to publish job", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to enqueue job")
		return
	}

	c.JSON(http.StatusAccepted, models.APIResponse{
		Success: true,
		Data: gin.H{
			"job_id": job.ID,
			"status": job.Status,
		},
	})
}

// GetJob reports the state of an asynchronous job.
func (h *ImageHandler) GetJob(c *gin.Context) {
	if !h.storage.CacheEnabled() {
		h.respondError(c, http.StatusServiceUnavailable, "Async processing is not configured")
		return
	}

	job, err := h.storage.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load job state", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil {
		h.respondError(c, http.StatusNotFound, "Job not found")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// HealthCheck
func (h *ImageHandler) HealthCheck(c *gin.Context) {
	services := h.storage.HealthCheck(c.Request.Context())
	if h.queue != nil {
		services["rabbitmq"] = h.queue.HealthCheck()
	} else {
		services["rabbitmq"] = "not configured"
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}
