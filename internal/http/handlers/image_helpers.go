package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phamqv/image-bundler/internal/models"
	"github.com/phamqv/image-bundler/pkg/utils"
)

// === REQUEST PARSING ===

func (h *ImageHandler) parseTransformParams(c *gin.Context) (*models.TransformRequest, error) {
	width, err := parseOptionalInt(c.PostForm("width"), "width")
	if err != nil {
		return nil, err
	}

	height, err := parseOptionalInt(c.PostForm("height"), "height")
	if err != nil {
		return nil, err
	}

	percentage, err := parseOptionalFloat(c.PostForm("percentage"), "percentage")
	if err != nil {
		return nil, err
	}

	quality, err := parseOptionalInt(c.PostForm("quality"), "quality")
	if err != nil {
		return nil, err
	}

	req := &models.TransformRequest{
		Width:      width,
		Height:     height,
		Percentage: percentage,
		Preset:     c.PostForm("preset"),
		Quality:    quality,
		Format:     c.PostForm("format"),
	}

	if err := req.Normalize(h.config.Limits.MaxDimension); err != nil {
		return nil, err
	}

	return req, nil
}

func (h *ImageHandler) parseMultipartFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("failed to parse form data: %v", err)
	}

	files := form.File[imagesParamKey]
	if len(files) == 0 {
		return nil, fmt.Errorf("no images provided")
	}

	if max := h.config.Limits.MaxFiles; len(files) > max {
		return nil, fmt.Errorf("too many files: %d exceeds the limit of %d", len(files), max)
	}

	return files, nil
}

func parseOptionalInt(value, fieldName string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	num, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", fieldName)
	}
	if num < 0 {
		return 0, fmt.Errorf("%s must be a positive integer", fieldName)
	}

	return num, nil
}

func parseOptionalFloat(value, fieldName string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", fieldName)
	}
	if num < 0 {
		return 0, fmt.Errorf("%s must be positive", fieldName)
	}

	return num, nil
}

// === FILE OPERATIONS ===

func (h *ImageHandler) readUploadedFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > h.config.Limits.MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds the maximum size of %d bytes", fh.Filename, h.config.Limits.MaxFileSize)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", fh.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", fh.Filename, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty", fh.Filename)
	}

	if ct := http.DetectContentType(data); !utils.IsValidImageType(ct) {
		return nil, fmt.Errorf("file %s is not a supported image type (%s)", fh.Filename, ct)
	}

	return data, nil
}

// === RESPONSE HANDLING ===

func (h *ImageHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *ImageHandler) respondWithImage(c *gin.Context, img *models.ProcessedImage, skipped []models.SkippedFile) {
	h.setSkippedHeader(c, skipped)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", img.Filename))
	c.Header("X-Original-Bytes", strconv.FormatInt(img.OriginalBytes, 10))
	c.Header("X-Processed-Bytes", strconv.FormatInt(img.ProcessedBytes(), 10))
	c.Header("X-Output-Width", strconv.Itoa(img.Width))
	c.Header("X-Output-Height", strconv.Itoa(img.Height))
	c.Data(http.StatusOK, models.ContentType(img.Format), img.Data)
}

func (h *ImageHandler) respondWithArchive(c *gin.Context, data []byte, skipped []models.SkippedFile) {
	h.setSkippedHeader(c, skipped)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiveFilename))
	c.Data(http.StatusOK, "application/zip", data)
}

// setSkippedHeader reports every skipped input on the response so a
// partial batch is never mistaken for a complete one.
func (h *ImageHandler) setSkippedHeader(c *gin.Context, skipped []models.SkippedFile) {
	if len(skipped) == 0 {
		return
	}

	entries := make([]string, len(skipped))
	for i, s := range skipped {
		reason := strings.ReplaceAll(s.Reason, "\n", " ")
		entries[i] = fmt.Sprintf("%s (%s)", s.Filename, reason)
	}
	c.Header("X-Skipped-Files", strings.Join(entries, "; "))
}

// === CACHE OPERATIONS ===

func (h *ImageHandler) tryCache(c *gin.Context, data []byte, req *models.TransformRequest) (*models.ProcessedImage, bool) {
	if !h.storage.CacheEnabled() {
		return nil, false
	}

	key := h.storage.CacheKey(data, req)
	img, err := h.storage.GetCachedImage(c.Request.Context(), key)
	if err != nil {
		h.logger.Warn("Cache lookup failed", zap.Error(err))
		return nil, false
	}
	if img == nil {
		return nil, false
	}

	h.logger.Info("Cache hit", zap.String("cache_key", key))
	return img, true
}

func (h *ImageHandler) setCache(c *gin.Context, data []byte, req *models.TransformRequest, img *models.ProcessedImage) {
	if !h.storage.CacheEnabled() {
		return
	}

	key := h.storage.CacheKey(data, req)
	if err := h.storage.SetCachedImage(c.Request.Context(), key, img); err != nil {
		h.logger.Warn("Failed to cache result", zap.String("cache_key", key), zap.Error(err))
	}
}

// === UTILITY METHODS ===

func (h *ImageHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
