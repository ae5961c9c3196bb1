package processor

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register webp decoder

	"github.com/phamqv/image-bundler/internal/models"
	"github.com/phamqv/image-bundler/pkg/utils"
)

// ImageProcessor turns one uploaded image into one re-encoded output:
// decode, compute a target size preserving aspect ratio, resize,
// encode at the requested quality and format.
type ImageProcessor struct {
	maxDimension int
}

func NewImageProcessor(maxDimension int) *ImageProcessor {
	return &ImageProcessor{maxDimension: maxDimension}
}

// Process transforms a single image. The request must have been
// normalized already; decode errors are per-file errors the caller can
// skip without aborting a batch.
func (p *ImageProcessor) Process(data []byte, originalName string, req *models.TransformRequest) (*models.ProcessedImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not read image: %w", err)
	}

	bounds := img.Bounds()
	width, height := targetSize(bounds.Dx(), bounds.Dy(), req)
	if width > p.maxDimension || height > p.maxDimension {
		return nil, fmt.Errorf("target size %dx%d exceeds max dimension %dpx", width, height, p.maxDimension)
	}

	if width != bounds.Dx() || height != bounds.Dy() {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	buffer := &bytes.Buffer{}
	if err := p.encode(buffer, img, req.Format, req.Quality); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &models.ProcessedImage{
		Filename:      utils.DerivedName(originalName, models.Extension(req.Format)),
		Format:        req.Format,
		Data:          buffer.Bytes(),
		Width:         width,
		Height:        height,
		OriginalBytes: int64(len(data)),
	}, nil
}
