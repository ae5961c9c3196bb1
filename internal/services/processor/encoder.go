package processor

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/phamqv/image-bundler/internal/models"
)

func (p *ImageProcessor) encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case models.FormatJPEG:
		return imaging.Encode(w, flattenAlpha(img), imaging.JPEG, imaging.JPEGQuality(quality))
	case models.FormatPNG:
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(pngLevel(quality)))
	case models.FormatWebP:
		return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// pngLevel maps the 1-100 quality scale onto the png package's
// compression levels. PNG is lossless, so quality only trades file
// size against encode time.
func pngLevel(quality int) png.CompressionLevel {
	switch {
	case quality <= 33:
		return png.BestCompression
	case quality <= 66:
		return png.DefaultCompression
	default:
		return png.BestSpeed
	}
}

// flattenAlpha composites transparent images onto a white background.
// JPEG has no alpha channel; without this, transparency turns black.
func flattenAlpha(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
