package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatWebP = "webp"

	DefaultQuality = 85
)

// NamedPresets maps preset names to fixed target resolutions.
var NamedPresets = map[string]struct{ Width, Height int }{
	"thumbnail": {300, 300},
	"square":    {1024, 1024},
	"hd":        {1280, 720},
	"fullhd":    {1920, 1080},
}

// TransformRequest carries the per-request transformation parameters.
// At most one sizing mode (explicit dimensions, preset, percentage) may
// be set; with none set the output keeps the input dimensions.
type TransformRequest struct {
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
	Preset     string  `json:"preset,omitempty"`
	Quality    int     `json:"quality"`
	Format     string  `json:"format"`
}

// Normalize validates the request and folds the preset into explicit
// dimensions or a percentage. maxDimension guards against absurd
// target sizes.
func (r *TransformRequest) Normalize(maxDimension int) error {
	modes := 0
	if r.Width > 0 || r.Height > 0 {
		modes++
	}
	if r.Percentage > 0 {
		modes++
	}
	if r.Preset != "" {
		modes++
	}
	if modes > 1 {
		return fmt.Errorf("width/height, preset and percentage are mutually exclusive")
	}

	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if r.Percentage < 0 {
		return fmt.Errorf("percentage must be positive")
	}

	if r.Preset != "" {
		if err := r.resolvePreset(); err != nil {
			return err
		}
	}

	if r.Width > maxDimension || r.Height > maxDimension {
		return fmt.Errorf("max dimension is %dpx", maxDimension)
	}

	if r.Quality == 0 {
		r.Quality = DefaultQuality
	}
	if r.Quality < 1 || r.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}

	format, err := NormalizeFormat(r.Format)
	if err != nil {
		return err
	}
	r.Format = format

	return nil
}

// resolvePreset accepts a named preset, an explicit "WxH" box or a
// "N%" percentage and rewrites the request accordingly.
func (r *TransformRequest) resolvePreset() error {
	preset := strings.ToLower(strings.TrimSpace(r.Preset))

	if box, ok := NamedPresets[preset]; ok {
		r.Width, r.Height = box.Width, box.Height
		r.Preset = ""
		return nil
	}

	if strings.HasSuffix(preset, "%") {
		pct, err := strconv.Atoi(strings.TrimSuffix(preset, "%"))
		if err != nil || pct <= 0 {
			return fmt.Errorf("invalid percentage preset %q", r.Preset)
		}
		r.Percentage = float64(pct)
		r.Preset = ""
		return nil
	}

	if a, b, ok := strings.Cut(preset, "x"); ok {
		w, errW := strconv.Atoi(a)
		h, errH := strconv.Atoi(b)
		if errW != nil || errH != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("invalid size preset %q", r.Preset)
		}
		r.Width, r.Height = w, h
		r.Preset = ""
		return nil
	}

	return fmt.Errorf("unknown preset %q", r.Preset)
}

// NormalizeFormat maps user-supplied format names onto the canonical
// encoder names. Empty input defaults to JPEG.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: must be jpeg, png or webp", format)
	}
}

// Extension returns the output filename extension for a canonical format.
func Extension(format string) string {
	if format == FormatJPEG {
		return ".jpg"
	}
	return "." + format
}

// ContentType returns the response MIME type for a canonical format.
func ContentType(format string) string {
	return "image/" + format
}
