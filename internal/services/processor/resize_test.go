package processor

import (
	"math"
	"testing"

	"github.com/phamqv/image-bundler/internal/models"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name           string
		ow, oh, tw, th int
		wantW, wantH   int
	}{
		{"landscape into square box", 1000, 800, 500, 500, 500, 400},
		{"portrait into square box", 800, 1000, 500, 500, 400, 500},
		{"width only", 1000, 800, 500, 0, 500, 400},
		{"height only", 1000, 800, 0, 400, 500, 400},
		{"upscale to fit", 100, 50, 400, 400, 400, 200},
		{"no constraint", 1000, 800, 0, 0, 1000, 800},
		{"tiny result clamps to 1px", 1000, 2, 10, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitSize(tt.ow, tt.oh, tt.tw, tt.th)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitSize(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tt.ow, tt.oh, tt.tw, tt.th, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitSizePreservesAspectRatio(t *testing.T) {
	boxes := []struct{ tw, th int }{
		{100, 100}, {640, 480}, {1920, 1080}, {333, 777}, {50, 2000},
	}

	const ow, oh = 1234, 871
	origRatio := float64(ow) / float64(oh)

	for _, box := range boxes {
		w, h := fitSize(ow, oh, box.tw, box.th)
		if w > box.tw || h > box.th {
			t.Errorf("fitSize into %dx%d produced %dx%d, exceeds the box", box.tw, box.th, w, h)
		}
		ratio := float64(w) / float64(h)
		// Rounding of small outputs shifts the ratio slightly.
		if math.Abs(ratio-origRatio)/origRatio > 0.05 {
			t.Errorf("fitSize into %dx%d produced %dx%d, ratio %.3f drifted from %.3f",
				box.tw, box.th, w, h, ratio, origRatio)
		}
	}
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name         string
		ow, oh       int
		req          models.TransformRequest
		wantW, wantH int
	}{
		{"fifty percent", 1000, 800, models.TransformRequest{Percentage: 50}, 500, 400},
		{"twentyfive percent", 1000, 800, models.TransformRequest{Percentage: 25}, 250, 200},
		{"box", 1000, 800, models.TransformRequest{Width: 100, Height: 100}, 100, 80},
		{"no sizing keeps original", 1000, 800, models.TransformRequest{}, 1000, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := targetSize(tt.ow, tt.oh, &tt.req)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("targetSize(%d, %d) = %dx%d, want %dx%d",
					tt.ow, tt.oh, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
