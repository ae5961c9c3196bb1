package models

import (
	"strings"
	"testing"
)

func TestTransformRequestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		req     TransformRequest
		wantErr string
		check   func(t *testing.T, req *TransformRequest)
	}{
		{
			name: "defaults applied",
			req:  TransformRequest{},
			check: func(t *testing.T, req *TransformRequest) {
				if req.Quality != DefaultQuality {
					t.Errorf("quality = %d, want %d", req.Quality, DefaultQuality)
				}
				if req.Format != FormatJPEG {
					t.Errorf("format = %q, want %q", req.Format, FormatJPEG)
				}
			},
		},
		{
			name: "explicit dimensions",
			req:  TransformRequest{Width: 800, Height: 600, Quality: 90, Format: "png"},
			check: func(t *testing.T, req *TransformRequest) {
				if req.Width != 800 || req.Height != 600 {
					t.Errorf("dimensions = %dx%d, want 800x600", req.Width, req.Height)
				}
			},
		},
		{
			name:    "dimensions and percentage conflict",
			req:     TransformRequest{Width: 800, Percentage: 50},
			wantErr: "mutually exclusive",
		},
		{
			name:    "dimensions and preset conflict",
			req:     TransformRequest{Height: 600, Preset: "hd"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "preset and percentage conflict",
			req:     TransformRequest{Preset: "50%", Percentage: 25},
			wantErr: "mutually exclusive",
		},
		{
			name: "named preset resolves to box",
			req:  TransformRequest{Preset: "hd"},
			check: func(t *testing.T, req *TransformRequest) {
				if req.Width != 1280 || req.Height != 720 {
					t.Errorf("dimensions = %dx%d, want 1280x720", req.Width, req.Height)
				}
				if req.Preset != "" {
					t.Errorf("preset not cleared: %q", req.Preset)
				}
			},
		},
		{
			name: "WxH preset resolves to box",
			req:  TransformRequest{Preset: "1024x1024"},
			check: func(t *testing.T, req *TransformRequest) {
				if req.Width != 1024 || req.Height != 1024 {
					t.Errorf("dimensions = %dx%d, want 1024x1024", req.Width, req.Height)
				}
			},
		},
		{
			name: "percentage preset resolves",
			req:  TransformRequest{Preset: "50%"},
			check: func(t *testing.T, req *TransformRequest) {
				if req.Percentage != 50 {
					t.Errorf("percentage = %v, want 50", req.Percentage)
				}
			},
		},
		{
			name:    "unknown preset",
			req:     TransformRequest{Preset: "gigantic"},
			wantErr: "unknown preset",
		},
		{
			name:    "bad percentage preset",
			req:     TransformRequest{Preset: "-5%"},
			wantErr: "invalid",
		},
		{
			name:    "dimension over the limit",
			req:     TransformRequest{Width: 30000},
			wantErr: "max dimension",
		},
		{
			name:    "quality out of range",
			req:     TransformRequest{Quality: 101},
			wantErr: "quality",
		},
		{
			name:    "unsupported format",
			req:     TransformRequest{Format: "gif"},
			wantErr: "unsupported output format",
		},
		{
			name: "jpg normalizes to jpeg",
			req:  TransformRequest{Format: "JPG"},
			check: func(t *testing.T, req *TransformRequest) {
				if req.Format != FormatJPEG {
					t.Errorf("format = %q, want %q", req.Format, FormatJPEG)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Normalize(20000)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Normalize() = nil, want error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Normalize() = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, &tt.req)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatJPEG, ".jpg"},
		{FormatPNG, ".png"},
		{FormatWebP, ".webp"},
	}

	for _, tt := range tests {
		if got := Extension(tt.format); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
