package models

// ProcessedImage is one re-encoded output. It lives only for the
// duration of a single request or job.
type ProcessedImage struct {
	Filename      string `json:"filename"`
	Format        string `json:"format"`
	Data          []byte `json:"-"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	OriginalBytes int64  `json:"original_bytes"`
}

// ProcessedBytes reports the encoded output size.
func (p *ProcessedImage) ProcessedBytes() int64 {
	return int64(len(p.Data))
}

// SkippedFile records an input that could not be processed.
type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
