package models

import "time"

// JobFile is one uploaded file carried inside an async batch job.
// Data is base64-encoded on the wire by encoding/json.
type JobFile struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// BatchJob is an asynchronous bundle request travelling through the
// queue. Status and result are kept in the cache until they expire.
type BatchJob struct {
	ID        string           `json:"id"`
	Request   TransformRequest `json:"request"`
	Files     []JobFile        `json:"files,omitempty"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	ResultURL string           `json:"result_url,omitempty"`
	Skipped   []SkippedFile    `json:"skipped,omitempty"`
	Error     string           `json:"error,omitempty"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
