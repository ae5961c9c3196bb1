package models

import "time"

// HealthCheck reports the service status plus the state of each
// optional backend (cache, queue, object storage).
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
