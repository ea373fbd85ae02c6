package models

import "time"

// Health is the payload of the liveness endpoint. Database reflects a
// cheap round-trip probe; the endpoint answers 503 when it is false.
type Health struct {
	// Status is "healthy" or "unhealthy", mirroring Database.
	Status string `json:"status"`

	// Database reports whether the store answered the probe.
	Database bool `json:"database"`

	// Timestamp is when the probe ran.
	Timestamp time.Time `json:"timestamp"`

	// Version is the running application version.
	Version string `json:"version"`
}

// Health status values.
const (
	HealthStatusOK          = "healthy"
	HealthStatusUnavailable = "unhealthy"
)
