package docdeck

import "context"

// Health reports backend liveness.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// OK reports whether the backend considers itself healthy.
func (h *Health) OK() bool {
	return h.Status == "ok" || h.Status == "healthy"
}

// HealthService checks backend liveness.
type HealthService interface {
	Check(ctx context.Context) (*Health, error)
}
