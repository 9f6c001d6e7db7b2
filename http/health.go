package http

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

// Ensure Client implements docdeck.HealthService at compile time.
var _ docdeck.HealthService = (*Client)(nil)

// Check reports backend liveness.
func (c *Client) Check(ctx context.Context) (*docdeck.Health, error) {
	var health docdeck.Health
	if err := c.getJSON(ctx, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
