package mock

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.HealthService = (*HealthService)(nil)

// HealthService is a mock implementation of docdeck.HealthService.
type HealthService struct {
	CheckFn func(ctx context.Context) (*docdeck.Health, error)
}

func (s *HealthService) Check(ctx context.Context) (*docdeck.Health, error) {
	return s.CheckFn(ctx)
}
