package server

import (
	"context"

	"github.com/preston-bernstein/sports-dashboard-service/internal/sweeper"
)

// Sweeper defines the minimal session sweeper behavior needed by the server.
type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() sweeper.Status
}
