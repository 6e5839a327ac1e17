package cluster

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibserve/internal/errors"
	"github.com/agbru/fibserve/internal/logging"
)

// Coordinator launches a fixed set of workers.
type Coordinator struct {
	spawner Spawner
	workers int
	logger  logging.Logger
}

// New creates a coordinator that starts workers processes through spawner.
func New(spawner Spawner, workers int, logger logging.Logger) *Coordinator {
	return &Coordinator{spawner: spawner, workers: workers, logger: logger}
}

// Start spawns every worker concurrently and returns their pids indexed by
// worker id - 1. On failure it returns the first SpawnError; workers that did
// start are left running.
func (c *Coordinator) Start(ctx context.Context) ([]int, error) {
	pids := make([]int, c.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i := range c.workers {
		id := i + 1
		g.Go(func() error {
			pid, err := c.spawner.Spawn(gctx, id)
			if err != nil {
				return apperrors.SpawnError{Worker: id, Cause: err}
			}
			pids[id-1] = pid
			c.logger.Info("worker spawned", logging.Int("worker", id), logging.Int("pid", pid))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return pids, err
	}
	return pids, nil
}
