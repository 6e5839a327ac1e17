// Package config holds the fixed runtime configuration of fibserve.
//
// Nothing here is user-tunable: the listening address, the worker count and
// the Fibonacci index are constants of the benchmark. The only value read from
// the environment is the worker marker the coordinator hands to its children.
package config

import (
	"github.com/agbru/fibserve/internal/fibonacci"
)

const (
	// EnvPrefix namespaces the environment variables the program reads.
	EnvPrefix = "FIBSERVE_"

	// DefaultAddr is the listening address of every worker: port 8000 on all
	// interfaces.
	DefaultAddr = ":8000"

	// DefaultWorkers is the number of worker processes the coordinator spawns.
	DefaultWorkers = 4
)

// AppConfig is the resolved configuration for one process.
type AppConfig struct {
	// Addr is the TCP address workers listen on.
	Addr string
	// Workers is how many worker processes the coordinator starts.
	Workers int
	// N is the Fibonacci index computed per request.
	N uint64
	// WorkerID is the 1-based id handed down by the coordinator, or 0 when
	// this process is the coordinator.
	WorkerID int
}

// Default returns the fixed benchmark configuration for a coordinator.
func Default() AppConfig {
	return AppConfig{
		Addr:    DefaultAddr,
		Workers: DefaultWorkers,
		N:       fibonacci.BenchmarkIndex,
	}
}

// IsWorker reports whether this process was started by a coordinator.
func (c AppConfig) IsWorker() bool {
	return c.WorkerID > 0
}
