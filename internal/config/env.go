// This file contains the environment handshake between coordinator and workers.

package config

import (
	"fmt"
	"os"
	"strconv"

	apperrors "github.com/agbru/fibserve/internal/errors"
)

// WorkerIDKey is the environment key (without EnvPrefix) that marks a process
// as a worker. It is set by the coordinator only.
const WorkerIDKey = "WORKER_ID"

// WorkerIDEnv returns the full environment assignment that starts a process
// in the worker role with the given id.
func WorkerIDEnv(id int) string {
	return fmt.Sprintf("%s%s=%d", EnvPrefix, WorkerIDKey, id)
}

// FromEnv returns Default() with the worker marker applied from the process
// environment.
func FromEnv() (AppConfig, error) {
	return fromLookup(os.LookupEnv)
}

// fromLookup resolves the configuration using the given environment lookup.
// An absent or empty marker selects the coordinator role.
func fromLookup(lookup func(string) (string, bool)) (AppConfig, error) {
	cfg := Default()
	val, ok := lookup(EnvPrefix + WorkerIDKey)
	if !ok || val == "" {
		return cfg, nil
	}
	id, err := strconv.Atoi(val)
	if err != nil || id < 1 {
		return cfg, apperrors.NewConfigError("invalid %s%s value %q: want a positive integer", EnvPrefix, WorkerIDKey, val)
	}
	cfg.WorkerID = id
	return cfg, nil
}
