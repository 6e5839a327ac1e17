package cluster

//go:generate mockgen -source=spawner.go -destination=mocks/mock_spawner.go -package=mocks

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/agbru/fibserve/internal/config"
	apperrors "github.com/agbru/fibserve/internal/errors"
)

// Spawner starts one worker process.
type Spawner interface {
	// Spawn starts worker id (1-based) and returns its process id. It must not
	// wait for the worker to exit.
	Spawn(ctx context.Context, id int) (int, error)
}

// ExecSpawner starts workers by re-executing a binary with the worker marker
// added to its environment.
type ExecSpawner struct {
	// Path is the binary to run. Empty means the current executable.
	Path string
	// Args are passed to every worker after the program name.
	Args []string
	// Env is the base environment. Nil means os.Environ().
	Env []string
	// Stdout and Stderr are inherited by the workers. Pass *os.File values so
	// that output keeps flowing after the coordinator exits.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecSpawner returns a spawner that re-executes the current binary with
// the given arguments and the coordinator's stdout and stderr.
func NewExecSpawner(args []string) *ExecSpawner {
	return &ExecSpawner{Args: args, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Spawn starts worker id. ctx only gates the start: the worker is not tied to
// ctx and outlives it.
func (s *ExecSpawner) Spawn(ctx context.Context, id int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	path := s.Path
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return 0, apperrors.WrapError(err, "locate worker executable")
		}
		path = exe
	}

	env := s.Env
	if env == nil {
		env = os.Environ()
	}

	cmd := exec.Command(path, s.Args...)
	cmd.Env = append(env[:len(env):len(env)], config.WorkerIDEnv(id))
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err := cmd.Start(); err != nil {
		return 0, apperrors.WrapError(err, "start %s", path)
	}
	return cmd.Process.Pid, nil
}
