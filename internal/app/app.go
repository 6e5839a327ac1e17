package app

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/agbru/fibserve/internal/cluster"
	"github.com/agbru/fibserve/internal/config"
	apperrors "github.com/agbru/fibserve/internal/errors"
	"github.com/agbru/fibserve/internal/logging"
	"github.com/agbru/fibserve/internal/server"
	"github.com/agbru/fibserve/internal/sysmon"
)

// Application is one fibserve process, in either the coordinator or the worker
// role.
type Application struct {
	Config    config.AppConfig
	Args      []string
	Spawner   cluster.Spawner
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSpawner replaces the process spawner used by the coordinator role.
func WithSpawner(s cluster.Spawner) AppOption {
	return func(a *Application) { a.Spawner = s }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithConfig replaces the resolved configuration.
func WithConfig(cfg config.AppConfig) AppOption {
	return func(a *Application) { a.Config = cfg }
}

// New resolves the role from the environment and builds the Application.
// Command-line arguments carry no meaning; they are handed to workers as-is.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	app := &Application{Config: cfg, Args: cmdArgs, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, app.role())
	}
	if app.Spawner == nil {
		app.Spawner = cluster.NewExecSpawner(app.Args)
	}
	return app, nil
}

// Run executes the process role and returns its exit code. In the worker role
// it only returns if the listener fails.
func (a *Application) Run(ctx context.Context) int {
	var err error
	if a.Config.IsWorker() {
		err = a.runWorker(ctx)
	} else {
		err = a.runCoordinator(ctx)
	}
	if err != nil {
		a.Logger.Error(a.role()+" failed", err)
	}
	return apperrors.ExitCode(err)
}

// runCoordinator starts the workers and returns without waiting on them.
func (a *Application) runCoordinator(ctx context.Context) error {
	a.Logger.Info("starting workers",
		logging.Int("workers", a.Config.Workers),
		logging.Int("pid", os.Getpid()))
	a.Logger.Info("host load", sysmon.Sample().Fields()...)
	_, err := cluster.New(a.Spawner, a.Config.Workers, a.Logger).Start(ctx)
	return err
}

// runWorker serves HTTP on the shared address. Each worker is pinned to one
// processor.
func (a *Application) runWorker(ctx context.Context) error {
	runtime.GOMAXPROCS(1)
	a.Logger.Info("worker starting",
		logging.Int("worker", a.Config.WorkerID),
		logging.Int("pid", os.Getpid()),
		logging.Uint64("n", a.Config.N))
	a.Logger.Debug("gomaxprocs pinned", logging.Int("procs", 1))
	return server.New(a.Config.N, a.Logger).ListenAndServe(ctx, a.Config.Addr)
}

func (a *Application) role() string {
	if a.Config.IsWorker() {
		return "worker"
	}
	return "coordinator"
}
