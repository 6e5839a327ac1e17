package cluster

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fibserve/internal/cluster/mocks"
	apperrors "github.com/agbru/fibserve/internal/errors"
	"github.com/agbru/fibserve/internal/logging"
)

func TestCoordinator_SpawnsEachWorkerOnce(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockSpawner(ctrl)

	for id := 1; id <= 4; id++ {
		spawner.EXPECT().Spawn(gomock.Any(), id).Return(1000+id, nil).Times(1)
	}

	var buf bytes.Buffer
	pids, err := New(spawner, 4, logging.NewLogger(&buf, "coordinator")).Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	want := []int{1001, 1002, 1003, 1004}
	if len(pids) != len(want) {
		t.Fatalf("got %d pids, want %d", len(pids), len(want))
	}
	for i := range want {
		if pids[i] != want[i] {
			t.Errorf("pids[%d] = %d, want %d", i, pids[i], want[i])
		}
	}
	if got := strings.Count(buf.String(), "worker spawned"); got != 4 {
		t.Errorf("logged %d spawns, want 4", got)
	}
}

func TestCoordinator_SpawnFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockSpawner(ctrl)
	cause := errors.New("fork/exec: resource temporarily unavailable")

	spawner.EXPECT().Spawn(gomock.Any(), 3).Return(0, cause)
	spawner.EXPECT().Spawn(gomock.Any(), gomock.Not(3)).Return(42, nil).AnyTimes()

	_, err := New(spawner, 4, logging.NewLogger(&bytes.Buffer{}, "coordinator")).Start(context.Background())

	var spawnErr apperrors.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected SpawnError, got %v", err)
	}
	if spawnErr.Worker != 3 {
		t.Errorf("Worker = %d, want 3", spawnErr.Worker)
	}
	if !errors.Is(err, cause) {
		t.Error("SpawnError should wrap the spawner error")
	}
}

func TestCoordinator_ZeroWorkers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockSpawner(ctrl)

	pids, err := New(spawner, 0, logging.NewLogger(&bytes.Buffer{}, "coordinator")).Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(pids) != 0 {
		t.Errorf("got %d pids, want none", len(pids))
	}
}

func TestCoordinator_CanceledStartup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockSpawner(ctrl)
	spawner.EXPECT().Spawn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int) (int, error) { return 0, ctx.Err() }).
		Times(4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(spawner, 4, logging.NewLogger(&bytes.Buffer{}, "coordinator")).Start(ctx)
	if !apperrors.IsContextError(err) {
		t.Fatalf("expected a context error, got %v", err)
	}
	if got := apperrors.ExitCode(err); got != apperrors.ExitErrorCanceled {
		t.Errorf("ExitCode = %d, want %d", got, apperrors.ExitErrorCanceled)
	}
}
