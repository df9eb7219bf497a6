package scene

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRunner(t *testing.T) (*Runner, context.CancelFunc, chan error) {
	t.Helper()
	r := NewRunner(newTestScene(t), 1000, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	return r, cancel, done
}

func TestRunnerTicks(t *testing.T) {
	r, cancel, done := startRunner(t)
	defer cancel()

	require.Eventually(t, func() bool {
		return r.Snapshot().Tick >= 5
	}, 2*time.Second, 5*time.Millisecond)

	snap := r.Snapshot()
	assert.Equal(t, "box", snap.Sprites[0].Name)
	assert.Greater(t, snap.Sprites[0].Tick, 0)

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunnerCommands(t *testing.T) {
	r, cancel, _ := startRunner(t)
	defer cancel()
	ctx := context.Background()

	require.NoError(t, r.Do(ctx, Pause()))
	assert.Equal(t, "paused", r.Snapshot().Sprites[0].State)

	tick := r.Snapshot().Sprites[0].Tick
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, tick, r.Snapshot().Sprites[0].Tick)

	require.NoError(t, r.Do(ctx, Skip("box", 1)))
	assert.Equal(t, 20.0, r.Snapshot().Sprites[0].Y)

	require.NoError(t, r.Do(ctx, Activate("box", 0)))
	assert.Equal(t, 0, r.Snapshot().Sprites[0].Animation)

	require.NoError(t, r.Do(ctx, Resume()))
	require.NoError(t, r.Do(ctx, Play()))

	err := r.Do(ctx, Skip("ghost", 0))
	assert.ErrorIs(t, err, ErrUnknownSprite)
}

func TestRunnerDoHonoursContext(t *testing.T) {
	r := NewRunner(newTestScene(t), 60, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// Nothing is running, so the request is never picked up.
	err := r.Do(ctx, Pause())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
