package scene

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// A Command mutates the Scene on the Runner's goroutine.
type Command func(s *Scene) error

func Play() Command {
	return func(s *Scene) error { s.Play(); return nil }
}

func Pause() Command {
	return func(s *Scene) error { s.Pause(); return nil }
}

func Resume() Command {
	return func(s *Scene) error { s.Resume(); return nil }
}

func Activate(name string, index int) Command {
	return func(s *Scene) error { return s.Activate(name, index) }
}

func Skip(name string, pos int) Command {
	return func(s *Scene) error { return s.Skip(name, pos) }
}

type request struct {
	cmd  Command
	done chan error
}

// Snapshot is the published state of a Scene after a tick or command.
type Snapshot struct {
	Tick    uint64        `json:"tick"`
	Sprites []SpriteState `json:"sprites"`
}

// Runner ticks a Scene at a fixed rate. It is the only goroutine allowed to
// touch the Scene; everything else goes through Do and Snapshot.
type Runner struct {
	scene    *Scene
	period   time.Duration
	logger   *zap.Logger
	requests chan request

	mu       sync.RWMutex
	snapshot Snapshot
	ticks    uint64
}

// NewRunner creates a Runner updating s tickRate times per second.
func NewRunner(s *Scene, tickRate float64, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	r := new(Runner)
	r.scene = s
	r.period = time.Duration(float64(time.Second) / tickRate)
	r.logger = logger.Named("runner")
	r.requests = make(chan request)
	r.publish()
	return r
}

// Run drives the Scene until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.logger.Info("running", zap.Duration("period", r.period))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopped", zap.Uint64("ticks", r.ticks))
			return ctx.Err()
		case <-ticker.C:
			r.scene.Update()
			r.ticks++
			r.publish()
		case req := <-r.requests:
			err := req.cmd(r.scene)
			if err != nil {
				r.logger.Warn("command failed", zap.Error(err))
			}
			r.publish()
			req.done <- err
		}
	}
}

// Do runs cmd on the Runner's goroutine and waits for its result.
func (r *Runner) Do(ctx context.Context, cmd Command) error {
	req := request{cmd: cmd, done: make(chan error, 1)}
	select {
	case r.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the state published after the last tick or command.
func (r *Runner) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Runner) publish() {
	snap := Snapshot{Tick: r.ticks, Sprites: r.scene.Snapshot()}
	r.mu.Lock()
	r.snapshot = snap
	r.mu.Unlock()
}
