package keyframe

import (
	"go.uber.org/zap"
)

// TicksPerUnit converts a caller supplied frame index into a tick index.
// One unit is one second on a 60 tick clock.
const TicksPerUnit = 60

type options struct {
	logger       *zap.Logger
	ticksPerUnit int
}

// Option configures a Registry or a standalone Timeline.
type Option func(*options)

// WithLogger sets the logger used for rejected operations and registrations.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTicksPerUnit overrides TicksPerUnit. Non-positive values are ignored.
func WithTicksPerUnit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.ticksPerUnit = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:       zap.NewNop(),
		ticksPerUnit: TicksPerUnit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
