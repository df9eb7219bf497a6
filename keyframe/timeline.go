package keyframe

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// cursorHolder is implemented by the Player bound to a Timeline so that
// frames it is interpolating between cannot be unlinked underneath it.
type cursorHolder interface {
	holds(f *Frame) bool
}

// Timeline is an ordered chain of Frames for one entity, strictly
// increasing by tick index.
type Timeline struct {
	id           uuid.UUID
	ticksPerUnit int
	logger       *zap.Logger

	first *Frame
	last  *Frame
	count int

	holder cursorHolder
}

// NewTimeline creates an empty Timeline.
func NewTimeline(opts ...Option) *Timeline {
	return newTimeline(newOptions(opts))
}

func newTimeline(o options) *Timeline {
	id := uuid.New()
	return &Timeline{
		id:           id,
		ticksPerUnit: o.ticksPerUnit,
		logger:       o.logger.With(zap.Stringer("timeline", id)),
	}
}

func (t *Timeline) ID() uuid.UUID { return t.id }
func (t *Timeline) IsEmpty() bool { return t.first == nil }
func (t *Timeline) FirstFrame() *Frame { return t.first }
func (t *Timeline) LastFrame() *Frame { return t.last }
func (t *Timeline) Len() int { return t.count }
func (t *Timeline) TicksPerUnit() int { return t.ticksPerUnit }

// FrameAt returns the Frame at position pos, counting from the first, or nil.
func (t *Timeline) FrameAt(pos int) *Frame {
	if pos < 0 || pos >= t.count {
		return nil
	}
	f := t.first
	for ; pos > 0; pos-- {
		f = f.next
	}
	return f
}

// Frames returns the chain in order.
func (t *Timeline) Frames() []*Frame {
	frames := make([]*Frame, 0, t.count)
	for f := t.first; f != nil; f = f.next {
		frames = append(frames, f)
	}
	return frames
}

// AddFrame appends a snapshot of e one unit after the last frame. The first
// frame of a Timeline always lands on tick 0. It returns false, meaning no
// splice took place.
func (t *Timeline) AddFrame(e Entity) bool {
	if !usable(e) {
		return false
	}
	if t.first == nil {
		t.pushFirst(e)
		return false
	}

	f := newFrame(e, t.last.tickIndex+t.ticksPerUnit)
	t.last.next = f
	t.last = f
	t.count++
	return false
}

// AddFrameAt inserts a snapshot of e at tick index*TicksPerUnit. It returns
// true when the frame was spliced in and false when the Timeline was empty
// (the frame is forced to tick 0) or the tick is already taken.
func (t *Timeline) AddFrameAt(e Entity, index int) bool {
	if !usable(e) {
		return false
	}
	if t.first == nil {
		t.pushFirst(e)
		return false
	}

	tick := index * t.ticksPerUnit
	prev := t.findPrev(tick)
	after := t.first
	if prev != nil {
		after = prev.next
	}
	if after != nil && after.tickIndex == tick {
		t.logger.Debug("duplicate tick rejected", zap.Int("tick", tick))
		return false
	}

	f := newFrame(e, tick)
	f.next = after
	if prev == nil {
		t.first = f
	} else {
		prev.next = f
	}
	if after == nil {
		t.last = f
	}
	t.count++
	return true
}

// DeleteFrame removes the last frame.
func (t *Timeline) DeleteFrame() error {
	if t.first == nil {
		return ErrEmptyTimeline
	}
	return t.DeleteFrameAt(t.last.tickIndex)
}

// DeleteFrameAt removes the first frame whose tick index is at or after tick.
func (t *Timeline) DeleteFrameAt(tick int) error {
	if t.first == nil {
		return ErrEmptyTimeline
	}

	prev := t.findPrev(tick)
	target := t.first
	if prev != nil {
		target = prev.next
	}
	if target == nil {
		return errors.Wrapf(ErrFrameNotFound, "tick %d", tick)
	}
	if t.holder != nil && t.holder.holds(target) {
		t.logger.Debug("cursor frame delete rejected", zap.Int("tick", target.tickIndex))
		return errors.Wrapf(ErrCursorFrame, "tick %d", target.tickIndex)
	}

	if prev == nil {
		t.first = target.next
	} else {
		prev.next = target.next
	}
	if t.last == target {
		t.last = prev
	}
	target.next = nil
	t.count--
	return nil
}

func (t *Timeline) pushFirst(e Entity) {
	f := newFrame(e, 0)
	t.first = f
	t.last = f
	t.count = 1
}

// findPrev returns the last frame with a tick index below tick, or nil.
func (t *Timeline) findPrev(tick int) *Frame {
	var prev *Frame
	for f := t.first; f != nil && f.tickIndex < tick; f = f.next {
		prev = f
	}
	return prev
}
