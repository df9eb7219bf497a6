package keyframe

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticks(t *Timeline) []int {
	var out []int
	for _, f := range t.Frames() {
		out = append(out, f.TickIndex())
	}
	return out
}

func TestTimelineFirstFrame(t *testing.T) {
	tl := NewTimeline()
	assert.True(t, tl.IsEmpty())
	assert.Nil(t, tl.FirstFrame())

	assert.False(t, tl.AddFrame(newBox(0, 0)))
	assert.False(t, tl.IsEmpty())
	require.NotNil(t, tl.FirstFrame())
	assert.Equal(t, 0, tl.FirstFrame().TickIndex())
	assert.Same(t, tl.FirstFrame(), tl.LastFrame())
}

func TestTimelineAddFrameAtOnEmptyForcesTickZero(t *testing.T) {
	tl := NewTimeline()
	assert.False(t, tl.AddFrameAt(newBox(3, 4), 2))
	assert.Equal(t, []int{0}, ticks(tl))
}

func TestTimelineAppend(t *testing.T) {
	tl := NewTimeline()
	b := newBox(0, 0)
	for i := 0; i < 3; i++ {
		b.SetXPos(float64(i))
		assert.False(t, tl.AddFrame(b))
	}
	assert.Equal(t, []int{0, 60, 120}, ticks(tl))
	assert.Equal(t, 3, tl.Len())
	assert.Equal(t, 2.0, tl.LastFrame().XPos())
}

func TestTimelineInsertKeepsOrder(t *testing.T) {
	tl := NewTimeline()
	b := newBox(0, 0)
	tl.AddFrame(b)
	assert.True(t, tl.AddFrameAt(b, 3))
	assert.True(t, tl.AddFrameAt(b, 1))
	assert.True(t, tl.AddFrameAt(b, 2))
	assert.True(t, tl.AddFrameAt(b, 5))
	assert.True(t, tl.AddFrameAt(b, -1))

	got := ticks(tl)
	assert.Equal(t, []int{-60, 0, 60, 120, 180, 300}, got)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
	assert.Equal(t, 300, tl.LastFrame().TickIndex())
	assert.Equal(t, -60, tl.FirstFrame().TickIndex())
}

func TestTimelineRejectsDuplicateTick(t *testing.T) {
	tl := NewTimeline()
	b := newBox(0, 0)
	tl.AddFrame(b)

	assert.True(t, tl.AddFrameAt(b, 1))
	b.SetXPos(42)
	assert.False(t, tl.AddFrameAt(b, 1))
	assert.Equal(t, 2, tl.Len())
	assert.Equal(t, 0.0, tl.LastFrame().XPos())

	assert.False(t, tl.AddFrameAt(b, 0))
	assert.Equal(t, 2, tl.Len())
}

func TestTimelineCustomTicksPerUnit(t *testing.T) {
	tl := NewTimeline(WithTicksPerUnit(10))
	b := newBox(0, 0)
	tl.AddFrame(b)
	tl.AddFrame(b)
	tl.AddFrameAt(b, 5)
	assert.Equal(t, []int{0, 10, 50}, ticks(tl))
}

func TestTimelineFrameIsACopy(t *testing.T) {
	tl := NewTimeline()
	b := newBox(1, 2)
	b.color = [4]float64{0.2, 0.4, 0.6, 0.5}
	tl.AddFrame(b)

	b.SetXPos(100)
	b.SetColor([4]float64{0, 0, 0, 0})

	f := tl.FirstFrame()
	assert.Equal(t, 1.0, f.XPos())
	assert.Equal(t, 2.0, f.YPos())
	assert.Equal(t, 0.2, f.Color().R)
	assert.Equal(t, 0.5, f.Alpha())
}

func TestTimelineNilEntity(t *testing.T) {
	tl := NewTimeline()
	assert.False(t, tl.AddFrame(nil))
	assert.False(t, tl.AddFrameAt(nil, 1))
	assert.True(t, tl.IsEmpty())
}

func TestTimelineDelete(t *testing.T) {
	tl := NewTimeline()
	assert.ErrorIs(t, tl.DeleteFrame(), ErrEmptyTimeline)
	assert.ErrorIs(t, tl.DeleteFrameAt(0), ErrEmptyTimeline)

	b := newBox(0, 0)
	for i := 0; i < 4; i++ {
		tl.AddFrame(b)
	}

	require.NoError(t, tl.DeleteFrame())
	assert.Equal(t, []int{0, 60, 120}, ticks(tl))
	assert.Equal(t, 120, tl.LastFrame().TickIndex())

	// The first frame at or after the tick goes.
	require.NoError(t, tl.DeleteFrameAt(30))
	assert.Equal(t, []int{0, 120}, ticks(tl))

	err := tl.DeleteFrameAt(500)
	assert.True(t, errors.Is(err, ErrFrameNotFound))
	assert.Equal(t, 2, tl.Len())

	require.NoError(t, tl.DeleteFrameAt(0))
	assert.Equal(t, []int{120}, ticks(tl))
	require.NoError(t, tl.DeleteFrame())
	assert.True(t, tl.IsEmpty())
	assert.Nil(t, tl.LastFrame())
	assert.Equal(t, 0, tl.Len())

	// Empty again, so the next frame lands on tick 0.
	tl.AddFrameAt(b, 4)
	assert.Equal(t, []int{0}, ticks(tl))
}

func TestTimelineFrameAt(t *testing.T) {
	tl := NewTimeline()
	b := newBox(0, 0)
	tl.AddFrame(b)
	tl.AddFrame(b)

	assert.Equal(t, 60, tl.FrameAt(1).TickIndex())
	assert.Nil(t, tl.FrameAt(2))
	assert.Nil(t, tl.FrameAt(-1))
}

func TestTimelineIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewTimeline().ID(), NewTimeline().ID())
}

func TestTimelineRejectsNilPointerEntity(t *testing.T) {
	tl := NewTimeline()
	var b *box

	assert.NotPanics(t, func() {
		assert.False(t, tl.AddFrame(b))
		assert.False(t, tl.AddFrameAt(b, 1))
	})
	assert.True(t, tl.IsEmpty())
}
