package keyframe

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Frame is a snapshot of an Entity's attributes anchored at a tick.
type Frame struct {
	tickIndex int

	x, y          float64
	width, height float64
	rotation      float64
	color         colorful.Color
	alpha         float64

	next *Frame
}

// newFrame copies the entity's current attributes into a new Frame.
func newFrame(e Entity, tickIndex int) *Frame {
	c := e.Color()
	return &Frame{
		tickIndex: tickIndex,
		x:         e.XPos(),
		y:         e.YPos(),
		width:     e.Width(),
		height:    e.Height(),
		rotation:  e.RotationInDegree(),
		color:     colorful.Color{R: c[0], G: c[1], B: c[2]},
		alpha:     c[3],
	}
}

func (f *Frame) TickIndex() int { return f.tickIndex }
func (f *Frame) XPos() float64 { return f.x }
func (f *Frame) YPos() float64 { return f.y }
func (f *Frame) Width() float64 { return f.width }
func (f *Frame) Height() float64 { return f.height }
func (f *Frame) RotationInDegree() float64 { return f.rotation }
func (f *Frame) Color() colorful.Color { return f.color }
func (f *Frame) Alpha() float64 { return f.alpha }

// Next returns the following Frame on the Timeline, or nil for the last one.
func (f *Frame) Next() *Frame { return f.next }

// apply writes the snapshot back onto e. Alpha is always written as 1.
func (f *Frame) apply(e Entity) {
	e.SetXPos(f.x)
	e.SetYPos(f.y)
	e.SetWidth(f.width)
	e.SetHeight(f.height)
	e.SetRotationInDegree(f.rotation)
	e.SetColor([4]float64{f.color.R, f.color.G, f.color.B, 1.0})
}
