package keyframe

// box is a minimal Entity used across the package tests.
type box struct {
	x, y, w, h, rot float64
	color           [4]float64
}

func newBox(x, y float64) *box {
	return &box{x: x, y: y, w: 1, h: 1, color: [4]float64{1, 1, 1, 1}}
}

func (b *box) XPos() float64 { return b.x }
func (b *box) SetXPos(x float64) { b.x = x }
func (b *box) YPos() float64 { return b.y }
func (b *box) SetYPos(y float64) { b.y = y }
func (b *box) Width() float64 { return b.w }
func (b *box) SetWidth(w float64) { b.w = w }
func (b *box) Height() float64 { return b.h }
func (b *box) SetHeight(h float64) { b.h = h }
func (b *box) RotationInDegree() float64 { return b.rot }
func (b *box) SetRotationInDegree(d float64) { b.rot = d }
func (b *box) Color() [4]float64 { return b.color }
func (b *box) SetColor(c [4]float64) { b.color = c }
