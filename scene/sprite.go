package scene

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframer/keyframe"
)

var _ keyframe.Entity = (*Sprite)(nil)

// Sprite is a named rectangle with a transform and a colour.
type Sprite struct {
	name     string
	x, y     float64
	width    float64
	height   float64
	rotation float64
	colour   colorful.Color
	alpha    float64
}

// NewSprite creates a white unit square at the origin.
func NewSprite(name string) *Sprite {
	s := new(Sprite)
	s.name = name
	s.width = 1
	s.height = 1
	s.colour = colorful.Color{R: 1, G: 1, B: 1}
	s.alpha = 1
	return s
}

func (s *Sprite) Name() string { return s.name }

func (s *Sprite) XPos() float64 { return s.x }
func (s *Sprite) SetXPos(x float64) { s.x = x }
func (s *Sprite) YPos() float64 { return s.y }
func (s *Sprite) SetYPos(y float64) { s.y = y }
func (s *Sprite) Width() float64 { return s.width }
func (s *Sprite) SetWidth(w float64) { s.width = w }
func (s *Sprite) Height() float64 { return s.height }
func (s *Sprite) SetHeight(h float64) { s.height = h }
func (s *Sprite) RotationInDegree() float64 { return s.rotation }
func (s *Sprite) SetRotationInDegree(deg float64) { s.rotation = deg }

func (s *Sprite) Color() [4]float64 {
	return [4]float64{s.colour.R, s.colour.G, s.colour.B, s.alpha}
}

func (s *Sprite) SetColor(c [4]float64) {
	s.colour = colorful.Color{R: c[0], G: c[1], B: c[2]}
	s.alpha = c[3]
}

// Colour returns the RGB part of the sprite's colour.
func (s *Sprite) Colour() colorful.Color { return s.colour }

// pose moves the sprite to the attributes of a configured keyframe.
func (s *Sprite) pose(k Keyframe) error {
	c, err := colorful.Hex(k.Color)
	if err != nil {
		return err
	}
	s.x, s.y = k.X, k.Y
	s.width, s.height = k.Width, k.Height
	s.rotation = k.Rotation
	s.colour = c
	s.alpha = 1
	return nil
}

// SpriteState is the JSON view of a sprite and its player.
type SpriteState struct {
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	Colour    string  `json:"colour"`
	Alpha     float64 `json:"alpha"`
	Animation int     `json:"animation"`
	Timeline  string  `json:"timeline,omitempty"`
	State     string  `json:"state"`
	Tick      int     `json:"tick"`
}

func (s *Sprite) state() SpriteState {
	return SpriteState{
		Name:     s.name,
		X:        s.x,
		Y:        s.y,
		Width:    s.width,
		Height:   s.height,
		Rotation: s.rotation,
		Colour:   s.colour.Clamped().Hex(),
		Alpha:    s.alpha,
	}
}
