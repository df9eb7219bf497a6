package keyframe

import (
	"github.com/matt-g-everett/keyframer/util"
	"go.uber.org/zap"
)

// State is the playback state of a Player.
type State int

const (
	Idle State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Player moves a cursor over one Timeline and writes interpolated attributes
// onto the Entity it is bound to.
type Player struct {
	entity   Entity
	timeline *Timeline
	logger   *zap.Logger

	state       State
	currentTick int
	current     *Frame
	next        *Frame
}

// NewPlayer creates an idle Player bound to e.
func NewPlayer(e Entity, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !usable(e) {
		e = nil
	}
	return &Player{
		entity: e,
		logger: logger,
		state:  Idle,
	}
}

func (p *Player) Entity() Entity { return p.entity }
func (p *Player) Timeline() *Timeline { return p.timeline }
func (p *Player) State() State { return p.state }
func (p *Player) CurrentTick() int { return p.currentTick }
func (p *Player) CurrentFrame() *Frame { return p.current }
func (p *Player) NextFrame() *Frame { return p.next }

// Start binds t and rewinds the cursor to its first frame. An empty Timeline
// leaves the Player idle.
func (p *Player) Start(t *Timeline) {
	p.bind(t)
	p.currentTick = 0
	p.current = nil
	p.next = nil
	if t == nil || t.IsEmpty() || p.entity == nil {
		p.state = Idle
		return
	}

	p.current = t.FirstFrame()
	p.next = p.current.Next()
	p.state = Playing
	p.logger.Debug("playback started", zap.Stringer("timeline", t.ID()), zap.Int("frames", t.Len()))
}

// Pause stops attribute writes and keeps the cursor where it is.
func (p *Player) Pause() {
	p.state = Paused
}

// Resume continues a paused Player from its cursor.
func (p *Player) Resume() bool {
	if p.state != Paused || p.current == nil {
		return false
	}
	p.state = Playing
	return true
}

// Update advances the cursor by one tick.
func (p *Player) Update() {
	if p.state != Playing || p.timeline == nil || p.timeline.IsEmpty() {
		return
	}
	if p.current.Next() == nil {
		p.state = Paused
		p.logger.Debug("timeline exhausted", zap.Stringer("timeline", p.timeline.ID()), zap.Int("tick", p.currentTick))
		return
	}
	if p.next == nil {
		// Frames appended after the cursor reached the old tail.
		p.next = p.current.Next()
	}

	p.currentTick++
	span := float64(p.next.tickIndex - p.current.tickIndex)
	dt := util.Clamp01(float64(p.currentTick-p.current.tickIndex) / span)
	p.interpolate(dt)

	if p.currentTick >= p.next.tickIndex {
		p.current = p.next
		p.next = p.current.Next()
	}
}

// SkipToFrame moves the cursor to the frame at position pos and shows it.
func (p *Player) SkipToFrame(pos int) bool {
	if p.timeline == nil || p.entity == nil {
		return false
	}
	f := p.timeline.FrameAt(pos)
	if f == nil {
		return false
	}

	p.current = f
	p.next = f.Next()
	p.currentTick = f.tickIndex
	f.apply(p.entity)
	if p.state == Idle {
		p.state = Paused
	}
	return true
}

func (p *Player) interpolate(dt float64) {
	cur, nxt, e := p.current, p.next, p.entity

	if cur.x != nxt.x || cur.y != nxt.y {
		e.SetXPos(util.Lerp(cur.x, nxt.x, dt))
		e.SetYPos(util.Lerp(cur.y, nxt.y, dt))
	}
	if cur.width != nxt.width || cur.height != nxt.height {
		e.SetWidth(util.Lerp(cur.width, nxt.width, dt))
		e.SetHeight(util.Lerp(cur.height, nxt.height, dt))
	}
	if cur.rotation != nxt.rotation {
		e.SetRotationInDegree(util.Lerp(cur.rotation, nxt.rotation, dt))
	}

	c := util.LerpColor(cur.color, nxt.color, dt)
	e.SetColor([4]float64{c.R, c.G, c.B, 1.0})
}

// release stops playback and unbinds the Timeline so its frames can be
// deleted again.
func (p *Player) release() {
	p.bind(nil)
	p.state = Idle
	p.currentTick = 0
	p.current = nil
	p.next = nil
}

func (p *Player) bind(t *Timeline) {
	if p.timeline != nil && p.timeline != t && p.timeline.holder == p {
		p.timeline.holder = nil
	}
	p.timeline = t
	if t != nil {
		t.holder = p
	}
}

func (p *Player) holds(f *Frame) bool {
	return p.state != Idle && (f == p.current || f == p.next)
}
