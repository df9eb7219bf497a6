package keyframe

import (
	"go.uber.org/zap"
)

// Database holds the Timelines created for one entity and the Player that
// plays the active one.
type Database struct {
	entity      Entity
	player      *Player
	timelines   []*Timeline
	activeIndex int
}

// NewDatabase creates an empty Database with a Player bound to e.
func NewDatabase(e Entity, logger *zap.Logger) *Database {
	return &Database{
		entity: e,
		player: NewPlayer(e, logger),
	}
}

func (d *Database) Entity() Entity { return d.entity }
func (d *Database) Player() *Player { return d.player }
func (d *Database) Animations() []*Timeline { return d.timelines }
func (d *Database) ActiveAnimationIndex() int { return d.activeIndex }
func (d *Database) HasAnimation() bool { return len(d.timelines) != 0 }

// AddAnimation appends t to the Database.
func (d *Database) AddAnimation(t *Timeline) {
	d.timelines = append(d.timelines, t)
}

// SetActiveAnimation selects the Timeline to play. An index outside the list
// selects the last Timeline.
func (d *Database) SetActiveAnimation(index int) {
	if index < 0 || index >= len(d.timelines) {
		d.activeIndex = len(d.timelines) - 1
		if d.activeIndex < 0 {
			d.activeIndex = 0
		}
		return
	}
	d.activeIndex = index
}

// ActiveAnimation returns the selected Timeline, or nil if there are none.
func (d *Database) ActiveAnimation() *Timeline {
	if d.activeIndex < 0 || d.activeIndex >= len(d.timelines) {
		return nil
	}
	return d.timelines[d.activeIndex]
}

// PlayAnimation starts the active Timeline from its first frame.
func (d *Database) PlayAnimation() {
	t := d.ActiveAnimation()
	if t == nil {
		return
	}
	d.player.Start(t)
}

func (d *Database) PauseAnimation() {
	d.player.Pause()
}

func (d *Database) ResumeAnimation() bool {
	return d.player.Resume()
}
