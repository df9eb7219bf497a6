package keyframe

import (
	"fmt"

	"go.uber.org/zap"
)

// Registry maps entities to their Databases and drives every Player.
// Entities are keyed by identity, so implementations should be pointers.
type Registry struct {
	opts      options
	logger    *zap.Logger
	databases map[Entity]*Database
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	o := newOptions(opts)
	return &Registry{
		opts:      o,
		logger:    o.logger.Named("keyframe"),
		databases: make(map[Entity]*Database),
	}
}

// SetRenderable registers e with a fresh Database, replacing any previous one.
// The replaced Database's Player is stopped and lets go of its Timeline.
func (r *Registry) SetRenderable(e Entity) bool {
	if !usable(e) {
		r.logger.Debug("unusable entity rejected", zap.String("op", "SetRenderable"))
		return false
	}
	r.register(e)
	return true
}

// NewAnimation appends a new empty Timeline to e's Database, registering e
// first if needed.
func (r *Registry) NewAnimation(e Entity) *Timeline {
	if !usable(e) {
		r.logger.Debug("unusable entity rejected", zap.String("op", "NewAnimation"))
		return nil
	}
	db, ok := r.databases[e]
	if !ok {
		db = r.register(e)
	}

	o := r.opts
	o.logger = r.logger
	t := newTimeline(o)
	db.AddAnimation(t)
	r.logger.Debug("animation created",
		zap.Stringer("timeline", t.ID()),
		zap.Int("animations", len(db.Animations())))
	return t
}

// Database returns the Database for e, or nil if e is not registered.
func (r *Registry) Database(e Entity) *Database {
	if !usable(e) {
		return nil
	}
	return r.databases[e]
}

func (r *Registry) Animations(e Entity) []*Timeline {
	db := r.Database(e)
	if db == nil {
		return nil
	}
	return db.Animations()
}

func (r *Registry) ActiveAnimation(e Entity) *Timeline {
	db := r.Database(e)
	if db == nil {
		return nil
	}
	return db.ActiveAnimation()
}

func (r *Registry) ActiveAnimationIndex(e Entity) (int, bool) {
	db := r.Database(e)
	if db == nil {
		return 0, false
	}
	return db.ActiveAnimationIndex(), true
}

func (r *Registry) SetActiveAnimation(e Entity, index int) bool {
	db := r.Database(e)
	if db == nil {
		return false
	}
	db.SetActiveAnimation(index)
	return true
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.databases)
}

// Update advances every Player by one tick.
func (r *Registry) Update() {
	for _, db := range r.databases {
		db.Player().Update()
	}
}

// Play starts the active animation of every entity from its first frame.
func (r *Registry) Play() {
	for _, db := range r.databases {
		db.PlayAnimation()
	}
}

func (r *Registry) Pause() {
	for _, db := range r.databases {
		db.PauseAnimation()
	}
}

func (r *Registry) Resume() {
	for _, db := range r.databases {
		db.ResumeAnimation()
	}
}

func (r *Registry) register(e Entity) *Database {
	if old, ok := r.databases[e]; ok {
		old.Player().release()
	}
	db := NewDatabase(e, r.logger.With(zap.String("entity", fmt.Sprintf("%p", e))))
	r.databases[e] = db
	r.logger.Info("entity registered", zap.Int("entities", len(r.databases)))
	return db
}
