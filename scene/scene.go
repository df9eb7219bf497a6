package scene

import (
	"github.com/matt-g-everett/keyframer/keyframe"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrUnknownSprite = errors.New("unknown sprite")
	ErrNoFrame       = errors.New("no frame at position")
)

// Scene owns a set of sprites and the Registry animating them. It is not
// safe for concurrent use; a Runner serialises access to it.
type Scene struct {
	registry *keyframe.Registry
	sprites  []*Sprite
	byName   map[string]*Sprite
	logger   *zap.Logger
}

// New builds every configured sprite and animation and starts playback.
func New(cfg Config, logger *zap.Logger) (*Scene, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scene{
		registry: keyframe.NewRegistry(
			keyframe.WithLogger(logger),
			keyframe.WithTicksPerUnit(cfg.TicksPerUnit),
		),
		byName: make(map[string]*Sprite, len(cfg.Sprites)),
		logger: logger.Named("scene"),
	}

	for _, sc := range cfg.Sprites {
		if err := s.addSprite(sc); err != nil {
			return nil, err
		}
	}

	s.Play()
	return s, nil
}

func (s *Scene) addSprite(sc SpriteConfig) error {
	if _, ok := s.byName[sc.Name]; ok {
		return errors.Errorf("duplicate sprite %q", sc.Name)
	}
	sprite := NewSprite(sc.Name)
	s.registry.SetRenderable(sprite)

	for i, ac := range sc.Animations {
		tl := s.registry.NewAnimation(sprite)
		for _, k := range ac.Keyframes {
			if err := sprite.pose(k); err != nil {
				return errors.Wrapf(err, "sprite %q animation %d", sc.Name, i)
			}
			before := tl.Len()
			if k.At == nil {
				tl.AddFrame(sprite)
			} else {
				tl.AddFrameAt(sprite, *k.At)
			}
			if tl.Len() == before {
				return errors.Errorf("sprite %q animation %d: duplicate keyframe at %d", sc.Name, i, *k.At)
			}
		}
		s.logger.Debug("animation loaded",
			zap.String("sprite", sc.Name),
			zap.Int("animation", i),
			zap.Int("frames", tl.Len()))
	}
	s.registry.SetActiveAnimation(sprite, sc.Active)

	s.sprites = append(s.sprites, sprite)
	s.byName[sc.Name] = sprite
	return nil
}

func (s *Scene) Registry() *keyframe.Registry { return s.registry }

// Sprite looks a sprite up by name.
func (s *Scene) Sprite(name string) (*Sprite, bool) {
	sprite, ok := s.byName[name]
	return sprite, ok
}

// Update advances every animation by one tick.
func (s *Scene) Update() {
	s.registry.Update()
}

// Play restarts every sprite's active animation and shows its first frame.
func (s *Scene) Play() {
	s.registry.Play()
	for _, sprite := range s.sprites {
		s.registry.Database(sprite).Player().SkipToFrame(0)
	}
}

func (s *Scene) Pause() {
	s.registry.Pause()
}

func (s *Scene) Resume() {
	s.registry.Resume()
}

// Activate selects animation index for the named sprite and plays it from
// the start. Out of range indexes select the last animation.
func (s *Scene) Activate(name string, index int) error {
	sprite, ok := s.byName[name]
	if !ok {
		return errors.Wrap(ErrUnknownSprite, name)
	}
	db := s.registry.Database(sprite)
	db.SetActiveAnimation(index)
	db.PlayAnimation()
	db.Player().SkipToFrame(0)
	s.logger.Info("animation activated",
		zap.String("sprite", name),
		zap.Int("requested", index),
		zap.Int("active", db.ActiveAnimationIndex()))
	return nil
}

// Skip moves the named sprite's cursor to the frame at position pos.
func (s *Scene) Skip(name string, pos int) error {
	sprite, ok := s.byName[name]
	if !ok {
		return errors.Wrap(ErrUnknownSprite, name)
	}
	if !s.registry.Database(sprite).Player().SkipToFrame(pos) {
		return errors.Wrapf(ErrNoFrame, "%s: %d", name, pos)
	}
	return nil
}

// Snapshot returns the current state of every sprite in config order.
func (s *Scene) Snapshot() []SpriteState {
	out := make([]SpriteState, 0, len(s.sprites))
	for _, sprite := range s.sprites {
		st := sprite.state()
		db := s.registry.Database(sprite)
		p := db.Player()
		st.Animation = db.ActiveAnimationIndex()
		st.State = p.State().String()
		st.Tick = p.CurrentTick()
		if t := p.Timeline(); t != nil {
			st.Timeline = t.ID().String()
		}
		out = append(out, st)
	}
	return out
}
