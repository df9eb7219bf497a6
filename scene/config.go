package scene

import (
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// Keyframe is one snapshot of a sprite. A nil At appends the frame one unit
// after the previous one.
type Keyframe struct {
	At       *int    `yaml:"at"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Rotation float64 `yaml:"rotation"`
	Color    string  `yaml:"color"`
}

type AnimationConfig struct {
	Keyframes []Keyframe `yaml:"keyframes"`
}

type SpriteConfig struct {
	Name       string            `yaml:"name"`
	Active     int               `yaml:"active"`
	Animations []AnimationConfig `yaml:"animations"`
}

type Config struct {
	TickRate     float64        `yaml:"tickRate"`
	TicksPerUnit int            `yaml:"ticksPerUnit"`
	LogLevel     string         `yaml:"logLevel"`
	Listen       string         `yaml:"listen"`
	Sprites      []SpriteConfig `yaml:"sprites"`
}

const (
	defaultTickRate     = 60.0
	defaultTicksPerUnit = 60
	defaultLogLevel     = "info"
	defaultListen       = ":3000"
	defaultColor        = "#ffffff"
)

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig reads YAML from r, fills in defaults and validates the result.
func DecodeConfig(r io.Reader) (Config, error) {
	// Listen is only defaulted when the key is absent; an explicit empty
	// value disables the API.
	c := Config{Listen: defaultListen}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.TickRate == 0 {
		c.TickRate = defaultTickRate
	}
	if c.TicksPerUnit == 0 {
		c.TicksPerUnit = defaultTicksPerUnit
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	for i := range c.Sprites {
		for j := range c.Sprites[i].Animations {
			frames := c.Sprites[i].Animations[j].Keyframes
			for k := range frames {
				if frames[k].Color == "" {
					frames[k].Color = defaultColor
				}
			}
		}
	}
}

// Validate checks rates, the log level, sprite names and keyframe colours.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return errors.Errorf("tickRate must be positive, got %v", c.TickRate)
	}
	if c.TicksPerUnit <= 0 {
		return errors.Errorf("ticksPerUnit must be positive, got %d", c.TicksPerUnit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	names := make(map[string]bool, len(c.Sprites))
	for _, s := range c.Sprites {
		if s.Name == "" {
			return errors.New("sprite without a name")
		}
		if names[s.Name] {
			return errors.Errorf("duplicate sprite %q", s.Name)
		}
		names[s.Name] = true

		for i, a := range s.Animations {
			for _, k := range a.Keyframes {
				if _, err := colorful.Hex(k.Color); err != nil {
					return errors.Wrapf(err, "sprite %q animation %d: colour %q", s.Name, i, k.Color)
				}
			}
		}
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, errors.Wrap(err, "logLevel")
	}
	return level, nil
}
