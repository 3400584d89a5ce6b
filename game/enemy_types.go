package game

import "fmt"

// EnemyType defines different types of enemies
type EnemyType int

const (
	EnemyTypeChaser     EnemyType = iota // Slow, steady pursuer
	EnemyTypeFastChaser                  // Same behavior, higher speed
)

// enemyTypeNames is the canonical text form used in config files and logs
var enemyTypeNames = map[EnemyType]string{
	EnemyTypeChaser:     "chaser",
	EnemyTypeFastChaser: "fast_chaser",
}

// EnemyTypes lists every variant in spawn-roll order
var EnemyTypes = []EnemyType{EnemyTypeChaser, EnemyTypeFastChaser}

// String returns the variant name
func (t EnemyType) String() string {
	if name, ok := enemyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("enemy(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler
func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *EnemyType) UnmarshalText(text []byte) error {
	for k, name := range enemyTypeNames {
		if name == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown enemy type %q", text)
}

// EnemyTypeConfig holds configuration for each enemy type
type EnemyTypeConfig struct {
	Speed  int    `yaml:"speed"`
	Size   int    `yaml:"size"`
	Sprite string `yaml:"sprite"` // asset key resolved by the renderer
}

// EnemyTypeConfig returns configuration for an enemy type, falling back to the chaser
func (c Config) EnemyTypeConfig(t EnemyType) EnemyTypeConfig {
	if ec, ok := c.Enemies[t]; ok {
		return ec
	}
	return c.Enemies[EnemyTypeChaser]
}
