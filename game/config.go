package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// ArenaWidth is the logical width of the arena
	ArenaWidth int `yaml:"arena_width"`

	// ArenaHeight is the logical height of the arena
	ArenaHeight int `yaml:"arena_height"`

	// TicksPerSecond is the fixed simulation rate (100 => one tick every 10ms)
	TicksPerSecond int `yaml:"ticks_per_second"`

	Player  PlayerConfig  `yaml:"player"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Medikit MedikitConfig `yaml:"medikit"`
	Spawn   SpawnConfig   `yaml:"spawn"`

	// Enemies maps each variant to its stats
	Enemies map[EnemyType]EnemyTypeConfig `yaml:"enemies"`

	// ScorePerKill is awarded for every enemy destroyed by a bullet
	ScorePerKill int `yaml:"score_per_kill"`
}

// PlayerConfig holds player tuning
type PlayerConfig struct {
	StartX        int `yaml:"start_x"`
	StartY        int `yaml:"start_y"`
	Size          int `yaml:"size"`
	Speed         int `yaml:"speed"`
	MaxHealth     int `yaml:"max_health"`
	ContactDamage int `yaml:"contact_damage"` // damage taken per colliding enemy
}

// BulletConfig holds projectile tuning
type BulletConfig struct {
	Size  int     `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// MedikitConfig holds pickup tuning
type MedikitConfig struct {
	Size int `yaml:"size"`
	Heal int `yaml:"heal"`
}

// SpawnConfig holds the wave/difficulty tuning
type SpawnConfig struct {
	EnemyDelay      int `yaml:"enemy_delay"`       // initial ticks between enemy spawns
	EnemyDelayStep  int `yaml:"enemy_delay_step"`  // reduction per wave advance
	EnemyDelayFloor int `yaml:"enemy_delay_floor"` // minimum delay
	MedikitDelay    int `yaml:"medikit_delay"`     // ticks between medikit spawns
	BurstPerWave    int `yaml:"burst_per_wave"`    // enemies spawned on advance = wave * BurstPerWave
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ArenaWidth:     800,
		ArenaHeight:    600,
		TicksPerSecond: 100,
		Player: PlayerConfig{
			StartX:        400,
			StartY:        300,
			Size:          50,
			Speed:         5,
			MaxHealth:     100,
			ContactDamage: 10,
		},
		Bullet: BulletConfig{
			Size:  5,
			Speed: 10,
		},
		Medikit: MedikitConfig{
			Size: 30,
			Heal: 20,
		},
		Spawn: SpawnConfig{
			EnemyDelay:      100,
			EnemyDelayStep:  10,
			EnemyDelayFloor: 10,
			MedikitDelay:    1000,
			BurstPerWave:    2,
		},
		Enemies: map[EnemyType]EnemyTypeConfig{
			EnemyTypeChaser:     {Speed: 2, Size: 50, Sprite: "enemy_chaser"},
			EnemyTypeFastChaser: {Speed: 3, Size: 50, Sprite: "enemy_fast"},
		},
		ScorePerKill: 10,
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the simulation relies on
func (c Config) Validate() error {
	var errs []error
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		errs = append(errs, errors.New("arena dimensions must be positive"))
	}
	if c.TicksPerSecond <= 0 {
		errs = append(errs, errors.New("ticks_per_second must be positive"))
	}
	if c.Player.Size <= 0 || c.Bullet.Size <= 0 || c.Medikit.Size <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if c.Player.Size > c.ArenaWidth || c.Player.Size > c.ArenaHeight {
		errs = append(errs, errors.New("player does not fit in the arena"))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player max_health must be positive"))
	}
	if c.Spawn.EnemyDelay <= 0 || c.Spawn.MedikitDelay <= 0 {
		errs = append(errs, errors.New("spawn delays must be positive"))
	}
	if c.Spawn.EnemyDelayFloor <= 0 || c.Spawn.EnemyDelayFloor > c.Spawn.EnemyDelay {
		errs = append(errs, fmt.Errorf("enemy_delay_floor %d must be in [1, %d]", c.Spawn.EnemyDelayFloor, c.Spawn.EnemyDelay))
	}
	for _, t := range EnemyTypes {
		ec, ok := c.Enemies[t]
		if !ok {
			errs = append(errs, fmt.Errorf("enemy %s: missing", t))
			continue
		}
		if ec.Size <= 0 || ec.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: size and speed must be positive", t))
		}
	}
	return errors.Join(errs...)
}

// PlayerMaxX returns the largest x the player's top-left corner may reach
func (c Config) PlayerMaxX() int {
	return c.ArenaWidth - c.Player.Size
}

// PlayerMaxY returns the largest y the player's top-left corner may reach
func (c Config) PlayerMaxY() int {
	return c.ArenaHeight - c.Player.Size
}
