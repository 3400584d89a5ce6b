package game

// Rand is the random source used for spawning. *math/rand.Rand satisfies it;
// tests inject a seeded one.
type Rand interface {
	Intn(n int) int
}

// Spawner is the wave/difficulty state machine deciding when enemies and
// medikits appear
type Spawner struct {
	cfg Config
	rng Rand

	// Wave is the current difficulty epoch, starting at 1
	Wave int

	// EnemyDelay is the number of ticks between timed enemy spawns
	EnemyDelay int

	EnemyCounter   int
	MedikitCounter int
}

// NewSpawner creates a spawner in its initial state
func NewSpawner(cfg Config, rng Rand) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset returns the spawner to wave 1 with the initial delay and zeroed counters
func (s *Spawner) Reset() {
	s.Wave = 1
	s.EnemyDelay = s.cfg.Spawn.EnemyDelay
	s.EnemyCounter = 0
	s.MedikitCounter = 0
}

// Step runs once per tick after collisions. It reports whether the wave advanced.
func (s *Spawner) Step(w *World) bool {
	s.EnemyCounter++
	if s.EnemyCounter >= s.EnemyDelay {
		s.EnemyCounter = 0
		w.Enemies = append(w.Enemies, s.randomEnemy())
	}

	s.MedikitCounter++
	if s.MedikitCounter >= s.cfg.Spawn.MedikitDelay {
		s.MedikitCounter = 0
		w.Medikits = append(w.Medikits, NewMedikit(s.cfg, s.randomPosition()))
	}

	// The wave > 1 guard means wave 1 never advances through this path.
	// Kept as-is; see TestSpawner_WaveOneNeverAdvances.
	if len(w.Enemies) == 0 && s.Wave > 1 {
		s.Wave++
		s.EnemyDelay = max(s.cfg.Spawn.EnemyDelayFloor, s.EnemyDelay-s.cfg.Spawn.EnemyDelayStep)
		burst := s.Wave * s.cfg.Spawn.BurstPerWave
		for i := 0; i < burst; i++ {
			w.Enemies = append(w.Enemies, s.randomEnemy())
		}
		return true
	}
	return false
}

// randomEnemy creates an enemy of a uniformly random variant at a random position
func (s *Spawner) randomEnemy() *Enemy {
	t := EnemyTypes[s.rng.Intn(len(EnemyTypes))]
	return NewEnemy(s.cfg, t, s.randomPosition())
}

// randomPosition returns a point in [0,width)x[0,height)
func (s *Spawner) randomPosition() Vector2i {
	return Vector2i{
		X: s.rng.Intn(s.cfg.ArenaWidth),
		Y: s.rng.Intn(s.cfg.ArenaHeight),
	}
}
