package game

// Simulation owns the per-tick state of one play-through
type Simulation struct {
	cfg        Config
	collisions *CollisionSystem

	Player  *Player
	World   *World
	Spawner *Spawner
	Score   int
	Tick    int
}

// StepResult reports what happened during one tick
type StepResult struct {
	CollisionResult
	WaveAdvanced bool
}

// NewSimulation creates a simulation in its initial state
func NewSimulation(cfg Config, rng Rand) *Simulation {
	return &Simulation{
		cfg:        cfg,
		collisions: NewCollisionSystem(cfg),
		Player:     NewPlayer(cfg),
		World:      NewWorld(),
		Spawner:    NewSpawner(cfg, rng),
	}
}

// Reset restores the initial state: fresh player, empty world, wave 1, score 0
func (s *Simulation) Reset() {
	s.Player = NewPlayer(s.cfg)
	s.World.Clear()
	s.Spawner.Reset()
	s.Score = 0
	s.Tick = 0
}

// Fire shoots at the nearest enemy, if any
func (s *Simulation) Fire() bool {
	return Fire(s.cfg, s.Player, s.World)
}

// Step advances the simulation by one tick. The order of the phases decides
// which collisions can happen in the same tick.
func (s *Simulation) Step() StepResult {
	var res StepResult
	s.Tick++

	s.Player.Move()
	s.moveBullets()
	s.moveEnemies()

	res.CollisionResult = s.collisions.CheckCollisions(s.Player, s.World)
	s.Score += res.Kills * s.cfg.ScorePerKill
	if res.Died {
		return res
	}

	res.WaveAdvanced = s.Spawner.Step(s.World)
	return res
}

// moveBullets advances every bullet and drops the ones that left the arena
func (s *Simulation) moveBullets() {
	removed := newRemovalSet(len(s.World.Bullets))
	for i, bullet := range s.World.Bullets {
		bullet.Move()
		if bullet.IsOutOfBounds(s.cfg.ArenaWidth, s.cfg.ArenaHeight) {
			removed.mark(i)
		}
	}
	s.World.Bullets = compact(s.World.Bullets, removed)
}

// moveEnemies steps every enemy toward the player's current position
func (s *Simulation) moveEnemies() {
	target := s.Player.Pos
	for _, enemy := range s.World.Enemies {
		enemy.MoveTowards(target)
	}
}
