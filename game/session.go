package game

import (
	"log/slog"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -destination=mock_score_store_test.go -package=game . ScoreStore

// ScoreStore persists the best score between runs
type ScoreStore interface {
	// Load returns the stored best score, 0 if none was recorded
	Load() (int, error)

	// Save replaces the stored best score
	Save(score int) error
}

// State is the session controller state
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// TickResult reports what a session tick did, for sound and logging
type TickResult struct {
	StepResult
	Fired     int
	Restarted bool
	GameOver  bool // the session ended during this tick
}

// Session ties the simulation to input, the score store and the game-over /
// restart state machine
type Session struct {
	cfg   Config
	sim   *Simulation
	store ScoreStore
	log   *slog.Logger

	state State
	best  int
	run   uuid.UUID
}

// NewSession creates a playing session and loads the best score. A failed
// load counts as no prior record.
func NewSession(cfg Config, rng Rand, store ScoreStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		cfg:   cfg,
		sim:   NewSimulation(cfg, rng),
		store: store,
		log:   logger,
		state: StatePlaying,
		run:   uuid.New(),
	}

	if store != nil {
		best, err := store.Load()
		if err != nil {
			s.log.Warn("failed to load best score", "err", err)
			best = 0
		}
		s.best = best
	}

	s.log.Info("session started", "run", s.run, "best", s.best)
	return s
}

// State returns the current controller state
func (s *Session) State() State {
	return s.state
}

// Best returns the best score known to this session
func (s *Session) Best() int {
	return s.best
}

// RunID identifies the current play-through; it changes on every restart
func (s *Session) RunID() uuid.UUID {
	return s.run
}

// Simulation exposes the underlying simulation state
func (s *Session) Simulation() *Simulation {
	return s.sim
}

// Tick applies the pending events and, while playing, advances the
// simulation by one step. During game over only restart is honored.
func (s *Session) Tick(events []Event) TickResult {
	var res TickResult

	if s.state == StateGameOver {
		for _, e := range events {
			if e.Kind == EventRestart {
				s.Restart()
				res.Restarted = true
				break
			}
		}
		return res
	}

	for _, e := range events {
		switch e.Kind {
		case EventPress:
			s.sim.Player.ApplyInput(e.Dir, true)
		case EventRelease:
			s.sim.Player.ApplyInput(e.Dir, false)
		case EventFire:
			if s.sim.Fire() {
				res.Fired++
			}
		}
	}

	res.StepResult = s.sim.Step()
	if res.WaveAdvanced {
		s.log.Debug("wave advanced", "run", s.run, "wave", s.sim.Spawner.Wave, "delay", s.sim.Spawner.EnemyDelay)
	}
	if res.Died {
		s.gameOver()
		res.GameOver = true
	}
	return res
}

// Restart leaves game over and starts a new play-through. It does nothing
// while playing.
func (s *Session) Restart() {
	if s.state != StateGameOver {
		return
	}
	s.sim.Reset()
	s.state = StatePlaying
	s.run = uuid.New()
	s.log.Info("session restarted", "run", s.run, "best", s.best)
}

// gameOver halts the session and records a new best score
func (s *Session) gameOver() {
	s.state = StateGameOver
	score := s.sim.Score
	s.log.Info("game over", "run", s.run, "score", score, "wave", s.sim.Spawner.Wave, "ticks", s.sim.Tick)

	if score <= s.best {
		return
	}
	if s.store != nil {
		if err := s.store.Save(score); err != nil {
			s.log.Warn("failed to save best score", "run", s.run, "score", score, "err", err)
			return
		}
		s.log.Info("best score saved", "run", s.run, "score", score)
	}
	s.best = score
}
