package game

import (
	"io"
	"log/slog"
	"math/rand"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// fixedRand always returns the same value, wrapped into range
type fixedRand int

func (f fixedRand) Intn(n int) int {
	return int(f) % n
}

// discardLogger drops all session logging
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSimulation returns a simulation with default config and a seeded RNG
func newTestSimulation() *Simulation {
	return NewSimulation(DefaultConfig(), testRNG())
}

// enemyAt creates a chaser at (x, y)
func enemyAt(x, y int) *Enemy {
	return NewEnemy(DefaultConfig(), EnemyTypeChaser, Vector2i{X: x, Y: y})
}
