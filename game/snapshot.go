package game

// Sprite keys for entities without a variant
const (
	SpritePlayer  = "player"
	SpriteMedikit = "medikit"
)

// EntityView is a read-only copy of an entity for drawing
type EntityView struct {
	Box    BoundingBox
	Sprite string
}

// Snapshot is the state handed to the render collaborator after a tick
type Snapshot struct {
	Player   EntityView
	Enemies  []EntityView
	Bullets  []BoundingBox
	Medikits []EntityView

	Score    int
	Wave     int
	Health   int
	Best     int
	GameOver bool
}

// Snapshot copies the current state. The result shares nothing with the
// session, so it can be kept after later ticks.
func (s *Session) Snapshot() Snapshot {
	w := s.sim.World
	snap := Snapshot{
		Player:   EntityView{Box: s.sim.Player.Bounds(), Sprite: SpritePlayer},
		Enemies:  make([]EntityView, len(w.Enemies)),
		Bullets:  make([]BoundingBox, len(w.Bullets)),
		Medikits: make([]EntityView, len(w.Medikits)),
		Score:    s.sim.Score,
		Wave:     s.sim.Spawner.Wave,
		Health:   s.sim.Player.Health,
		Best:     s.best,
		GameOver: s.state == StateGameOver,
	}
	for i, e := range w.Enemies {
		snap.Enemies[i] = EntityView{Box: e.Bounds(), Sprite: e.Sprite}
	}
	for i, b := range w.Bullets {
		snap.Bullets[i] = b.Bounds()
	}
	for i, m := range w.Medikits {
		snap.Medikits[i] = EntityView{Box: m.Bounds(), Sprite: SpriteMedikit}
	}
	return snap
}
