package game

// CollisionSystem resolves the three collision passes of a tick
type CollisionSystem struct {
	cfg Config
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg Config) *CollisionSystem {
	return &CollisionSystem{cfg: cfg}
}

// CollisionResult summarizes what a collision pass changed
type CollisionResult struct {
	PlayerHits int  // enemies that touched the player
	Kills      int  // enemies destroyed by bullets
	Pickups    int  // medikits collected
	Died       bool // player health reached zero
}

// CheckCollisions runs player×enemy, bullet×enemy and player×medikit in that
// order. Each pass removes its matches before the next pass starts. If the
// player dies during the first pass the remaining passes are skipped.
func (c *CollisionSystem) CheckCollisions(p *Player, w *World) CollisionResult {
	var res CollisionResult

	res.PlayerHits, res.Died = c.playerEnemies(p, w)
	if res.Died {
		return res
	}
	res.Kills = c.bulletEnemies(w)
	res.Pickups = c.playerMedikits(p, w)
	return res
}

// playerEnemies damages the player once per touching enemy and removes it
func (c *CollisionSystem) playerEnemies(p *Player, w *World) (hits int, died bool) {
	bounds := p.Bounds()
	removed := newRemovalSet(len(w.Enemies))

	for i, enemy := range w.Enemies {
		if !bounds.Intersects(enemy.Bounds()) {
			continue
		}
		p.TakeDamage(c.cfg.Player.ContactDamage)
		removed.mark(i)
		hits++
		if !p.IsAlive() {
			died = true
			break
		}
	}

	w.Enemies = compact(w.Enemies, removed)
	return hits, died
}

// bulletEnemies lets every bullet destroy at most one enemy, the first one
// in iteration order that it overlaps
func (c *CollisionSystem) bulletEnemies(w *World) (kills int) {
	deadBullets := newRemovalSet(len(w.Bullets))
	deadEnemies := newRemovalSet(len(w.Enemies))

	for i, bullet := range w.Bullets {
		bounds := bullet.Bounds()
		for j, enemy := range w.Enemies {
			if deadEnemies.marked(j) {
				continue
			}
			if bounds.Intersects(enemy.Bounds()) {
				deadBullets.mark(i)
				deadEnemies.mark(j)
				kills++
				break
			}
		}
	}

	w.Bullets = compact(w.Bullets, deadBullets)
	w.Enemies = compact(w.Enemies, deadEnemies)
	return kills
}

// playerMedikits heals the player for every touching medikit and removes it
func (c *CollisionSystem) playerMedikits(p *Player, w *World) (pickups int) {
	bounds := p.Bounds()
	removed := newRemovalSet(len(w.Medikits))

	for i, m := range w.Medikits {
		if bounds.Intersects(m.Bounds()) {
			p.Heal(m.Heal)
			removed.mark(i)
			pickups++
		}
	}

	w.Medikits = compact(w.Medikits, removed)
	return pickups
}
