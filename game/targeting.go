package game

// NearestEnemy returns the enemy whose center is closest to from. Ties go to
// the earliest enemy in the collection. It returns nil when there are none.
func NearestEnemy(from Vector2i, enemies []*Enemy) *Enemy {
	var nearest *Enemy
	nearestDistanceSq := 0

	// Squared integer distance orders the same as Euclidean distance
	for _, enemy := range enemies {
		c := enemy.Center()
		dx := c.X - from.X
		dy := c.Y - from.Y
		distanceSq := dx*dx + dy*dy

		if nearest == nil || distanceSq < nearestDistanceSq {
			nearest = enemy
			nearestDistanceSq = distanceSq
		}
	}
	return nearest
}

// Fire locks onto the nearest enemy and launches one bullet from the player's
// center toward the enemy's center. It reports whether a bullet was created.
func Fire(cfg Config, p *Player, w *World) bool {
	origin := p.Center()
	target := NearestEnemy(origin, w.Enemies)
	if target == nil {
		return false
	}
	w.Bullets = append(w.Bullets, NewBullet(cfg, origin, target.Center()))
	return true
}
