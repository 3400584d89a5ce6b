package game

import "math"

// Direction is a movement intent reported by the input collaborator
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// Player is the entity controlled by the user
type Player struct {
	// Position of the top-left corner
	Pos Vector2i

	// Velocity per tick; each axis is -Speed, 0 or Speed
	VX, VY int

	// Health points (0 or less means the session is over)
	Health int

	size, speed int
	maxHealth   int
	maxX, maxY  int
}

// NewPlayer creates a player at the configured start position with full health
func NewPlayer(cfg Config) *Player {
	return &Player{
		Pos:       Vector2i{X: cfg.Player.StartX, Y: cfg.Player.StartY},
		Health:    cfg.Player.MaxHealth,
		size:      cfg.Player.Size,
		speed:     cfg.Player.Speed,
		maxHealth: cfg.Player.MaxHealth,
		maxX:      cfg.PlayerMaxX(),
		maxY:      cfg.PlayerMaxY(),
	}
}

// ApplyInput sets the velocity component of the axis dir belongs to.
// Axes are independent, so diagonal movement is faster than straight movement.
func (p *Player) ApplyInput(dir Direction, pressed bool) {
	v := 0
	switch dir {
	case DirectionLeft, DirectionUp:
		if pressed {
			v = -p.speed
		}
	case DirectionRight, DirectionDown:
		if pressed {
			v = p.speed
		}
	default:
		return
	}

	switch dir {
	case DirectionLeft, DirectionRight:
		p.VX = v
	case DirectionUp, DirectionDown:
		p.VY = v
	}
}

// Move applies velocity and keeps the sprite fully inside the arena
func (p *Player) Move() {
	p.Pos.X = clamp(p.Pos.X+p.VX, 0, p.maxX)
	p.Pos.Y = clamp(p.Pos.Y+p.VY, 0, p.maxY)
}

// TakeDamage subtracts health without clamping; the caller checks for game over
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount int) {
	p.Health = min(p.maxHealth, p.Health+amount)
}

// IsAlive reports whether the player still has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Size returns the sprite edge length
func (p *Player) Size() int {
	return p.size
}

// Bounds returns the player's bounding box
func (p *Player) Bounds() BoundingBox {
	return NewBoundingBox(p.Pos, p.size, p.size)
}

// Center returns the center of the player's bounding box
func (p *Player) Center() Vector2i {
	return p.Bounds().Center()
}

// Enemy chases the player; behavior is shared across variants and only the
// speed and sprite differ
type Enemy struct {
	Pos   Vector2i
	Type  EnemyType
	Speed int

	// Sprite is the asset key of the variant
	Sprite string

	size int
}

// NewEnemy creates an enemy of the given variant at pos
func NewEnemy(cfg Config, t EnemyType, pos Vector2i) *Enemy {
	ec := cfg.EnemyTypeConfig(t)
	return &Enemy{
		Pos:    pos,
		Type:   t,
		Speed:  ec.Speed,
		Sprite: ec.Sprite,
		size:   ec.Size,
	}
}

// MoveTowards steps the enemy toward target by its speed, rounding each axis.
// Positions are compared corner to corner; there is no pathing or clamping.
func (e *Enemy) MoveTowards(target Vector2i) {
	angle := math.Atan2(float64(target.Y-e.Pos.Y), float64(target.X-e.Pos.X))
	speed := float64(e.Speed)
	e.Pos.X += int(math.Round(speed * math.Cos(angle)))
	e.Pos.Y += int(math.Round(speed * math.Sin(angle)))
}

// Size returns the sprite edge length
func (e *Enemy) Size() int {
	return e.size
}

// Bounds returns the enemy's bounding box
func (e *Enemy) Bounds() BoundingBox {
	return NewBoundingBox(e.Pos, e.size, e.size)
}

// Center returns the center of the enemy's bounding box
func (e *Enemy) Center() Vector2i {
	return e.Bounds().Center()
}

// Bullet travels in a straight line fixed at creation
type Bullet struct {
	// Sub-unit position so that position after t ticks is exactly start + t*(DX, DY)
	X, Y float64

	// Direction vector, speed already applied
	DX, DY float64

	size int
}

// NewBullet creates a bullet whose box is centered on origin and which flies
// toward target. The direction never changes afterwards.
func NewBullet(cfg Config, origin, target Vector2i) *Bullet {
	size := cfg.Bullet.Size
	angle := math.Atan2(float64(target.Y-origin.Y), float64(target.X-origin.X))
	return &Bullet{
		X:    float64(origin.X - size/2),
		Y:    float64(origin.Y - size/2),
		DX:   cfg.Bullet.Speed * math.Cos(angle),
		DY:   cfg.Bullet.Speed * math.Sin(angle),
		size: size,
	}
}

// Move advances the bullet by its direction vector
func (b *Bullet) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Pos returns the integer position used for collisions and drawing
func (b *Bullet) Pos() Vector2i {
	return Vector2i{X: int(math.Floor(b.X)), Y: int(math.Floor(b.Y))}
}

// IsOutOfBounds reports whether the bullet left [0,width]x[0,height]
func (b *Bullet) IsOutOfBounds(width, height int) bool {
	p := b.Pos()
	return p.X < 0 || p.X > width || p.Y < 0 || p.Y > height
}

// Size returns the sprite edge length
func (b *Bullet) Size() int {
	return b.size
}

// Bounds returns the bullet's bounding box
func (b *Bullet) Bounds() BoundingBox {
	return NewBoundingBox(b.Pos(), b.size, b.size)
}

// Medikit is a health pickup; it does not move
type Medikit struct {
	Pos  Vector2i
	Heal int

	size int
}

// NewMedikit creates a medikit at pos
func NewMedikit(cfg Config, pos Vector2i) *Medikit {
	return &Medikit{Pos: pos, Heal: cfg.Medikit.Heal, size: cfg.Medikit.Size}
}

// Size returns the sprite edge length
func (m *Medikit) Size() int {
	return m.size
}

// Bounds returns the medikit's bounding box
func (m *Medikit) Bounds() BoundingBox {
	return NewBoundingBox(m.Pos, m.size, m.size)
}
