package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	assert.Equal(t, Vector2i{X: 400, Y: 300}, p.Pos)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 50, p.Size())
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
}

func TestPlayer_ApplyInput(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	p.ApplyInput(DirectionLeft, true)
	assert.Equal(t, -5, p.VX)
	p.ApplyInput(DirectionDown, true)
	assert.Equal(t, 5, p.VY)

	// Diagonal movement is additive, not normalized
	p.Move()
	assert.Equal(t, Vector2i{X: 395, Y: 305}, p.Pos)

	p.ApplyInput(DirectionRight, true)
	assert.Equal(t, 5, p.VX, "last pressed key on an axis wins")

	p.ApplyInput(DirectionLeft, false)
	assert.Zero(t, p.VX, "release zeroes the whole axis")
	assert.Equal(t, 5, p.VY, "axes are independent")

	p.ApplyInput(Direction(99), true)
	assert.Zero(t, p.VX)
	assert.Equal(t, 5, p.VY)
}

func TestPlayer_MoveClampsToArena(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	p.Pos = Vector2i{X: 2, Y: 548}
	p.VX, p.VY = -5, 5
	p.Move()
	assert.Equal(t, Vector2i{X: 0, Y: 550}, p.Pos)

	p.Pos = Vector2i{X: 748, Y: 3}
	p.VX, p.VY = 5, -5
	p.Move()
	assert.Equal(t, Vector2i{X: 750, Y: 0}, p.Pos)
}

func TestPlayer_HealthRules(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	p.TakeDamage(30)
	assert.Equal(t, 70, p.Health)
	p.Heal(20)
	assert.Equal(t, 90, p.Health)
	p.Heal(20)
	assert.Equal(t, 100, p.Health, "heal clamps at max")

	p.Health = 5
	p.TakeDamage(10)
	assert.Equal(t, -5, p.Health, "damage is not clamped")
	assert.False(t, p.IsAlive())
}

func TestEnemy_VariantStats(t *testing.T) {
	cfg := DefaultConfig()

	chaser := NewEnemy(cfg, EnemyTypeChaser, Vector2i{})
	fast := NewEnemy(cfg, EnemyTypeFastChaser, Vector2i{})

	assert.Equal(t, 2, chaser.Speed)
	assert.Equal(t, 3, fast.Speed)
	assert.Equal(t, 50, chaser.Size())
	assert.Equal(t, 50, fast.Size())
	assert.NotEqual(t, chaser.Sprite, fast.Sprite)
}

func TestEnemy_MoveTowards(t *testing.T) {
	tests := []struct {
		name   string
		t      EnemyType
		start  Vector2i
		target Vector2i
		want   Vector2i
	}{
		{"right", EnemyTypeChaser, Vector2i{X: 0, Y: 0}, Vector2i{X: 100, Y: 0}, Vector2i{X: 2, Y: 0}},
		{"up", EnemyTypeChaser, Vector2i{X: 0, Y: 100}, Vector2i{X: 0, Y: 0}, Vector2i{X: 0, Y: 98}},
		{"fast left", EnemyTypeFastChaser, Vector2i{X: 100, Y: 0}, Vector2i{X: 0, Y: 0}, Vector2i{X: 97, Y: 0}},
		// 2*cos(45°) = 1.41 rounds to 1
		{"diagonal", EnemyTypeChaser, Vector2i{X: 0, Y: 0}, Vector2i{X: 100, Y: 100}, Vector2i{X: 1, Y: 1}},
		// 3*cos(45°) = 2.12 rounds to 2
		{"fast diagonal", EnemyTypeFastChaser, Vector2i{X: 100, Y: 100}, Vector2i{X: 0, Y: 0}, Vector2i{X: 98, Y: 98}},
		// atan2(0, 0) is 0, so a colocated enemy drifts right
		{"colocated", EnemyTypeChaser, Vector2i{X: 10, Y: 10}, Vector2i{X: 10, Y: 10}, Vector2i{X: 12, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(DefaultConfig(), tt.t, tt.start)
			e.MoveTowards(tt.target)
			assert.Equal(t, tt.want, e.Pos)
		})
	}
}

func TestEnemy_NotClampedToArena(t *testing.T) {
	e := enemyAt(-100, -100)
	e.MoveTowards(Vector2i{X: -500, Y: -100})
	assert.Equal(t, Vector2i{X: -102, Y: -100}, e.Pos)
}

func TestNewBullet_CenteredOnOrigin(t *testing.T) {
	b := NewBullet(DefaultConfig(), Vector2i{X: 425, Y: 325}, Vector2i{X: 525, Y: 325})

	assert.Equal(t, Vector2i{X: 423, Y: 323}, b.Pos())
	assert.Equal(t, 5, b.Size())
	assert.InDelta(t, 10.0, b.DX, 1e-9)
	assert.InDelta(t, 0.0, b.DY, 1e-9)
}

func TestBullet_IsOutOfBounds(t *testing.T) {
	b := &Bullet{size: 5}

	for _, tt := range []struct {
		x, y float64
		want bool
	}{
		{0, 0, false},
		{800, 600, false},
		{-0.5, 10, true},
		{801, 10, true},
		{10, -1, true},
		{10, 601, true},
	} {
		b.X, b.Y = tt.x, tt.y
		assert.Equal(t, tt.want, b.IsOutOfBounds(800, 600), "(%v, %v)", tt.x, tt.y)
	}
}

func TestEnemyType_Text(t *testing.T) {
	var et EnemyType
	assert.NoError(t, et.UnmarshalText([]byte("fast_chaser")))
	assert.Equal(t, EnemyTypeFastChaser, et)
	assert.Error(t, et.UnmarshalText([]byte("boss")))

	text, err := EnemyTypeChaser.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "chaser", string(text))
	assert.Equal(t, "enemy(7)", EnemyType(7).String())
}
