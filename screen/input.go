package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"shootingsurvival/game"
)

// moveKey binds a physical key to a movement direction
type moveKey struct {
	key ebiten.Key
	dir game.Direction
}

// moveKeys lists arrows first, then WASD
var moveKeys = []moveKey{
	{ebiten.KeyArrowLeft, game.DirectionLeft},
	{ebiten.KeyArrowRight, game.DirectionRight},
	{ebiten.KeyArrowUp, game.DirectionUp},
	{ebiten.KeyArrowDown, game.DirectionDown},
	{ebiten.KeyA, game.DirectionLeft},
	{ebiten.KeyD, game.DirectionRight},
	{ebiten.KeyW, game.DirectionUp},
	{ebiten.KeyS, game.DirectionDown},
}

// Keyboard translates key edges into game input events. Unbound keys never
// reach the simulation.
type Keyboard struct {
	input *game.Input
}

// NewKeyboard creates a keyboard adapter feeding the given queue
func NewKeyboard(input *game.Input) *Keyboard {
	return &Keyboard{input: input}
}

// Poll records this frame's key presses and releases
func (k *Keyboard) Poll() {
	for _, m := range moveKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.input.Press(m.dir)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.input.Release(m.dir)
		}
	}

	// Fire on key press (not while held)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		k.input.Fire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		k.input.Restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug := GetDebugState()
		debug.ShowBounds = !debug.ShowBounds
	}
}
