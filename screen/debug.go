package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"shootingsurvival/game"
)

// DebugState holds global debug flags that persist across restarts
type DebugState struct {
	ShowBounds bool // Outline every bounding box and print entity counts
}

// Global debug state instance (persists across restarts)
var globalDebugState = &DebugState{
	ShowBounds: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

var (
	debugPlayerColor  = color.RGBA{0, 255, 0, 255}
	debugEnemyColor   = color.RGBA{255, 0, 0, 255}
	debugBulletColor  = color.RGBA{255, 255, 0, 255}
	debugMedikitColor = color.RGBA{0, 200, 255, 255}
)

// drawDebug outlines the collision boxes and prints counters in the bottom
// left corner
func drawDebug(dst *ebiten.Image, snap game.Snapshot, tick int) {
	strokeBox(dst, snap.Player.Box, debugPlayerColor)
	for _, e := range snap.Enemies {
		strokeBox(dst, e.Box, debugEnemyColor)
	}
	for _, b := range snap.Bullets {
		strokeBox(dst, b, debugBulletColor)
	}
	for _, m := range snap.Medikits {
		strokeBox(dst, m.Box, debugMedikitColor)
	}

	msg := fmt.Sprintf("tick %d  tps %.0f  enemies %d  bullets %d  medikits %d",
		tick, ebiten.ActualTPS(), len(snap.Enemies), len(snap.Bullets), len(snap.Medikits))
	ebitenutil.DebugPrintAt(dst, msg, 10, dst.Bounds().Dy()-20)
}

func strokeBox(dst *ebiten.Image, b game.BoundingBox, clr color.Color) {
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, clr, false)
}
