package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"shootingsurvival/game"
)

const (
	hudX          = 10
	hudY          = 10
	hudLineHeight = 20
)

// Placeholder colors for entities without a sprite
var (
	backgroundColor = colornames.Black
	playerColor     = colornames.Dodgerblue
	enemyColor      = colornames.Red
	bulletColor     = colornames.Yellow
	medikitColor    = colornames.Limegreen
	hudColor        = colornames.White
	gameOverColor   = colornames.Red
)

// Renderer draws snapshots of the session
type Renderer struct {
	sprites *Sprites
	face    *text.GoXFace
}

// NewRenderer creates a renderer using the given sprites
func NewRenderer(sprites *Sprites) *Renderer {
	return &Renderer{
		sprites: sprites,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws the arena, the entities and the HUD
func (r *Renderer) Render(dst *ebiten.Image, snap game.Snapshot) {
	dst.Fill(backgroundColor)

	for _, m := range snap.Medikits {
		r.drawEntity(dst, m, medikitColor)
	}
	for _, e := range snap.Enemies {
		r.drawEntity(dst, e, enemyColor)
	}
	r.drawEntity(dst, snap.Player, playerColor)
	for _, b := range snap.Bullets {
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bulletColor, false)
	}

	r.drawHUD(dst, snap)
	if snap.GameOver {
		r.drawGameOver(dst)
	}
}

// drawEntity draws the entity's sprite scaled to its box, or a filled box
func (r *Renderer) drawEntity(dst *ebiten.Image, v game.EntityView, fallback color.Color) {
	img := r.sprites.Get(v.Sprite)
	if img == nil {
		vector.DrawFilledRect(dst, float32(v.Box.X), float32(v.Box.Y), float32(v.Box.W), float32(v.Box.H), fallback, false)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.Box.W)/float64(b.Dx()), float64(v.Box.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(v.Box.X), float64(v.Box.Y))
	dst.DrawImage(img, op)
}

func (r *Renderer) drawHUD(dst *ebiten.Image, snap game.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Health: %d", snap.Health),
		fmt.Sprintf("Wave: %d", snap.Wave),
		fmt.Sprintf("High Score: %d", snap.Best),
	}
	for i, line := range lines {
		r.drawText(dst, line, hudX, hudY+i*hudLineHeight, hudColor)
	}
}

func (r *Renderer) drawGameOver(dst *ebiten.Image) {
	b := dst.Bounds()
	r.drawCentered(dst, "Game Over!", b.Dy()/2-hudLineHeight, gameOverColor)
	r.drawCentered(dst, "Press 'R' to Restart", b.Dy()/2+hudLineHeight, hudColor)
}

func (r *Renderer) drawCentered(dst *ebiten.Image, s string, y int, clr color.Color) {
	w, _ := text.Measure(s, r.face, hudLineHeight)
	x := (float64(dst.Bounds().Dx()) - w) / 2
	r.drawText(dst, s, int(x), y, clr)
}

func (r *Renderer) drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, r.face, op)
}
