package screen

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"shootingsurvival/game"
)

//go:embed assets/*.svg
var svgAssets embed.FS

// Sprites maps sprite keys to images sized for their entity
type Sprites struct {
	images map[string]*ebiten.Image
}

// LoadSprites rasterizes a sprite for every key the configuration uses.
// A PNG named after the key in overrideDir replaces the embedded SVG. Keys
// that cannot be loaded are left out and drawn as plain boxes.
func LoadSprites(cfg game.Config, overrideDir string, logger *slog.Logger) *Sprites {
	sizes := map[string]int{
		game.SpritePlayer:  cfg.Player.Size,
		game.SpriteMedikit: cfg.Medikit.Size,
	}
	for _, t := range game.EnemyTypes {
		ec := cfg.EnemyTypeConfig(t)
		if ec.Sprite != "" {
			sizes[ec.Sprite] = ec.Size
		}
	}

	s := &Sprites{images: make(map[string]*ebiten.Image, len(sizes))}
	for key, size := range sizes {
		img, err := loadSprite(key, size, overrideDir)
		if err != nil {
			logger.Debug("sprite unavailable, drawing placeholder", "sprite", key, "err", err)
			continue
		}
		s.images[key] = img
	}
	return s
}

// Get returns the sprite for key, or nil if it was not loaded
func (s *Sprites) Get(key string) *ebiten.Image {
	return s.images[key]
}

func loadSprite(key string, size int, overrideDir string) (*ebiten.Image, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, key+".png")
		if _, err := os.Stat(path); err == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
			return img, nil
		}
	}

	data, err := svgAssets.ReadFile("assets/" + key + ".svg")
	if err != nil {
		return nil, err
	}
	rgba, err := svgToImage(data, size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", key, err)
	}
	return ebiten.NewImageFromImage(rgba), nil
}

// svgToImage rasterizes SVG data at the given size
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
