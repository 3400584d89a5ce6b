package screen

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"shootingsurvival/game"
)

// Title is the window title
const Title = "Shooting Survival Game"

// Options configures the window collaborator
type Options struct {
	SpriteDir string // optional directory of PNG overrides
	Muted     bool   // disable sound
	Profile   bool   // capture profiles when the tick rate drops
}

// App drives a session from ebiten's fixed-rate update loop
type App struct {
	cfg      game.Config
	session  *game.Session
	input    *game.Input
	keyboard *Keyboard
	renderer *Renderer
	sounds   *Sounds
	profiler *Profiler
	snap     game.Snapshot
}

// NewApp wires the keyboard, renderer and sounds around a session
func NewApp(cfg game.Config, session *game.Session, opts Options, logger *slog.Logger) *App {
	input := game.NewInput()
	a := &App{
		cfg:      cfg,
		session:  session,
		input:    input,
		keyboard: NewKeyboard(input),
		renderer: NewRenderer(LoadSprites(cfg, opts.SpriteDir, logger)),
		sounds:   NewSounds(opts.Muted),
		snap:     session.Snapshot(),
	}
	if opts.Profile {
		a.profiler = NewProfiler("profiles", float64(cfg.TicksPerSecond)*0.8, logger)
	}
	return a
}

// Run opens the window and blocks until it is closed
func (a *App) Run() error {
	ebiten.SetWindowSize(a.cfg.ArenaWidth, a.cfg.ArenaHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetTPS(a.cfg.TicksPerSecond)
	return ebiten.RunGame(a)
}

// Update runs one simulation tick; ebiten calls it TicksPerSecond times a second
func (a *App) Update() error {
	a.keyboard.Poll()

	res := a.session.Tick(a.input.Drain())
	a.sounds.Play(res)
	a.snap = a.session.Snapshot()

	if a.profiler != nil {
		a.profiler.Observe(ebiten.ActualTPS())
	}
	return nil
}

// Draw renders the snapshot taken after the last tick
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Render(screen, a.snap)
	if GetDebugState().ShowBounds {
		drawDebug(screen, a.snap, a.session.Simulation().Tick)
	}
}

// Layout keeps the logical screen at arena size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ArenaWidth, a.cfg.ArenaHeight
}
