package main

import (
	"flag"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"shootingsurvival/game"
	"shootingsurvival/score"
	"shootingsurvival/screen"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	highscorePath := flag.String("highscore", score.DefaultFileName, "File holding the best score")
	seed := flag.Int64("seed", 0, "Random seed for spawns (0 = time based)")
	debug := flag.Bool("debug", false, "Log at debug level and write logs/shooter.log")
	mute := flag.Bool("mute", false, "Disable sound")
	profile := flag.Bool("profile", false, "Capture CPU profiles and traces into profiles/ when the tick rate drops")
	spriteDir := flag.String("sprites", "", "Directory of PNG sprites replacing the built-in ones")
	flag.Parse()

	logger, closeLog := setupLogging(*debug)
	defer closeLog()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Debug("seeding spawns", "seed", *seed)

	store := score.NewFileStore(*highscorePath)
	session := game.NewSession(cfg, rand.New(rand.NewSource(*seed)), store, logger)

	app := screen.NewApp(cfg, session, screen.Options{
		SpriteDir: *spriteDir,
		Muted:     *mute,
		Profile:   *profile,
	}, logger)
	if err := app.Run(); err != nil {
		logger.Error("game loop failed", "err", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging installs the default logger. In debug mode records also go
// to logs/shooter.log.
func setupLogging(debug bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	var out io.Writer = os.Stderr
	closeFn := func() {}

	if debug {
		level = slog.LevelDebug
		if err := os.MkdirAll("logs", 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join("logs", "shooter.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				out = io.MultiWriter(os.Stderr, f)
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeFn
}
