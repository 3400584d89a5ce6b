package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"shootingsurvival/game"
	"shootingsurvival/score"
)

// Summary is the outcome of one headless session
type Summary struct {
	Index  int
	Seed   int64
	Score  int
	Wave   int
	Ticks  int
	Kills  int
	Fired  int
	Died   bool
	RunID  string
	Health int
}

// memoryStore keeps the best score in memory for sessions running in parallel
type memoryStore struct {
	mu   sync.Mutex
	best int
}

func (m *memoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

func (m *memoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	sessions := flag.Int("sessions", 4, "Number of sessions to play")
	maxTicks := flag.Int("ticks", 100*60*5, "Tick limit per session")
	seed := flag.Int64("seed", 1, "Seed of the first session; session i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "Sessions played in parallel")
	fireEvery := flag.Int("fire-every", 10, "Ticks between bot shots")
	flee := flag.Int("flee", 150, "Distance at which the bot runs from an enemy")
	highscorePath := flag.String("highscore", "", "Merge the best result into this score file")
	debug := flag.Bool("debug", false, "Log every session event")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting headless run", "sessions", *sessions, "workers", *workers, "seed", *seed)
	start := time.Now()

	store := &memoryStore{}
	results := make([]Summary, *sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*workers, 1))
	for i := range *sessions {
		g.Go(func() error {
			s := *seed + int64(i)
			sum, err := playSession(ctx, cfg, s, *maxTicks, NewBot(*fireEvery, *flee), store, logger.With("session", i))
			if err != nil {
				return err
			}
			sum.Index = i
			results[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("headless run interrupted", "err", err)
		os.Exit(1)
	}

	printSummary(results, time.Since(start))

	if *highscorePath != "" {
		best, _ := store.Load()
		if err := mergeBest(score.NewFileStore(*highscorePath), best); err != nil {
			logger.Error("failed to update score file", "path", *highscorePath, "err", err)
			os.Exit(1)
		}
	}
}

// playSession runs one session until the player dies or the tick limit is hit
func playSession(ctx context.Context, cfg game.Config, seed int64, maxTicks int, bot *Bot, store game.ScoreStore, logger *slog.Logger) (Summary, error) {
	session := game.NewSession(cfg, rand.New(rand.NewSource(seed)), store, logger)
	sum := Summary{Seed: seed, RunID: session.RunID().String()}

	for tick := 0; tick < maxTicks; tick++ {
		// Cancellation is checked once per simulated second
		if tick%cfg.TicksPerSecond == 0 && ctx.Err() != nil {
			return sum, ctx.Err()
		}

		res := session.Tick(bot.Events(session.Simulation()))
		sum.Kills += res.Kills
		sum.Fired += res.Fired
		if res.GameOver {
			sum.Died = true
			break
		}
	}

	sim := session.Simulation()
	sum.Score = sim.Score
	sum.Wave = sim.Spawner.Wave
	sum.Ticks = sim.Tick
	sum.Health = sim.Player.Health
	return sum, nil
}

func printSummary(results []Summary, elapsed time.Duration) {
	fmt.Printf("%-4s %-8s %-6s %-5s %-7s %-6s %-6s %-7s %-5s %s\n",
		"#", "seed", "score", "wave", "ticks", "kills", "shots", "health", "died", "run")
	best := 0
	for _, r := range results {
		fmt.Printf("%-4d %-8d %-6d %-5d %-7d %-6d %-6d %-7d %-5t %s\n",
			r.Index, r.Seed, r.Score, r.Wave, r.Ticks, r.Kills, r.Fired, r.Health, r.Died, r.RunID)
		best = max(best, r.Score)
	}
	fmt.Printf("\n%d sessions in %v, best score %d\n", len(results), elapsed.Round(time.Millisecond), best)
}

// mergeBest saves best into the store if it beats the stored record
func mergeBest(store *score.FileStore, best int) error {
	current, err := store.Load()
	if err != nil {
		return err
	}
	if best <= current {
		return nil
	}
	return store.Save(best)
}
