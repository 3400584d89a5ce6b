package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrCaptureBusy is returned when a capture is running or cooling down
var ErrCaptureBusy = errors.New("profile capture busy")

// Profiler captures a CPU profile and an execution trace when the measured
// tick rate drops below a threshold
type Profiler struct {
	mu              sync.Mutex
	log             *slog.Logger
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	minTPS          float64
	warmup          time.Duration
	started         time.Time
}

// NewProfiler creates a profiler that triggers below minTPS, writing to profilesDir
func NewProfiler(profilesDir string, minTPS float64, logger *slog.Logger) *Profiler {
	return &Profiler{
		log:             logger,
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     profilesDir,
		minTPS:          minTPS,
		warmup:          3 * time.Second, // ignore drops while the window comes up
		started:         time.Now(),
	}
}

// Observe checks the current tick rate and starts a capture if it is too low
func (p *Profiler) Observe(tps float64) {
	if time.Since(p.started) < p.warmup || tps >= p.minTPS {
		return
	}
	reason := fmt.Sprintf("tps%.0f", tps)
	if err := p.CaptureProfile(reason); err == nil {
		p.log.Warn("tick rate dropped, capturing profile", "tps", tps, "min", p.minTPS)
	}
}

// CaptureProfile starts a CPU profile and a trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling || time.Since(p.lastCaptureTime) < p.captureCooldown {
		return ErrCaptureBusy
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("tps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var g errgroup.Group
		g.Go(func() error { return p.captureCPUProfile(baseName) })
		g.Go(func() error { return p.captureTrace(baseName) })
		if err := g.Wait(); err != nil {
			p.log.Error("profile capture failed", "name", baseName, "err", err)
			return
		}
		p.logSummary(baseName)
	}()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}

// logSummary reports where the capture went and the heap at that moment
func (p *Profiler) logSummary(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		p.log.Warn("could not stat profile", "path", path, "err", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("profile captured",
		"profile", path,
		"kb", info.Size()/1024,
		"view", "go tool pprof -http=:8080 "+path,
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects,
	)
}
