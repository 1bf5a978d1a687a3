package profiling

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"go.uber.org/zap"

	"snowfall/config"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	logger          *zap.Logger
	enabled         bool
	isProfiling     bool
	lastCaptureTime time.Time
	startTime       time.Time
	profilesDir     string
	captureDuration time.Duration
	captureCooldown time.Duration
	grace           time.Duration
	fpsThreshold    float64
	now             func() time.Time
}

// NewProfiler creates a profiler. A disabled profiler ignores every observation.
func NewProfiler(cfg config.ProfileConfig, logger *zap.Logger) (*Profiler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Profiler{
		logger:          logger.Named("profiler"),
		enabled:         cfg.Enabled,
		profilesDir:     cfg.Dir,
		captureDuration: cfg.Duration,
		captureCooldown: cfg.Cooldown,
		grace:           cfg.Grace,
		fpsThreshold:    cfg.FPSThreshold,
		now:             time.Now,
	}
	p.startTime = p.now()
	if !p.enabled {
		return p, nil
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return p, nil
}

// Observe feeds a measured FPS value. A drop below the threshold starts a
// background capture, at most once per cooldown and never during the grace
// period after startup. It reports whether a capture was started.
func (p *Profiler) Observe(fps float64, particles int) bool {
	if !p.enabled || fps >= p.fpsThreshold {
		return false
	}
	if p.now().Sub(p.startTime) < p.grace {
		return false
	}
	reason := fmt.Sprintf("fps%.0f-flakes%d", fps, particles)
	if err := p.CaptureProfile(reason); err != nil {
		p.logger.Debug("Skipping profile capture", zap.Error(err))
		return false
	}
	p.logger.Warn("FPS drop detected, capturing profile",
		zap.Float64("fps", fps),
		zap.Int("particles", particles),
	)
	return true
}

// CaptureProfile starts capturing in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := p.now().Sub(p.lastCaptureTime); !p.lastCaptureTime.IsZero() && since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := p.baseName(reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.capture(baseName, p.captureDuration); err != nil {
			p.logger.Error("Profile capture failed", zap.Error(err))
		}
	}()
	return nil
}

// CaptureProfileSync captures for duration and blocks until the files are written
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) error {
	p.mu.Lock()
	if p.isProfiling {
		p.mu.Unlock()
		return fmt.Errorf("already profiling")
	}
	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := p.baseName(reason)
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()
	return p.capture(baseName, duration)
}

func (p *Profiler) baseName(reason string) string {
	return fmt.Sprintf("fps-drop-%s-%s", p.now().Format("20060102-150405"), reason)
}

// capture records the CPU profile and the trace in parallel
func (p *Profiler) capture(baseName string, duration time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName, duration)
	}()
	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName, duration)
	}()
	wg.Wait()

	p.logStats(baseName)
	if cpuErr != nil {
		return cpuErr
	}
	return traceErr
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	p.logger.Info("CPU profile saved", zap.String("path", profilePath))
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	p.logger.Info("Trace saved", zap.String("path", tracePath))
	return nil
}

func (p *Profiler) logStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("Profile captured",
		zap.String("name", baseName),
		zap.String("view", "go tool pprof -http=:8080 "+filepath.Join(p.profilesDir, baseName+".cpu.prof")),
		zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
		zap.Uint32("num_gc", m.NumGC),
	)
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Close waits for a background capture to finish
func (p *Profiler) Close() {
	p.wg.Wait()
}
