package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"snowfall/profiling"
	"snowfall/random"
	"snowfall/snow"
)

// Game hosts the snowfall inside an ebiten window
type Game struct {
	config Config
	logger *zap.Logger

	cursor   *snow.Cursor
	field    *snow.Field
	viewport *snow.Viewport
	driver   *snow.Driver

	input    *pointerFeed
	textures *textureCache
	surface  *screenSurface
	profiler *profiling.Profiler
	debug    *DebugState

	// FPS tracking
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	lastUpdateTime   time.Time
}

// NewGame creates a game. The profiler may be nil.
func NewGame(config Config, rng random.Source, profiler *profiling.Profiler, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	field := snow.NewField(rng)
	cursor := snow.NewCursor()
	viewport := snow.NewViewport(field, logger)
	textures := newTextureCache(logger)

	return &Game{
		config:         config,
		logger:         logger.Named("game"),
		cursor:         cursor,
		field:          field,
		viewport:       viewport,
		driver:         snow.NewDriver(field, cursor, viewport, logger),
		input:          newPointerFeed(),
		textures:       textures,
		surface:        &screenSurface{textures: textures},
		profiler:       profiler,
		debug:          &DebugState{ShowOverlay: config.ShowDebug},
		lastUpdateTime: time.Now(),
	}
}

// Run opens the window and blocks until ctx is cancelled or the window closes
func Run(ctx context.Context, config Config, rng random.Source, profiler *profiling.Profiler, logger *zap.Logger) error {
	g := NewGame(config, rng, profiler, logger)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetFullscreen(config.Fullscreen)
	if config.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// one Update per displayed frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g.driver.Start(ctx)
	defer g.driver.Stop()

	g.logger.Info("Starting snowfall",
		zap.Int("width", config.ScreenWidth),
		zap.Int("height", config.ScreenHeight),
		zap.Bool("fullscreen", config.Fullscreen),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	g.logger.Info("Snowfall stopped", zap.Uint64("frames", g.driver.Frames()))
	return nil
}

// Update advances the simulation by one frame
func (g *Game) Update() error {
	if !g.driver.Running() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Toggle()
	}

	g.trackFPS()

	if g.viewport.Ready() {
		w, h := g.viewport.Size()
		g.input.poll(g.cursor, g.viewport.Scale(), w, h)
	}
	g.driver.Tick()
	return nil
}

// trackFPS samples the frame rate every half second and hands it to the profiler
func (g *Game) trackFPS() {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	fps := float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	if g.profiler != nil {
		g.profiler.Observe(fps, g.field.Len())
	}
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.viewport.Ready() {
		return
	}
	g.driver.Render(g.surface.bind(screen, g.viewport.Scale()))
	g.drawDebug(screen)
}

// Layout sizes the screen in device pixels and repopulates the field on change
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScale()
	pw, ph, changed := g.viewport.Resize(float64(outsideWidth), float64(outsideHeight), scale)
	if changed {
		g.textures.ensure(g.viewport.Scale())
	}
	if pw <= 0 || ph <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	return pw, ph
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}
