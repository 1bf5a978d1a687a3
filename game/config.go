package game

import "snowfall/config"

// Config holds the window settings the game needs at runtime
type Config struct {
	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// Fullscreen starts the window in fullscreen mode
	Fullscreen bool

	// Resizable lets the user resize the window
	Resizable bool

	// ShowDebug turns the debug overlay on at startup
	ShowDebug bool
}

// ConfigFrom extracts the game settings from the loaded configuration
func ConfigFrom(c *config.Config) Config {
	return Config{
		ScreenWidth:  c.Window.Width,
		ScreenHeight: c.Window.Height,
		Title:        c.Window.Title,
		Fullscreen:   c.Window.Fullscreen,
		Resizable:    c.Window.Resizable,
		ShowDebug:    c.Debug.Overlay,
	}
}
