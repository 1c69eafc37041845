package core

// RuntimeConfig contains configuration passed from the platform layer to
// the game drivers. It covers screen geometry and the two clock rates:
// the engine tick rate (TickHz) and the render rate (FPS). The driver runs
// TickHz/FPS engine ticks per rendered frame.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	FPS     int // Render frames per second
	TickHz  int // Engine ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults: a 1 kHz
// engine clock rendered at 50 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     50,
		TickHz:  1000,
	}
}

// TicksPerFrame returns how many engine ticks elapse per rendered frame,
// never less than one.
func (c RuntimeConfig) TicksPerFrame() int {
	if c.FPS <= 0 || c.TickHz <= 0 {
		return 1
	}
	n := c.TickHz / c.FPS
	if n < 1 {
		return 1
	}
	return n
}
