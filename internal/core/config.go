package core

import "time"

// RuntimeConfig contains settings owned by the platform layer rather than by
// the game configuration file: terminal size, loop timing and RNG seed.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for the turn order shuffle (0 = time based)

	TickRate      int           // Redraw ticks per second
	PollInterval  time.Duration // Interval of the termination check
	BlinkInterval time.Duration // Half period of the cursor blink
	GracePeriod   time.Duration // Time the final frame stays live before the exit prompt
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Seed:          0, // 0 means use current time in platform layer
		TickRate:      30,
		PollInterval:  50 * time.Millisecond,
		BlinkInterval: 250 * time.Millisecond,
		GracePeriod:   time.Second,
	}
}

// TickInterval converts TickRate into a frame interval.
// Non-positive rates fall back to the default rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}
