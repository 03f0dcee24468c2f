package bootsel

import "time"

// Config holds the flasher configuration.
type Config struct {
	// ProgressCallback is called during flashing to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ValidateAllBlocks makes the flasher check every block's magic words
	// before the first write, not just block 0's
	ValidateAllBlocks bool

	// ReopenRetries is the number of extra attempts made to re-resolve the
	// device to a block handle after the permission grant
	ReopenRetries uint64

	// ReopenInterval is the delay between re-resolution attempts
	ReopenInterval time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ValidateAllBlocks: false,
		ReopenRetries:     4,
		ReopenInterval:    250 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Flasher.
type Option func(*Config)

// WithProgressCallback sets a callback function to track flashing progress.
//
// Example:
//
//	f := bootsel.New(enum, host, opener,
//	    bootsel.WithProgressCallback(func(p bootsel.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the flasher operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithValidateAllBlocks enables or disables full-image framing validation.
// Default is false: only block 0 is checked before writing, matching the
// bootloader's own fast-fail convention. A corrupted later block is then
// still written to the device, so enable this when full-image integrity
// matters more than start-up latency.
func WithValidateAllBlocks(validate bool) Option {
	return func(c *Config) {
		c.ValidateAllBlocks = validate
	}
}

// WithReopenRetries sets the number of extra device re-resolution attempts
// after the permission grant. Some platforms re-enumerate the device once
// permission is granted, so the first attempt can race the re-enumeration.
func WithReopenRetries(retries uint64) Option {
	return func(c *Config) {
		c.ReopenRetries = retries
	}
}

// WithReopenInterval sets the delay between device re-resolution attempts.
func WithReopenInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.ReopenInterval = interval
		}
	}
}
