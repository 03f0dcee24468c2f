package bootsel

import "time"

// Flashing phases reported through Progress.Phase.
const (
	// PhaseDiscovering - matching enumerated devices against known signatures
	PhaseDiscovering = "discovering"

	// PhaseAuthorizing - waiting for the host permission grant
	PhaseAuthorizing = "authorizing"

	// PhaseOpening - resolving the device to a block-device handle
	PhaseOpening = "opening"

	// PhaseValidating - checking the image against the UF2 framing rules
	PhaseValidating = "validating"

	// PhaseWriting - writing blocks to the device
	PhaseWriting = "writing"

	// PhaseComplete - operation finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about the flashing progress.
// Passed to ProgressCallback during a FlashFirmware call.
type Progress struct {
	// Phase is the current operation phase, one of the Phase* constants
	Phase string

	// CurrentBlock is the number of blocks written so far
	CurrentBlock int

	// TotalBlocks is the total number of blocks to write
	TotalBlocks int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes written so far
	BytesWritten int

	// ElapsedTime is the time elapsed since flashing started
	ElapsedTime time.Duration
}

// ProgressCallback is called during flashing to report progress.
// Implementations should return quickly: the callback runs on the flashing
// goroutine between block writes.
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// flasher. This allows integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
