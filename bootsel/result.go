package bootsel

import "fmt"

// FlashStatus is the outcome category of a flashing attempt.
type FlashStatus int

const (
	// StatusSuccess means every block was written
	StatusSuccess FlashStatus = iota

	// StatusError means a step failed; FlashResult.Err carries the cause
	StatusError

	// StatusNoDeviceFound means no enumerated device matched a known
	// bootloader signature
	StatusNoDeviceFound

	// StatusPermissionDenied means the host refused raw-I/O authorization
	// or the handshake was cancelled
	StatusPermissionDenied
)

func (s FlashStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusNoDeviceFound:
		return "no device found"
	case StatusPermissionDenied:
		return "permission denied"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// FlashResult is the sole observable outcome of one flashing attempt.
// Exactly one is produced per FlashFirmware call; there is no partial-success
// variant.
type FlashResult struct {
	// Status is the outcome category
	Status FlashStatus

	// Err is the captured failure, set only when Status is StatusError
	Err error
}

// Ok reports whether the attempt succeeded.
func (r FlashResult) Ok() bool {
	return r.Status == StatusSuccess
}

func (r FlashResult) String() string {
	if r.Status == StatusError && r.Err != nil {
		return fmt.Sprintf("error: %v", r.Err)
	}
	return r.Status.String()
}

func errorResult(err error) FlashResult {
	return FlashResult{Status: StatusError, Err: err}
}
