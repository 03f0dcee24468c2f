package bootsel

import "fmt"

// DeviceNotRecognizedError indicates that a matched identity could not be
// re-resolved to a mass-storage handle after the permission grant.
type DeviceNotRecognizedError struct {
	Device DeviceIdentity
	Err    error
}

func (e *DeviceNotRecognizedError) Error() string {
	return fmt.Sprintf("device %s not recognized as mass storage: %v", e.Device, e.Err)
}

func (e *DeviceNotRecognizedError) Unwrap() error {
	return e.Err
}

// WriteError indicates that a single block write failed. Writing stops at the
// failing block; earlier blocks may already be on the device.
type WriteError struct {
	// Block is the absolute block index the write was addressed to
	Block uint32

	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write block %d failed: %v", e.Block, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
