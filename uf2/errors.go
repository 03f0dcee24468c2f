package uf2

import "fmt"

// FormatError indicates that an image does not conform to the UF2 framing
// rules. It is returned before any data reaches a device.
type FormatError struct {
	// Reason is a short description of the violation
	Reason string

	// Block is the offending block index, or -1 when the error applies to
	// the image as a whole
	Block int
}

func (e *FormatError) Error() string {
	if e.Block >= 0 {
		return fmt.Sprintf("block %d: %s", e.Block, e.Reason)
	}
	return e.Reason
}

// IsFormatError returns true if the error is a FormatError.
func IsFormatError(err error) bool {
	_, ok := err.(*FormatError)
	return ok
}
