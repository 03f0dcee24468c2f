package bootsel

import (
	"errors"
	"strings"
	"testing"
)

func TestDeviceNotRecognizedError(t *testing.T) {
	cause := errors.New("no block handle")
	err := &DeviceNotRecognizedError{
		Device: DeviceIdentity{VendorID: 0x2E8A, ProductID: 0x0003, Name: "RP2 Boot"},
		Err:    cause,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "not recognized as mass storage") {
		t.Errorf("error message should describe the failure, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "2E8A:0003") {
		t.Errorf("error message should contain the device identity, got: %s", errMsg)
	}
	if !errors.Is(err, cause) {
		t.Error("DeviceNotRecognizedError should unwrap to its cause")
	}
}

func TestWriteError(t *testing.T) {
	cause := errors.New("io failure")
	err := &WriteError{Block: 65, Err: cause}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "block 65") {
		t.Errorf("error message should contain the block index, got: %s", errMsg)
	}
	if !errors.Is(err, cause) {
		t.Error("WriteError should unwrap to its cause")
	}
}

func TestFlashResult(t *testing.T) {
	tests := []struct {
		name   string
		result FlashResult
		ok     bool
		text   string
	}{
		{
			name:   "success",
			result: FlashResult{Status: StatusSuccess},
			ok:     true,
			text:   "success",
		},
		{
			name:   "error carries message",
			result: errorResult(errors.New("bad magic numbers")),
			text:   "bad magic numbers",
		},
		{
			name:   "no device found",
			result: FlashResult{Status: StatusNoDeviceFound},
			text:   "no device found",
		},
		{
			name:   "permission denied",
			result: FlashResult{Status: StatusPermissionDenied},
			text:   "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Ok(); got != tt.ok {
				t.Errorf("Ok() = %v, want %v", got, tt.ok)
			}
			if got := tt.result.String(); !strings.Contains(got, tt.text) {
				t.Errorf("String() = %q, want containing %q", got, tt.text)
			}
		})
	}
}
