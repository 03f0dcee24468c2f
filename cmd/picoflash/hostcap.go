package main

import (
	"os"
	"sync"

	"github.com/moffa90/go-bootsel/blockdev"
	"github.com/moffa90/go-bootsel/bootsel"
)

// nodeHost implements bootsel.PermissionHost for POSIX hosts: there is no
// asynchronous grant dialog, authorization is simply whether the device node
// is writable by this process. A denied result points the user at udev rules
// or group membership rather than a dialog.
type nodeHost struct {
	path string

	mu       sync.Mutex
	listener func(bootsel.DeviceIdentity, bool)
}

func (h *nodeHost) HasPermission(bootsel.DeviceIdentity) bool {
	return nodeWritable(h.path)
}

func (h *nodeHost) Subscribe(fn func(bootsel.DeviceIdentity, bool)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listener = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.listener = nil
	}
}

func (h *nodeHost) Request(dev bootsel.DeviceIdentity) error {
	h.mu.Lock()
	fn := h.listener
	h.mu.Unlock()

	if fn != nil {
		go fn(dev, nodeWritable(h.path))
	}
	return nil
}

func nodeWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// fileOpener resolves any matched identity to the configured raw block node.
type fileOpener struct {
	path string
}

func (o fileOpener) Open(bootsel.DeviceIdentity) (blockdev.Channel, error) {
	return blockdev.OpenFile(o.path)
}
