package blockdev

import (
	"fmt"
	"os"
)

// FileChannel is a Channel backed by an open file. On hosts that expose the
// bootloader's mass-storage volume as a raw device node (Linux /dev/sdX),
// this is the production transport.
type FileChannel struct {
	f *os.File
}

// OpenFile opens the named file or device node read-write as a channel.
func OpenFile(path string) (*FileChannel, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &FileChannel{f: f}, nil
}

// NewFileChannel wraps an already-open file.
func NewFileChannel(f *os.File) *FileChannel {
	return &FileChannel{f: f}
}

// Reset flushes any pending writes. Device nodes need no negotiation beyond
// that.
func (c *FileChannel) Reset() error {
	return c.f.Sync()
}

func (c *FileChannel) ReadAt(p []byte, off int64) (int, error) {
	return c.f.ReadAt(p, off)
}

func (c *FileChannel) WriteAt(p []byte, off int64) (int, error) {
	return c.f.WriteAt(p, off)
}

// Close syncs and closes the file.
func (c *FileChannel) Close() error {
	if err := c.f.Sync(); err != nil {
		_ = c.f.Close()
		return err
	}
	return c.f.Close()
}
