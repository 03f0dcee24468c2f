package blockdev

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBlockSize is the block size used by USB mass-storage bootloaders.
const DefaultBlockSize = 512

// ErrClosed is returned by operations on a Device after Close.
var ErrClosed = errors.New("block device is closed")

// Channel is the raw transport a Device is built on. ReadAt/WriteAt address
// the underlying medium by absolute byte offset.
type Channel interface {
	// Reset negotiates or clears channel state. Called by Device.Init
	// before any block I/O.
	Reset() error

	io.ReaderAt
	io.WriterAt
	io.Closer
}

// Device offers block-addressed access over a Channel.
//
// Device is not safe for concurrent use: one flashing operation owns the
// handle exclusively for its duration.
type Device struct {
	ch        Channel
	blockSize int
	closed    bool
}

// New creates a Device over the given channel.
//
// Example:
//
//	ch, err := blockdev.OpenFile("/dev/sdb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dev := blockdev.New(ch)
func New(ch Channel) *Device {
	if ch == nil {
		panic("channel cannot be nil")
	}
	return &Device{
		ch:        ch,
		blockSize: DefaultBlockSize,
	}
}

// BlockSize returns the fixed block size in bytes.
func (d *Device) BlockSize() int {
	return d.blockSize
}

// Init resets the underlying channel. It must be called before any read or
// write.
func (d *Device) Init() error {
	if d.closed {
		return ErrClosed
	}
	if err := d.ch.Reset(); err != nil {
		return fmt.Errorf("reset channel: %w", err)
	}
	return nil
}

// ReadBlock reads the block at the given absolute block index.
func (d *Device) ReadBlock(index uint32) ([]byte, error) {
	if d.closed {
		return nil, ErrClosed
	}

	buf := make([]byte, d.blockSize)
	if _, err := d.ch.ReadAt(buf, int64(index)*int64(d.blockSize)); err != nil {
		return nil, fmt.Errorf("read block %d: %w", index, err)
	}
	return buf, nil
}

// WriteBlock writes exactly one block at the given absolute block index.
// The data length must equal BlockSize.
func (d *Device) WriteBlock(index uint32, data []byte) error {
	if d.closed {
		return ErrClosed
	}
	if len(data) != d.blockSize {
		return fmt.Errorf("write block %d: data is %d bytes, block size is %d",
			index, len(data), d.blockSize)
	}

	if _, err := d.ch.WriteAt(data, int64(index)*int64(d.blockSize)); err != nil {
		return fmt.Errorf("write block %d: %w", index, err)
	}
	return nil
}

// Close releases the underlying channel. Close is idempotent: the second and
// subsequent calls are no-ops returning nil.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.ch.Close()
}
