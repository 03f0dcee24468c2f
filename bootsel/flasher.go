package bootsel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/moffa90/go-bootsel/blockdev"
	"github.com/moffa90/go-bootsel/uf2"
)

// TargetStartBlock is the absolute block index where the first image block
// is written: past the virtual FAT volume's boot sector, allocation tables
// and root directory. Image block i lands at TargetStartBlock + i.
const TargetStartBlock = 64

// Enumerator is the device-enumeration capability the flasher consumes.
type Enumerator interface {
	// MassStorageDevices returns devices the host classified as USB mass
	// storage.
	MassStorageDevices() ([]DeviceIdentity, error)

	// OtherDevices returns enumerated devices not classified as mass
	// storage. Some platforms fail to classify the bootloader's
	// mass-storage interface, so the matcher falls back to this list.
	OtherDevices() ([]DeviceIdentity, error)
}

// ChannelOpener resolves a matched identity to a raw transport channel.
// Called after the permission grant; the identity found pre-permission may
// need re-enumeration on some platforms before this succeeds.
type ChannelOpener interface {
	Open(dev DeviceIdentity) (blockdev.Channel, error)
}

// Flasher orchestrates the end-to-end flashing sequence:
// discover -> authorize -> open -> validate -> write -> close.
//
// A Flasher supports one flashing operation at a time; concurrent
// FlashFirmware calls on the same instance are a usage error.
type Flasher struct {
	enum   Enumerator
	broker *Broker
	opener ChannelOpener
	config Config
}

// New creates a Flasher over the three host capabilities.
//
// Example:
//
//	lister := usbenum.New()
//	f := bootsel.New(lister, host, opener,
//	    bootsel.WithProgressCallback(progressFunc),
//	)
func New(enum Enumerator, host PermissionHost, opener ChannelOpener, opts ...Option) *Flasher {
	if enum == nil {
		panic("enumerator cannot be nil")
	}
	if opener == nil {
		panic("channel opener cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Flasher{
		enum:   enum,
		broker: NewBroker(host),
		opener: opener,
		config: cfg,
	}
}

// FindTargetDevice returns the first enumerated device matching a known
// bootloader signature, or nil if none is connected.
func (f *Flasher) FindTargetDevice() (*DeviceIdentity, error) {
	massStorage, err := f.enum.MassStorageDevices()
	if err != nil {
		return nil, fmt.Errorf("enumerate mass storage devices: %w", err)
	}

	others, err := f.enum.OtherDevices()
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}

	return MatchTarget(massStorage, others), nil
}

// RequestPermission runs the permission handshake for the device. It is the
// same handshake FlashFirmware performs; exposed for callers that want to
// pre-authorize.
func (f *Flasher) RequestPermission(ctx context.Context, dev DeviceIdentity) (bool, error) {
	return f.broker.Ask(ctx, dev)
}

// FlashFirmware writes the UF2 image to the first matching bootloader device
// and returns exactly one FlashResult. Errors never escape as panics or bare
// returns; every failure is mapped into the result.
//
// Cancellation via ctx is honored only while waiting for the permission
// grant. Once the write loop has started the operation runs to completion or
// hard failure: the bootloader's block scan on a half-written image is
// unspecified, so stopping midway is no safer than pressing on.
//
// Only block 0's framing is validated by default (see WithValidateAllBlocks).
func (f *Flasher) FlashFirmware(ctx context.Context, image []byte, name string) FlashResult {
	startTime := time.Now()
	totalBlocks := uf2.NumBlocks(image)

	// Phase 1: Discover
	f.reportProgress(Progress{
		Phase:       PhaseDiscovering,
		TotalBlocks: totalBlocks,
	})

	dev, err := f.FindTargetDevice()
	if err != nil {
		return errorResult(fmt.Errorf("discover device: %w", err))
	}
	if dev == nil {
		f.logInfo("no bootloader device found", "firmware", name)
		return FlashResult{Status: StatusNoDeviceFound}
	}

	f.logDebug("matched device",
		"vendor_id", fmt.Sprintf("0x%04X", dev.VendorID),
		"product_id", fmt.Sprintf("0x%04X", dev.ProductID),
		"name", dev.Name,
	)

	// Phase 2: Authorize
	f.reportProgress(Progress{
		Phase:       PhaseAuthorizing,
		Percentage:  2,
		TotalBlocks: totalBlocks,
	})

	granted, err := f.broker.Ask(ctx, *dev)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			f.logInfo("permission handshake cancelled", "device", dev.String())
			return FlashResult{Status: StatusPermissionDenied}
		}
		return errorResult(err)
	}
	if !granted {
		f.logInfo("permission denied", "device", dev.String())
		return FlashResult{Status: StatusPermissionDenied}
	}

	// Phase 3: Open
	f.reportProgress(Progress{
		Phase:       PhaseOpening,
		Percentage:  5,
		TotalBlocks: totalBlocks,
	})

	ch, err := f.openChannel(*dev)
	if err != nil {
		return errorResult(&DeviceNotRecognizedError{Device: *dev, Err: err})
	}

	device := blockdev.New(ch)
	result := f.program(device, image, name, startTime)

	// Unconditional cleanup. A close failure is logged and discarded so it
	// never overrides the verdict captured above.
	if err := device.Close(); err != nil {
		f.logError("close device", "firmware", name, "error", err.Error())
	}

	if result.Ok() {
		f.reportProgress(Progress{
			Phase:        PhaseComplete,
			CurrentBlock: totalBlocks,
			TotalBlocks:  totalBlocks,
			Percentage:   100,
			BytesWritten: len(image),
			ElapsedTime:  time.Since(startTime),
		})
	}
	return result
}

// openChannel re-resolves the identity to a transport, retrying briefly:
// after the grant some platforms tear the device down and re-enumerate it.
func (f *Flasher) openChannel(dev DeviceIdentity) (blockdev.Channel, error) {
	var ch blockdev.Channel
	attempt := 0

	op := func() error {
		attempt++
		c, err := f.opener.Open(dev)
		if err != nil {
			f.logDebug("open attempt failed",
				"attempt", attempt,
				"error", err.Error(),
			)
			return err
		}
		ch = c
		return nil
	}

	policy := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(f.config.ReopenInterval),
		f.config.ReopenRetries,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return ch, nil
}

// program runs init, validation and the write loop against an open device.
// The caller owns closing the device.
func (f *Flasher) program(device *blockdev.Device, image []byte, name string, startTime time.Time) FlashResult {
	if err := device.Init(); err != nil {
		return errorResult(fmt.Errorf("init device: %w", err))
	}

	totalBlocks := uf2.NumBlocks(image)

	// Phase 4: Validate. Must reject before any write reaches the device.
	f.reportProgress(Progress{
		Phase:       PhaseValidating,
		Percentage:  8,
		TotalBlocks: totalBlocks,
	})

	validate := uf2.ValidateImage
	if f.config.ValidateAllBlocks {
		validate = uf2.ValidateAllBlocks
	}
	if err := validate(image); err != nil {
		return errorResult(err)
	}

	// Phase 5: Write every block in ascending order. Strictly sequential:
	// block i+1 is not issued before block i's write returns. No per-block
	// retry; the first failure aborts the loop.
	bytesWritten := 0
	for i := 0; i < totalBlocks; i++ {
		block := uf2.Block(image, i)
		index := uint32(TargetStartBlock + i)

		if err := device.WriteBlock(index, block); err != nil {
			return errorResult(&WriteError{Block: index, Err: err})
		}
		bytesWritten += len(block)

		// Report progress (10% to 98%)
		percentage := 10 + (float64(i+1)/float64(totalBlocks))*88
		f.reportProgress(Progress{
			Phase:        PhaseWriting,
			CurrentBlock: i + 1,
			TotalBlocks:  totalBlocks,
			Percentage:   percentage,
			BytesWritten: bytesWritten,
			ElapsedTime:  time.Since(startTime),
		})
	}

	f.logInfo("flash complete",
		"firmware", name,
		"blocks", totalBlocks,
		"bytes", bytesWritten,
		"elapsed", time.Since(startTime).String(),
	)

	return FlashResult{Status: StatusSuccess}
}

// reportProgress calls the progress callback if configured.
func (f *Flasher) reportProgress(progress Progress) {
	if f.config.ProgressCallback != nil {
		f.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (f *Flasher) logDebug(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (f *Flasher) logInfo(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (f *Flasher) logError(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Error(msg, keysAndValues...)
	}
}
