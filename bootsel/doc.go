// Package bootsel orchestrates flashing UF2 firmware onto microcontrollers
// that expose a USB mass-storage bootloader (BOOTSEL mode).
//
// # Overview
//
// The host filesystem stack cannot reliably write the tiny virtual FAT volume
// the bootloader presents, so this package bypasses it entirely: it locates
// the device by USB identity, obtains raw-I/O authorization from the host,
// validates the image's UF2 framing, and writes raw 512-byte blocks straight
// to the block device at a fixed offset past the virtual filesystem's
// reserved region. The bootloader's own block scan recognizes the UF2 framing
// and commits the blocks to flash.
//
// The sequence is: discover -> authorize -> open -> validate -> write -> close.
//
// # Basic Usage
//
//	lister := usbenum.New()
//	defer lister.Close()
//
//	f := bootsel.New(lister, host, opener)
//
//	image, err := os.ReadFile("firmware.uf2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := f.FlashFirmware(context.Background(), image, "firmware.uf2")
//	if !result.Ok() {
//	    log.Fatalf("flash failed: %s", result)
//	}
//
// # Capabilities
//
// The flasher consumes three host capabilities and nothing else:
//
//   - Enumerator: lists USB devices (mass-storage classified plus a fallback
//     list, since some platforms misclassify the bootloader interface)
//   - PermissionHost: the asynchronous raw-I/O authorization handshake
//   - ChannelOpener: resolves a matched identity to a blockdev.Channel
//
// Each is a small interface, so the package works against libusb, raw device
// nodes, or in-memory doubles for testing.
//
// # Results
//
// FlashFirmware never panics and never returns a bare error: every outcome
// is one of four FlashResult variants (success, error, no device found,
// permission denied). Once writing begins there is no partial-success
// reporting and no rollback; a failed flash is restarted from validation.
//
// # Progress Tracking
//
//	f := bootsel.New(lister, host, opener,
//	    bootsel.WithProgressCallback(func(p bootsel.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Block %d/%d\n",
//	            p.Phase, p.Percentage, p.CurrentBlock, p.TotalBlocks)
//	    }),
//	)
//
// # Concurrency
//
// Run FlashFirmware on a dedicated goroutine, off any latency-sensitive
// loop: USB transfers and the permission handshake block on OS round-trips.
// One flashing operation is supported at a time per Flasher; the package
// provides no internal mutual exclusion across concurrent callers.
// Cancellation via context is honored only while waiting for the permission
// grant; a started write loop always runs to completion or hard failure.
package bootsel
