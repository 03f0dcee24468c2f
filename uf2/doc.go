// Package uf2 implements parsing and validation of the UF2 firmware block
// format used by mass-storage bootloaders such as the RP2040's BOOTSEL mode.
//
// # Format Overview
//
// A UF2 image is an ordered sequence of fixed-size 512-byte blocks. Each block
// is self-describing and independently recognizable by the bootloader:
//
//	Offset  Size  Field
//	0       4     MagicStart0 (0x0A324655, "UF2\n")
//	4       4     MagicStart1 (0x9E5D5157)
//	8       4     Flags
//	12      4     TargetAddr
//	16      4     PayloadSize
//	20      4     BlockNo
//	24      4     NumBlocks
//	28      4     FileSizeOrFamilyID
//	32      476   Data (payload, zero padded)
//	508     4     MagicEnd (0x0AB16F30)
//
// All header words are 32-bit little-endian.
//
// # Validation
//
// The bootloader identifies a block solely by the three magic words, so that
// is what this package gates on:
//
//	if err := uf2.ValidateImage(image); err != nil {
//	    // not a flashable UF2 image
//	}
//
// ValidateImage checks the image length and the first block's magics. Use
// ValidateAllBlocks when every block must carry valid framing before any
// write is issued.
//
// All functions in this package are pure: no I/O, no allocation beyond the
// returned header values.
package uf2
