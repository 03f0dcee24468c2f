package uf2

// BlockSize is the size of every UF2 block in bytes. It is also the atomic
// write unit: the bootloader only commits whole, well-formed blocks.
const BlockSize = 512

// Magic words identifying the UF2 format.
const (
	// MagicStart0 is the first magic word at byte offset 0 ("UF2\n" in ASCII)
	MagicStart0 = 0x0A324655

	// MagicStart1 is the second magic word at byte offset 4
	MagicStart1 = 0x9E5D5157

	// MagicEnd is the closing magic word at byte offset 508
	MagicEnd = 0x0AB16F30
)

// Header field byte offsets within a block. All fields are 32-bit words,
// little-endian.
const (
	// OffsetMagicStart0 is the offset of the first magic word
	OffsetMagicStart0 = 0

	// OffsetMagicStart1 is the offset of the second magic word
	OffsetMagicStart1 = 4

	// OffsetFlags is the offset of the flag word
	OffsetFlags = 8

	// OffsetTargetAddr is the offset of the flash target address
	OffsetTargetAddr = 12

	// OffsetPayloadSize is the offset of the payload byte count
	OffsetPayloadSize = 16

	// OffsetBlockNo is the offset of the block's sequence number
	OffsetBlockNo = 20

	// OffsetNumBlocks is the offset of the total block count
	OffsetNumBlocks = 24

	// OffsetFileSize is the offset of the file size or family ID word,
	// depending on FlagFamilyIDPresent
	OffsetFileSize = 28

	// OffsetData is the offset of the payload area
	OffsetData = 32

	// OffsetMagicEnd is the offset of the closing magic word
	OffsetMagicEnd = 508
)

// HeaderSize is the size of the block header (everything before the payload).
const HeaderSize = 32

// MaxPayloadSize is the maximum payload per block (476 bytes). Bootloaders
// typically use 256 and zero-pad the rest.
const MaxPayloadSize = OffsetMagicEnd - OffsetData

// Flag bits for the header Flags word.
const (
	// FlagNotMainFlash marks a block that should be skipped when writing
	// main flash
	FlagNotMainFlash = 0x00000001

	// FlagFileContainer marks a block carrying file data rather than
	// flash contents
	FlagFileContainer = 0x00001000

	// FlagFamilyIDPresent indicates the FileSizeOrFamilyID word holds a
	// board family ID
	FlagFamilyIDPresent = 0x00002000

	// FlagMD5Present indicates the payload is followed by an MD5 checksum
	FlagMD5Present = 0x00004000

	// FlagExtensionsPresent indicates extension tags follow the payload
	FlagExtensionsPresent = 0x00008000
)

// FamilyRP2040 is the UF2 family ID for RP2040-class devices.
const FamilyRP2040 = 0xE48BFF56
