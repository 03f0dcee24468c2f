package uf2

import "encoding/binary"

// Header holds the decoded 32-byte block header plus the closing magic word.
type Header struct {
	// MagicStart0 is the first magic word (expected MagicStart0)
	MagicStart0 uint32

	// MagicStart1 is the second magic word (expected MagicStart1)
	MagicStart1 uint32

	// Flags is the flag word, see the Flag* constants
	Flags uint32

	// TargetAddr is the flash address the payload is destined for
	TargetAddr uint32

	// PayloadSize is the number of payload bytes actually used
	PayloadSize uint32

	// BlockNo is this block's sequence number within the image
	BlockNo uint32

	// NumBlocks is the total number of blocks in the image
	NumBlocks uint32

	// FileSizeOrFamilyID is the file size, or the board family ID when
	// FlagFamilyIDPresent is set
	FileSizeOrFamilyID uint32

	// MagicEnd is the closing magic word (expected MagicEnd)
	MagicEnd uint32
}

// ParseHeader decodes the header of a single block. The input must be exactly
// BlockSize bytes.
//
// ParseHeader does not validate the magic words; use Valid on the result or
// IsValidBlock on the whole image.
func ParseHeader(block []byte) (*Header, error) {
	if len(block) != BlockSize {
		return nil, &FormatError{
			Reason: "block must be exactly 512 bytes",
			Block:  -1,
		}
	}

	le := binary.LittleEndian
	return &Header{
		MagicStart0:        le.Uint32(block[OffsetMagicStart0:]),
		MagicStart1:        le.Uint32(block[OffsetMagicStart1:]),
		Flags:              le.Uint32(block[OffsetFlags:]),
		TargetAddr:         le.Uint32(block[OffsetTargetAddr:]),
		PayloadSize:        le.Uint32(block[OffsetPayloadSize:]),
		BlockNo:            le.Uint32(block[OffsetBlockNo:]),
		NumBlocks:          le.Uint32(block[OffsetNumBlocks:]),
		FileSizeOrFamilyID: le.Uint32(block[OffsetFileSize:]),
		MagicEnd:           le.Uint32(block[OffsetMagicEnd:]),
	}, nil
}

// Valid reports whether all three magic words carry their expected values.
func (h *Header) Valid() bool {
	return h.MagicStart0 == MagicStart0 &&
		h.MagicStart1 == MagicStart1 &&
		h.MagicEnd == MagicEnd
}

// FamilyID returns the board family ID and true when the header carries one.
func (h *Header) FamilyID() (uint32, bool) {
	if h.Flags&FlagFamilyIDPresent == 0 {
		return 0, false
	}
	return h.FileSizeOrFamilyID, true
}

// IsValidBlock reports whether the addressed 512-byte block of image carries
// the three UF2 magic words at their fixed offsets. Returns false if the
// block's byte range exceeds the image bounds.
func IsValidBlock(image []byte, blockIndex int) bool {
	if blockIndex < 0 {
		return false
	}
	start := blockIndex * BlockSize
	end := start + BlockSize
	if start < 0 || end > len(image) {
		return false
	}

	le := binary.LittleEndian
	return le.Uint32(image[start+OffsetMagicStart0:]) == MagicStart0 &&
		le.Uint32(image[start+OffsetMagicStart1:]) == MagicStart1 &&
		le.Uint32(image[start+OffsetMagicEnd:]) == MagicEnd
}

// NumBlocks returns the number of whole blocks in image. The remainder, if
// any, is ignored; ValidateImage rejects images with a remainder.
func NumBlocks(image []byte) int {
	return len(image) / BlockSize
}

// Block returns the i-th 512-byte block of image as a subslice. It panics if
// the index is out of range, mirroring slice semantics.
func Block(image []byte, i int) []byte {
	return image[i*BlockSize : (i+1)*BlockSize]
}
