package uf2

// ValidateImage checks the framing rules a flashable image must satisfy
// before any write is issued:
//
//   - the image length is an exact multiple of BlockSize
//   - block 0 carries the three magic words at their fixed offsets
//
// Only block 0 is checked; the start/end sentinels are what the bootloader's
// block scan keys on and a valid first block is the fast-fail gate. Use
// ValidateAllBlocks when every block must be vetted up front.
func ValidateImage(image []byte) error {
	if len(image) == 0 || len(image)%BlockSize != 0 {
		return &FormatError{
			Reason: "size not multiple of 512",
			Block:  -1,
		}
	}

	if !IsValidBlock(image, 0) {
		return &FormatError{
			Reason: "bad magic numbers",
			Block:  0,
		}
	}

	return nil
}

// ValidateAllBlocks applies the magic-word check to every block of the image.
// It reports the first offending block. The length rule of ValidateImage is
// enforced as well.
func ValidateAllBlocks(image []byte) error {
	if err := ValidateImage(image); err != nil {
		return err
	}

	for i := 1; i < NumBlocks(image); i++ {
		if !IsValidBlock(image, i) {
			return &FormatError{
				Reason: "bad magic numbers",
				Block:  i,
			}
		}
	}

	return nil
}
