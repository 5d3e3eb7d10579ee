package ot

import "fmt"

// ChecksumError reports a table whose contents do not match the checksum
// stored in its table record.
type ChecksumError struct {
	Tag        Tag
	Want, Have uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("OpenType font format: table %s: checksum is 0x%08x, table record says 0x%08x",
		e.Tag, e.Have, e.Want)
}

// Checksum calculates the table checksum of b as defined by OpenType: the sum
// of big-endian uint32 words, with the last word padded with zero bytes.
func Checksum(b []byte) uint32 {
	var sum uint32
	for len(b) >= 4 {
		sum += u32(b)
		b = b[4:]
	}
	if len(b) > 0 {
		var pad [4]byte
		copy(pad[:], b)
		sum += u32(pad[:])
	}
	return sum
}

// VerifyChecksum compares the checksum of table tag in font against the value
// of its table record. For table 'head' the checkSumAdjustment field is
// treated as zero, as required by OpenType.
//
// ParseDirectory never verifies checksums; fonts in the wild frequently carry
// stale ones.
func (dir *Directory) VerifyChecksum(font []byte, tag Tag) error {
	b, err := dir.TableBytes(font, tag)
	if err != nil {
		return err
	}
	have := Checksum(b)
	if tag == TagHead && len(b) >= 12 {
		have -= u32(b[8:12])
	}
	if want := dir.entries[tag].Checksum; have != want {
		return &ChecksumError{Tag: tag, Want: want, Have: have}
	}
	return nil
}
