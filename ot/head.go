package ot

// --- Head table ------------------------------------------------------------

// HeadMagicNumber is the value of field magicNumber in every valid 'head' table.
const HeadMagicNumber = 0x5F0F3CF5

// OpenType requires 54 bytes for table 'head'; we read the first 16 only and
// do not insist on the remainder.
const headMinSize = 16

// HeadInfo holds the fields of table 'head' this package looks at.
type HeadInfo struct {
	MajorVersion uint16
	MinorVersion uint16
	FontRevision uint32 // fixed 16.16
	MagicNumber  uint32
}

// Tag returns 'head'.
func (HeadInfo) Tag() Tag { return TagHead }

// DecodeHead decodes the start of table 'head' and checks its magic number.
func DecodeHead(b []byte) (HeadInfo, error) {
	var h HeadInfo
	magic, err := binarySegm(b).u32(12)
	if err != nil {
		return h, malformed(TagHead, "table too small: %d bytes (need %d)", len(b), headMinSize)
	}
	h.MajorVersion = u16(b[0:2])
	h.MinorVersion = u16(b[2:4])
	h.FontRevision = u32(b[4:8])
	h.MagicNumber = magic
	if h.MagicNumber != HeadMagicNumber {
		return h, &UnsupportedFormatError{Table: TagHead, Value: h.MagicNumber}
	}
	tracer().Debugf("head table version %d.%d", h.MajorVersion, h.MinorVersion)
	return h, nil
}
