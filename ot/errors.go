package ot

import (
	"errors"
	"fmt"
)

// ErrMalformedBuffer is returned whenever a read would leave the bounds of the
// font's binary data, e.g. for truncated files or out-of-range offsets.
var ErrMalformedBuffer = errors.New("OpenType font format: malformed buffer")

// ErrNoPostScriptName is returned if the 'name' table does not contain a
// PostScript name record in one of the supported platform encodings.
var ErrNoPostScriptName = errors.New("OpenType font format: no PostScript name found")

// MissingTableError reports that a required table is absent from the table directory.
type MissingTableError struct {
	Tag Tag
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("OpenType font format: missing required table %s", e.Tag)
}

// InvalidOffsetError reports a table record whose offset points into the
// table directory itself. This does not happen for well-formed fonts and
// usually signals corrupted or fuzzed input.
type InvalidOffsetError struct {
	Tag           Tag
	Offset        uint32 // offset as found in the table record
	DirectorySize int    // size of offset table plus table records, in bytes
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("OpenType font format: table %s: offset %d overlaps table directory (size %d)",
		e.Tag, e.Offset, e.DirectorySize)
}

// UnsupportedFormatError reports an unexpected value in a table field which
// determines the format of the table, e.g. a wrong magic number in 'head'.
type UnsupportedFormatError struct {
	Table Tag
	Value uint32
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("OpenType font format: table %s: unsupported format 0x%x", e.Table, e.Value)
}

// malformed wraps ErrMalformedBuffer with details about where it happened.
func malformed(tag Tag, format string, args ...any) error {
	return fmt.Errorf("%w: table %s: %s", ErrMalformedBuffer, tag, fmt.Sprintf(format, args...))
}
