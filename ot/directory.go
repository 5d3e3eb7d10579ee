package ot

import (
	"fmt"
)

// Sizes of the structures at the start of an SFNT file.
// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes,
// followed by 16 bytes for each table record.
const (
	OffsetTableSize = 12
	TableRecordSize = 16
)

// DirectoryEntry is a table record of the table directory.
type DirectoryEntry struct {
	Tag      Tag
	Checksum uint32 // parsed, but not verified by ParseDirectory
	Offset   uint32 // from beginning of the font file
	Length   uint32 // in bytes
}

// Directory is the table directory of an SFNT font, i.e. the offset table and
// the table records. A Directory does not hold on to the font's bytes and is
// read-only after ParseDirectory returns.
type Directory struct {
	SFNTVersion uint32 // not validated
	NumTables   int
	entries     map[Tag]DirectoryEntry
	order       []Tag // tags in file order, without duplicates
}

// Size returns the number of bytes occupied by the offset table and table records.
func (dir *Directory) Size() int {
	return OffsetTableSize + TableRecordSize*dir.NumTables
}

// Entry returns the table record for tag, if present.
// For duplicate tags the last table record in file order wins.
func (dir *Directory) Entry(tag Tag) (DirectoryEntry, bool) {
	e, ok := dir.entries[tag]
	return e, ok
}

// Tags returns the tags of all tables of the font in file order. Duplicate tags
// are reported once, at the position of their first occurrence.
func (dir *Directory) Tags() []Tag {
	tags := make([]Tag, len(dir.order))
	copy(tags, dir.order)
	return tags
}

// TableBytes returns the bytes of table tag within font, which must be the
// buffer dir has been parsed from. The returned slice aliases font.
func (dir *Directory) TableBytes(font []byte, tag Tag) ([]byte, error) {
	e, ok := dir.entries[tag]
	if !ok {
		return nil, &MissingTableError{Tag: tag}
	}
	b, err := binarySegm(font).view(int(e.Offset), int(e.Length))
	if err != nil {
		return nil, malformed(tag, "bounds [%d:%d] exceed font size %d",
			e.Offset, uint64(e.Offset)+uint64(e.Length), len(font))
	}
	return b, nil
}

// ParseDirectory parses the offset table and the table records of an SFNT font.
//
// For tables this package decodes (see RequiredTables), the table offset must
// not point into the directory itself; this is reported as an InvalidOffsetError.
// For every table the table body must lie within font, otherwise
// ParseDirectory returns an error wrapping ErrMalformedBuffer. Tables with
// unknown tags are kept in the directory.
func ParseDirectory(font []byte) (*Directory, error) {
	src := binarySegm(font)
	if len(src) < OffsetTableSize {
		return nil, fmt.Errorf("%w: font has %d bytes, offset table needs %d",
			ErrMalformedBuffer, len(src), OffsetTableSize)
	}
	dir := &Directory{
		SFNTVersion: u32(src[0:4]),
		NumTables:   int(u16(src[4:6])),
	}
	tracer().Debugf("header: version = %x, %d tables", dir.SFNTVersion, dir.NumTables)
	// numTables is a uint16, so the directory size cannot overflow an int
	dirSize := dir.Size()
	records, err := src.view(OffsetTableSize, dirSize-OffsetTableSize)
	if err != nil {
		return nil, fmt.Errorf("%w: table directory needs %d bytes, font has %d",
			ErrMalformedBuffer, dirSize, len(src))
	}
	dir.entries = make(map[Tag]DirectoryEntry, dir.NumTables)
	dir.order = make([]Tag, 0, dir.NumTables)
	for _, rec := range viewArray(records, TableRecordSize) {
		e := DirectoryEntry{
			Tag:      MakeTag(rec[0:4]),
			Checksum: u32(rec[4:8]),
			Offset:   u32(rec[8:12]),
			Length:   u32(rec[12:16]),
		}
		if IsRequired(e.Tag) && int64(e.Offset) < int64(dirSize) {
			return nil, &InvalidOffsetError{Tag: e.Tag, Offset: e.Offset, DirectorySize: dirSize}
		}
		if end := uint64(e.Offset) + uint64(e.Length); end > uint64(len(src)) {
			return nil, malformed(e.Tag, "bounds [%d:%d] exceed font size %d", e.Offset, end, len(src))
		}
		if _, dup := dir.entries[e.Tag]; dup {
			tracer().Infof("font contains duplicate table record for %s, using last one", e.Tag)
		} else {
			dir.order = append(dir.order, e.Tag)
		}
		dir.entries[e.Tag] = e
		tracer().Debugf("table %s at offset %d, size %d", e.Tag, e.Offset, e.Length)
	}
	return dir, nil
}
