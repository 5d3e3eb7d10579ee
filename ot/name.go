package ot

import (
	"fmt"
	"iter"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// --- Name table ------------------------------------------------------------

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// PlatformID identifies the platform of a NameRecord.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

// EncodingID is a platform-specific encoding identifier.
type EncodingID uint16

const (
	EncodingIDMacintoshRoman EncodingID = 0
	EncodingIDWindowsBMP     EncodingID = 1
)

// Language IDs of the name records we accept.
const (
	LanguageIDMacintoshEnglish uint16 = 0
	LanguageIDWindowsEnUS      uint16 = 0x0409 // 1033
)

// NameRecord is a record of table 'name'. Offset is relative to the start of
// the string storage.
type NameRecord struct {
	PlatformID PlatformID
	EncodingID EncodingID
	LanguageID uint16
	NameID     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	Length     uint16
	Offset     uint16
}

// Locale returns the language of the record for the platform/language
// combinations this package decodes, and language.Und for all others.
func (rec NameRecord) Locale() language.Tag {
	switch {
	case rec.PlatformID == PlatformIDMacintosh && rec.LanguageID == LanguageIDMacintoshEnglish:
		return language.English
	case rec.PlatformID == PlatformIDWindows && rec.LanguageID == LanguageIDWindowsEnUS:
		return language.AmericanEnglish
	}
	return language.Und
}

// nameEncoding is the text encoding of a supported name record.
type nameEncoding int

const (
	nameEncodingNone nameEncoding = iota
	nameEncodingMacRoman
	nameEncodingUTF16BE
)

// encoding returns how to decode the string of rec. Only two
// platform/encoding/language triples are supported:
//
//	1 (Macintosh)  0 (Roman)  0 (English)     1 byte per character
//	3 (Windows)    1 (BMP)    1033 (en-US)    UTF-16BE
func (rec NameRecord) encoding() nameEncoding {
	switch {
	case rec.PlatformID == PlatformIDMacintosh && rec.EncodingID == EncodingIDMacintoshRoman &&
		rec.LanguageID == LanguageIDMacintoshEnglish:
		return nameEncodingMacRoman
	case rec.PlatformID == PlatformIDWindows && rec.EncodingID == EncodingIDWindowsBMP &&
		rec.LanguageID == LanguageIDWindowsEnUS:
		return nameEncodingUTF16BE
	}
	return nameEncodingNone
}

// NameInfo holds the result of decoding table 'name'.
type NameInfo struct {
	Format         uint16
	Count          int
	PostScriptName string
	Record         NameRecord // the record the PostScript name has been taken from
	RecordIndex    int        // position of Record in file order
}

// Tag returns 'name'.
func (NameInfo) Tag() Tag { return TagName }

// nameTable is a checked view of the header and the record array of table 'name'.
type nameTable struct {
	format  uint16
	records []binarySegm
	strbuf  binarySegm
}

func parseNameTable(b binarySegm) (nameTable, error) {
	var names nameTable
	if len(b) < nameHeaderSize {
		return names, malformed(TagName, "table too small: %d bytes (need %d)", len(b), nameHeaderSize)
	}
	names.format = u16(b[0:2])
	if names.format != 0 {
		return names, &UnsupportedFormatError{Table: TagName, Value: uint32(names.format)}
	}
	count := int(u16(b[2:4]))
	strOffset := int(u16(b[4:6]))
	recs, err := b.view(nameHeaderSize, count*nameRecordSize)
	if err != nil {
		return names, malformed(TagName, "%d name records exceed table size %d", count, len(b))
	}
	if strOffset > len(b) {
		return names, malformed(TagName, "string offset %d exceeds table size %d", strOffset, len(b))
	}
	names.strbuf = b[strOffset:]
	names.records = viewArray(recs, nameRecordSize)
	tracer().Debugf("name table has %d strings, starting at %d", count, strOffset)
	return names, nil
}

func makeNameRecord(b binarySegm) NameRecord {
	return NameRecord{
		PlatformID: PlatformID(u16(b[0:2])),
		EncodingID: EncodingID(u16(b[2:4])),
		LanguageID: u16(b[4:6]),
		NameID:     sfnt.NameID(u16(b[6:8])),
		Length:     u16(b[8:10]),
		Offset:     u16(b[10:12]),
	}
}

// NameRecords iterates over the records of table 'name' in file order,
// yielding the index of each record together with the record.
// If the table header is malformed, nothing is yielded.
func NameRecords(b []byte) iter.Seq2[int, NameRecord] {
	names, err := parseNameTable(b)
	return func(yield func(int, NameRecord) bool) {
		if err != nil {
			return
		}
		for i, rec := range names.records {
			if !yield(i, makeNameRecord(rec)) {
				return
			}
		}
	}
}

// DecodeName decodes table 'name' and extracts the PostScript name (name ID 6).
//
// Records are scanned in file order. The first record with name ID 6 in one
// of the supported encodings (see NameRecord.Locale) wins; all other records
// are skipped. If there is no such record, ErrNoPostScriptName is returned.
func DecodeName(b []byte) (NameInfo, error) {
	var info NameInfo
	names, err := parseNameTable(b)
	if err != nil {
		return info, err
	}
	info.Format = names.format
	info.Count = len(names.records)
	for i, r := range names.records {
		rec := makeNameRecord(r)
		if rec.NameID != sfnt.NameIDPostScript {
			continue
		}
		enc := rec.encoding()
		if enc == nameEncodingNone {
			continue
		}
		str, err := names.strbuf.view(int(rec.Offset), int(rec.Length))
		if err != nil {
			return info, malformed(TagName, "string of record %d [%d:%d] exceeds string storage size %d",
				i, rec.Offset, int(rec.Offset)+int(rec.Length), len(names.strbuf))
		}
		s, err := decodeNameString(str, enc)
		if err != nil {
			return info, err
		}
		info.PostScriptName, info.Record, info.RecordIndex = s, rec, i
		tracer().Debugf("PostScript name is '%s' (record %d, platform %d)", s, i, rec.PlatformID)
		return info, nil
	}
	return info, ErrNoPostScriptName
}

func decodeNameString(str []byte, enc nameEncoding) (string, error) {
	switch enc {
	case nameEncodingMacRoman:
		s, err := charmap.Macintosh.NewDecoder().Bytes(str)
		if err != nil {
			return "", fmt.Errorf("decoding Macintosh Roman error: %w", err)
		}
		return string(s), nil
	case nameEncodingUTF16BE:
		utf16 := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		s, err := utf16.NewDecoder().Bytes(str)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 error: %w", err)
		}
		return string(s), nil
	}
	return "", fmt.Errorf("name record encoding %d not supported", enc)
}
