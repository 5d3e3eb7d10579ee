/*
Package fonttest builds synthetic SFNT fonts for tests.

Fonts built here contain just enough structure to exercise table directory
parsing and the decoders of package ot: no glyphs, no cmap, no metrics.
*/
package fonttest

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Table is a table to put into a synthetic font.
type Table struct {
	Tag  string
	Data []byte
}

// Build assembles an SFNT font from tables. Table records appear in the
// order given; table bodies are 4-byte aligned and checksums are correct.
func Build(tables ...Table) []byte {
	n := len(tables)
	dirSize := 12 + 16*n
	font := make([]byte, dirSize)
	binary.BigEndian.PutUint32(font[0:], 0x00010000)
	binary.BigEndian.PutUint16(font[4:], uint16(n))
	searchRange, entrySelector := 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	binary.BigEndian.PutUint16(font[6:], uint16(searchRange*16))
	binary.BigEndian.PutUint16(font[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(font[10:], uint16(n*16-searchRange*16))
	for i, t := range tables {
		rec := font[12+16*i:]
		copy(rec[0:4], (t.Tag + "    ")[:4])
		binary.BigEndian.PutUint32(rec[4:], checksum(t.Data))
		binary.BigEndian.PutUint32(rec[8:], uint32(len(font)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t.Data)))
		font = append(font, t.Data...)
		for len(font)%4 != 0 {
			font = append(font, 0)
		}
	}
	return font
}

func checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		var w [4]byte
		copy(w[:], b[i:])
		sum += binary.BigEndian.Uint32(w[:])
	}
	return sum
}

// Head returns a 54-byte 'head' table with the given magic number.
func Head(magic uint32) []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint16(b[0:], 1)         // majorVersion
	binary.BigEndian.PutUint32(b[4:], 0x00010000) // fontRevision
	binary.BigEndian.PutUint32(b[12:], magic)
	binary.BigEndian.PutUint16(b[18:], 1000) // unitsPerEm
	return b
}

// OS2 returns a version 0 'OS/2' table (78 bytes) with the given fsType.
func OS2(fsType uint16) []byte {
	b := make([]byte, 78)
	binary.BigEndian.PutUint16(b[4:], 400) // usWeightClass
	binary.BigEndian.PutUint16(b[6:], 5)   // usWidthClass
	binary.BigEndian.PutUint16(b[8:], fsType)
	return b
}

// NameRecord is a record of a synthetic 'name' table, with its string
// already encoded.
type NameRecord struct {
	Platform, Encoding, Language, NameID uint16
	Value                                []byte
}

// MacName returns a Macintosh Roman, English record.
func MacName(nameID uint16, s string) NameRecord {
	v, err := charmap.Macintosh.NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return NameRecord{Platform: 1, Encoding: 0, Language: 0, NameID: nameID, Value: v}
}

// WinName returns a Windows Unicode BMP, US English record.
func WinName(nameID uint16, s string) NameRecord {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	v, err := enc.Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return NameRecord{Platform: 3, Encoding: 1, Language: 0x0409, NameID: nameID, Value: v}
}

// Name returns a format 0 'name' table with the records in the order given.
func Name(recs ...NameRecord) []byte {
	storage := 6 + 12*len(recs)
	b := make([]byte, storage)
	binary.BigEndian.PutUint16(b[2:], uint16(len(recs)))
	binary.BigEndian.PutUint16(b[4:], uint16(storage))
	var strings []byte
	for i, r := range recs {
		rec := b[6+12*i:]
		binary.BigEndian.PutUint16(rec[0:], r.Platform)
		binary.BigEndian.PutUint16(rec[2:], r.Encoding)
		binary.BigEndian.PutUint16(rec[4:], r.Language)
		binary.BigEndian.PutUint16(rec[6:], r.NameID)
		binary.BigEndian.PutUint16(rec[8:], uint16(len(r.Value)))
		binary.BigEndian.PutUint16(rec[10:], uint16(len(strings)))
		strings = append(strings, r.Value...)
	}
	return append(b, strings...)
}

// MagicNumber is the magic number of table 'head'.
const MagicNumber = 0x5F0F3CF5

// Minimal returns a valid font with a single Macintosh PostScript name record.
func Minimal(psName string, fsType uint16) []byte {
	return Build(
		Table{"OS/2", OS2(fsType)},
		Table{"head", Head(MagicNumber)},
		Table{"name", Name(MacName(6, psName))},
	)
}

// RecordIndex returns the index of the table record for tag in font, or -1.
func RecordIndex(font []byte, tag string) int {
	n := int(binary.BigEndian.Uint16(font[4:]))
	for i := 0; i < n; i++ {
		if string(font[12+16*i:16+16*i]) == tag {
			return i
		}
	}
	return -1
}

// SetRecordOffset patches the offset field of table record i.
func SetRecordOffset(font []byte, i int, offset uint32) {
	binary.BigEndian.PutUint32(font[12+16*i+8:], offset)
}

// SetRecordLength patches the length field of table record i.
func SetRecordLength(font []byte, i int, length uint32) {
	binary.BigEndian.PutUint32(font[12+16*i+12:], length)
}

// TableOffset returns the offset of the body of table record i.
func TableOffset(font []byte, i int) uint32 {
	return binary.BigEndian.Uint32(font[12+16*i+8:])
}
