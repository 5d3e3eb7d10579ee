package ot

import (
	"errors"
	"testing"

	"github.com/npillmayer/fontvalid/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDirectoryShortBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for n := 0; n < OffsetTableSize; n++ {
		_, err := ParseDirectory(make([]byte, n))
		if !errors.Is(err, ErrMalformedBuffer) {
			t.Errorf("expected buffer of %d bytes to be malformed, got %v", n, err)
		}
	}
}

func TestDirectoryTruncatedRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := fonttest.Minimal("Test-Regular", 0)
	_, err := ParseDirectory(font[:OffsetTableSize+2*TableRecordSize])
	if !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("expected truncated table records to be malformed, got %v", err)
	}
}

func TestDirectoryEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := fonttest.Build(
		fonttest.Table{Tag: "OS/2", Data: fonttest.OS2(0)},
		fonttest.Table{Tag: "glyf", Data: []byte{1, 2, 3}},
		fonttest.Table{Tag: "head", Data: fonttest.Head(HeadMagicNumber)},
	)
	dir, err := ParseDirectory(font)
	if err != nil {
		t.Fatal(err)
	}
	if dir.NumTables != 3 || dir.Size() != 12+3*16 {
		t.Errorf("expected 3 tables and directory size 60, have %d and %d", dir.NumTables, dir.Size())
	}
	if dir.SFNTVersion != 0x00010000 {
		t.Errorf("expected TrueType SFNT version, have %x", dir.SFNTVersion)
	}
	tags := dir.Tags()
	if len(tags) != 3 || tags[0] != TagOS2 || tags[1] != T("glyf") || tags[2] != TagHead {
		t.Errorf("expected tags in file order [OS/2 glyf head], have %v", tags)
	}
	e, ok := dir.Entry(T("glyf"))
	if !ok || e.Length != 3 {
		t.Fatalf("expected unknown table glyf to be retained with length 3, have %v", e)
	}
	b, err := dir.TableBytes(font, T("glyf"))
	if err != nil || len(b) != 3 || b[0] != 1 || b[2] != 3 {
		t.Errorf("expected glyf bytes [1 2 3], have %v (%v)", b, err)
	}
	if _, ok := dir.Entry(TagName); ok {
		t.Errorf("did not expect an entry for table name")
	}
	_, err = dir.TableBytes(font, TagName)
	var missing *MissingTableError
	if !errors.As(err, &missing) || missing.Tag != TagName {
		t.Errorf("expected MissingTableError for name, got %v", err)
	}
}

func TestDirectoryInvalidOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, tag := range []string{"head", "name", "OS/2"} {
		font := fonttest.Minimal("Test-Regular", 0)
		i := fonttest.RecordIndex(font, tag)
		dirSize := OffsetTableSize + 3*TableRecordSize
		fonttest.SetRecordOffset(font, i, uint32(dirSize-1))
		_, err := ParseDirectory(font)
		var invalid *InvalidOffsetError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidOffsetError for table %s, got %v", tag, err)
			continue
		}
		if invalid.Tag != T(tag) || invalid.DirectorySize != dirSize {
			t.Errorf("expected offset error for %s/%d, have %s/%d", tag, dirSize, invalid.Tag, invalid.DirectorySize)
		}
	}
}

func TestDirectoryOffsetOfUnknownTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := fonttest.Build(
		fonttest.Table{Tag: "DSIG", Data: make([]byte, 8)},
		fonttest.Table{Tag: "head", Data: fonttest.Head(HeadMagicNumber)},
	)
	fonttest.SetRecordOffset(font, 0, 0) // points to offset table
	if _, err := ParseDirectory(font); err != nil {
		t.Errorf("expected overlapping offset of unknown table to be tolerated, got %v", err)
	}
}

func TestDirectoryTableBeyondEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := fonttest.Minimal("Test-Regular", 0)
	i := fonttest.RecordIndex(font, "name")
	fonttest.SetRecordLength(font, i, uint32(len(font)))
	_, err := ParseDirectory(font)
	if !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("expected table beyond end of font to be malformed, got %v", err)
	}
	// offset + length must not wrap around
	fonttest.SetRecordLength(font, i, 0xFFFFFFFF)
	_, err = ParseDirectory(font)
	if !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("expected overflowing table length to be malformed, got %v", err)
	}
}

func TestDirectoryDuplicateTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := fonttest.Build(
		fonttest.Table{Tag: "OS/2", Data: fonttest.OS2(0x0002)},
		fonttest.Table{Tag: "OS/2", Data: fonttest.OS2(0x0008)},
	)
	dir, err := ParseDirectory(font)
	if err != nil {
		t.Fatal(err)
	}
	if len(dir.Tags()) != 1 {
		t.Errorf("expected duplicate tags to be collapsed, have %v", dir.Tags())
	}
	b, _ := dir.TableBytes(font, TagOS2)
	info, err := DecodeOS2(b)
	if err != nil || info.FsType != 0x0008 {
		t.Errorf("expected last table record to win, have fsType %x (%v)", info.FsType, err)
	}
}

func TestDirectoryNoTables(t *testing.T) {
	font := fonttest.Build()
	dir, err := ParseDirectory(font)
	if err != nil {
		t.Fatal(err)
	}
	if dir.NumTables != 0 || len(dir.Tags()) != 0 {
		t.Errorf("expected empty directory, have %d tables", dir.NumTables)
	}
}

func TestChecksums(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	if c := Checksum([]byte{0, 0, 0, 1, 0, 0, 0, 2, 1}); c != 0x01000003 {
		t.Errorf("expected checksum 0x01000003, is 0x%08x", c)
	}
	font := fonttest.Minimal("Test-Regular", 0)
	dir, err := ParseDirectory(font)
	if err != nil {
		t.Fatal(err)
	}
	for _, tag := range RequiredTables {
		if err := dir.VerifyChecksum(font, tag); err != nil {
			t.Errorf("expected checksum of %s to be correct, got %v", tag, err)
		}
	}
	// checkSumAdjustment of 'head' does not count
	headOffset := fonttest.TableOffset(font, fonttest.RecordIndex(font, "head"))
	font[headOffset+8] = 0x7F
	if err := dir.VerifyChecksum(font, TagHead); err != nil {
		t.Errorf("expected checkSumAdjustment to be ignored, got %v", err)
	}
	nameOffset := fonttest.TableOffset(font, fonttest.RecordIndex(font, "name"))
	font[nameOffset+6] ^= 0x01
	var cerr *ChecksumError
	if err := dir.VerifyChecksum(font, TagName); !errors.As(err, &cerr) {
		t.Errorf("expected ChecksumError for modified name table, got %v", err)
	}
}
