package ot

// --- OS/2 table ------------------------------------------------------------

const (
	os2FsTypeOffset = 8
	os2MinSize      = os2FsTypeOffset + 2
)

// Embedding licensing bits of OS/2.fsType, see
// https://learn.microsoft.com/en-us/typography/opentype/spec/os2#fstype
const (
	FsTypeInstallable  uint16 = 0x0000
	FsTypeRestricted   uint16 = 0x0002
	FsTypePreviewPrint uint16 = 0x0004
	FsTypeEditable     uint16 = 0x0008
	FsTypeNoSubsetting uint16 = 0x0100
	FsTypeBitmapOnly   uint16 = 0x0200

	fsTypeUsageMask uint16 = 0x000F
)

// Permission is the usage permission encoded in the low nibble of fsType.
type Permission int

const (
	PermissionInstallable Permission = iota
	PermissionRestricted
	PermissionPreviewPrint
	PermissionEditable
	PermissionUnknown // combination of bits, or reserved bits set
)

func (p Permission) String() string {
	switch p {
	case PermissionInstallable:
		return "installable"
	case PermissionRestricted:
		return "restricted"
	case PermissionPreviewPrint:
		return "preview&print"
	case PermissionEditable:
		return "editable"
	}
	return "unknown"
}

// OS2Info holds the fields of table 'OS/2' this package looks at.
type OS2Info struct {
	Version uint16
	FsType  uint16
	// EmbeddingAllowed is false only for "Restricted License embedding",
	// i.e. a low nibble of exactly 2.
	EmbeddingAllowed bool
}

// Tag returns 'OS/2'.
func (OS2Info) Tag() Tag { return TagOS2 }

// Permission classifies the usage permission bits of fsType.
// Older versions of OpenType allowed more than one bit to be set; these are
// reported as PermissionUnknown.
func (info OS2Info) Permission() Permission {
	switch info.FsType & fsTypeUsageMask {
	case FsTypeInstallable:
		return PermissionInstallable
	case FsTypeRestricted:
		return PermissionRestricted
	case FsTypePreviewPrint:
		return PermissionPreviewPrint
	case FsTypeEditable:
		return PermissionEditable
	}
	return PermissionUnknown
}

// NoSubsetting reports whether the font must not be subsetted before embedding.
func (info OS2Info) NoSubsetting() bool {
	return info.FsType&FsTypeNoSubsetting != 0
}

// BitmapOnly reports whether only bitmaps contained in the font may be embedded.
func (info OS2Info) BitmapOnly() bool {
	return info.FsType&FsTypeBitmapOnly != 0
}

// DecodeOS2 reads field fsType of table 'OS/2'.
//
// The meaning of the embedding bits has changed between versions of the
// TrueType and OpenType specs. We take the least restrictive interpretation
// common to all of them: only a low nibble of exactly 2 forbids embedding.
// NoSubsetting and BitmapOnly do not influence EmbeddingAllowed.
func DecodeOS2(b []byte) (OS2Info, error) {
	var info OS2Info
	fsType, err := binarySegm(b).u16(os2FsTypeOffset)
	if err != nil {
		return info, malformed(TagOS2, "table too small: %d bytes (need %d)", len(b), os2MinSize)
	}
	info.Version = u16(b[0:2])
	info.FsType = fsType
	info.EmbeddingAllowed = info.FsType&fsTypeUsageMask != FsTypeRestricted
	tracer().Debugf("OS/2 table version %d, fsType = 0x%04x", info.Version, info.FsType)
	return info, nil
}
