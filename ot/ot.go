package ot

// --- Tag -------------------------------------------------------------------

// Tag is defined by OpenType as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("name"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// Tags of the tables this package is able to decode.
var (
	TagHead = T("head")
	TagName = T("name")
	TagOS2  = T("OS/2")
)

// RequiredTables lists the tables a font must contain to be considered valid,
// in the order they are decoded.
var RequiredTables = []Tag{TagHead, TagName, TagOS2}

// IsRequired reports whether tag is one of the RequiredTables.
func IsRequired(tag Tag) bool {
	for _, t := range RequiredTables {
		if t == tag {
			return true
		}
	}
	return false
}

// --- Decoders --------------------------------------------------------------

// TableInfo is the result of decoding a single table.
// It is one of HeadInfo, NameInfo or OS2Info.
type TableInfo interface {
	Tag() Tag
}

// TableDecoder decodes the binary data of a single table.
// Decoders get passed exactly the bytes of their table and must not retain
// them after returning.
type TableDecoder interface {
	Decode(b []byte) (TableInfo, error)
}

// DecoderFunc adapts a function to the TableDecoder interface.
type DecoderFunc func(b []byte) (TableInfo, error)

// Decode calls f(b).
func (f DecoderFunc) Decode(b []byte) (TableInfo, error) {
	return f(b)
}

var decoders = map[Tag]TableDecoder{
	TagHead: DecoderFunc(func(b []byte) (TableInfo, error) { return DecodeHead(b) }),
	TagName: DecoderFunc(func(b []byte) (TableInfo, error) { return DecodeName(b) }),
	TagOS2:  DecoderFunc(func(b []byte) (TableInfo, error) { return DecodeOS2(b) }),
}

// DecoderFor returns the decoder for a table tag, if this package knows how
// to decode the table.
func DecoderFor(tag Tag) (TableDecoder, bool) {
	d, ok := decoders[tag]
	return d, ok
}
