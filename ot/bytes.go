package ot

// Reading bytes from a font's binary representation

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data. All reads through a binarySegm are
// bounds-checked and report ErrMalformedBuffer instead of panicking.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, ErrMalformedBuffer
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// viewArray splits b into consecutive records of recsize bytes each.
// A trailing partial record is dropped.
func viewArray(b binarySegm, recsize int) []binarySegm {
	if recsize <= 0 {
		return nil
	}
	recs := make([]binarySegm, 0, len(b)/recsize)
	for i := 0; i+recsize <= len(b); i += recsize {
		recs = append(recs, b[i:i+recsize])
	}
	return recs
}
