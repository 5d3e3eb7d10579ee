package fontvalid

import (
	"github.com/npillmayer/fontvalid/ot"
)

// Option configures a validation run.
type Option func(*options)

type options struct {
	verifyChecksums bool
}

// WithChecksumVerification makes table checksums of the required tables a
// validity criterion. By default checksums are not verified, as many fonts in
// the wild carry stale ones.
func WithChecksumVerification() Option {
	return func(o *options) {
		o.verifyChecksums = true
	}
}

// Validate validates font, the complete contents of a font file.
// The bytes of font are not modified and not retained.
//
// Validation stops at the first required table which is missing or fails to
// decode; the returned Font is then invalid and Err tells the reason. There
// is no partial result.
func Validate(font []byte, opts ...Option) *Font {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	f := &Font{state: Parsing}
	meta, err := validate(font, o)
	if err != nil {
		f.state, f.err = Invalid, err
		tracer().Infof("font is invalid: %v", err)
		return f
	}
	f.state, f.meta = Valid, meta
	tracer().Debugf("font %s is valid", meta.PostScriptName)
	return f
}

func validate(font []byte, o options) (Metadata, error) {
	var meta Metadata
	dir, err := ot.ParseDirectory(font)
	if err != nil {
		return meta, err
	}
	for _, tag := range ot.RequiredTables {
		b, err := dir.TableBytes(font, tag)
		if err != nil {
			return meta, err
		}
		if o.verifyChecksums {
			if err := dir.VerifyChecksum(font, tag); err != nil {
				return meta, err
			}
		}
		decoder, _ := ot.DecoderFor(tag)
		info, err := decoder.Decode(b)
		if err != nil {
			return meta, err
		}
		switch t := info.(type) {
		case ot.NameInfo:
			meta.PostScriptName = t.PostScriptName
		case ot.OS2Info:
			meta.EmbeddingAllowed = t.EmbeddingAllowed
			meta.Permission = t.Permission()
			meta.FsType = t.FsType
		}
	}
	return meta, nil
}
