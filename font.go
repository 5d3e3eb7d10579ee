/*
Package fontvalid checks whether a TrueType/OpenType font file is usable for
embedding into a document.

Validation decodes three tables of the font: 'head' (magic number), 'name'
(PostScript name) and 'OS/2' (embedding permission). A font is valid if all
three tables are present and decode without error. Valid fonts report their
PostScript name and whether their license allows embedding:

	f := fontvalid.Validate(data)
	if !f.IsValid() {
	    return f.Err()
	}
	name, ok := f.PostScriptName(), f.AllowsEmbedding()

Validation is a pure function of the font's bytes. A Font does not keep a
reference to the bytes and is immutable once Validate returns, so it may be
shared between goroutines.

# Status

No font collections (*.ttc) and no WOFF/WOFF2 containers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontvalid

import (
	"fmt"

	"github.com/npillmayer/fontvalid/internal/fontload"
	"github.com/npillmayer/fontvalid/ot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.valid'
func tracer() tracing.Trace {
	return tracing.Select("font.valid")
}

// State is the state of a validation run.
type State int

const (
	Unparsed State = iota
	Parsing
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Unparsed:
		return "unparsed"
	case Parsing:
		return "parsing"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Metadata is the information extracted from a valid font.
type Metadata struct {
	PostScriptName   string
	EmbeddingAllowed bool
	Permission       ot.Permission // diagnostic only, see ot.OS2Info
	FsType           uint16
}

// Font is the result of validating a font file.
type Font struct {
	state State
	meta  Metadata
	err   error
}

// IsValid reports whether the font has been validated successfully.
func (f *Font) IsValid() bool {
	return f != nil && f.state == Valid
}

// State returns the state the validation run has ended in.
func (f *Font) State() State {
	if f == nil {
		return Unparsed
	}
	return f.state
}

// Err returns the reason why validation failed, or nil for valid fonts.
// Use errors.Is and errors.As with the error kinds of package ot to inspect it.
func (f *Font) Err() error {
	if f == nil {
		return nil
	}
	return f.err
}

// PostScriptName returns the PostScript name of the font.
//
// PostScriptName must only be called for valid fonts; it panics if IsValid
// returns false. Use Metadata for a non-panicking alternative.
func (f *Font) PostScriptName() string {
	f.mustBeValid("PostScriptName")
	return f.meta.PostScriptName
}

// AllowsEmbedding reports whether the font's license allows embedding it into
// a document.
//
// AllowsEmbedding must only be called for valid fonts; it panics if IsValid
// returns false. Use Metadata for a non-panicking alternative.
func (f *Font) AllowsEmbedding() bool {
	f.mustBeValid("AllowsEmbedding")
	return f.meta.EmbeddingAllowed
}

// Metadata returns the information extracted from the font, and false if the
// font is not valid.
func (f *Font) Metadata() (Metadata, bool) {
	if !f.IsValid() {
		return Metadata{}, false
	}
	return f.meta, true
}

func (f *Font) mustBeValid(method string) {
	if !f.IsValid() {
		panic(fmt.Sprintf("fontvalid: %s called for font in state %s", method, f.State()))
	}
}

func (f *Font) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Font(%s: %v)", f.State(), f.Err())
	}
	return fmt.Sprintf("Font(%s, embedding=%v)", f.meta.PostScriptName, f.meta.EmbeddingAllowed)
}

// LoadFont reads a font file and validates it. The returned error reports
// problems reading the file only; validation failures are reported through
// the returned Font.
func LoadFont(fontfile string, opts ...Option) (*Font, error) {
	ff, err := fontload.Load(fontfile)
	if err != nil {
		return nil, err
	}
	f := Validate(ff.Binary, opts...)
	tracer().Infof("font file %s: %s", ff.Path, f.State())
	return f, nil
}
