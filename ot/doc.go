/*
Package ot reads the few OpenType tables needed to decide whether a font file is
usable for embedding into a document.

Package ot is not a font engine. It will parse the SFNT table directory and
decode exactly three tables:

▪︎ 'head' (Font header), to check the magic number

▪︎ 'name' (Naming table), to find the PostScript name of the font

▪︎ 'OS/2' (OS/2 and Windows specific metrics), to read the embedding licensing
bits (fsType)

All other tables are kept in the directory, but never looked at. Glyph outlines,
hinting and layout tables are out of scope.

Font files are untrusted input. Every offset and count read from the binary data
is checked against the bounds of the enclosing byte slice before it is used, and
every failure is reported as an error value (see the error kinds in errors.go).
Functions of this package never modify the font's byte data and hold no state
between calls; it is safe to use them from concurrent goroutines.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

Apple's TrueType reference manual:
https://developer.apple.com/fonts/TrueType-Reference-Manual/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
