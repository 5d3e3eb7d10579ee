/*
Package fontload gets the bytes of font files into memory.

Validation itself never touches the file system; this package is the
collaborator which does.
*/
package fontload

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxFontSize is the largest font file we are willing to read. SFNT offsets
// are 32 bit, but real-world fonts stay far below this limit.
const MaxFontSize = 64 << 20

// FontFile is the raw content of a font file.
type FontFile struct {
	Path   string
	Binary []byte
}

// Load loads a font file (TTF or OTF) from disk.
func Load(fontfile string) (*FontFile, error) {
	ff, err := LoadFS(os.DirFS(filepath.Dir(fontfile)), filepath.Base(fontfile))
	if err != nil {
		return nil, err
	}
	ff.Path = fontfile
	return ff, nil
}

// LoadFS loads a font file from a file system.
func LoadFS(fsys fs.FS, name string) (*FontFile, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("font file %s is a directory", name)
	}
	if info.Size() > MaxFontSize {
		return nil, fmt.Errorf("font file %s too large: %d bytes", name, info.Size())
	}
	bytez, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return &FontFile{Path: name, Binary: bytez}, nil
}

// IsFontFile reports whether name has an extension of an SFNT font file.
func IsFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// Glob returns the names of all font files in fsys matching pattern.
// Directories are skipped, even if their names look like font files.
func Glob(fsys fs.FS, pattern string) ([]string, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	fonts := names[:0]
	for _, n := range names {
		if !IsFontFile(n) {
			continue
		}
		if info, err := fs.Stat(fsys, n); err != nil || info.IsDir() {
			continue
		}
		fonts = append(fonts, n)
	}
	return fonts, nil
}
