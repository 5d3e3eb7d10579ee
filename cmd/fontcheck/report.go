package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/fontvalid"
	"github.com/npillmayer/fontvalid/internal/fontload"
	"github.com/pterm/pterm"
)

// report is the outcome of checking one font file.
type report struct {
	path string
	font *fontvalid.Font
	err  error // file could not be read
}

func (r report) ok() bool {
	return r.err == nil && r.font.IsValid()
}

// row formats a report as a table row:
// file, status, PostScript name, embedding, fsType, reason.
func (r report) row() []string {
	if r.err != nil {
		return []string{r.path, "unreadable", "", "", "", r.err.Error()}
	}
	meta, ok := r.font.Metadata()
	if !ok {
		return []string{r.path, "invalid", "", "", "", r.font.Err().Error()}
	}
	embedding := "no"
	if meta.EmbeddingAllowed {
		embedding = "yes"
	}
	return []string{r.path, "valid", meta.PostScriptName, embedding,
		fmt.Sprintf("0x%04x (%s)", meta.FsType, meta.Permission), ""}
}

// checkFiles checks font files. Directories are searched for font files,
// non-recursively.
func checkFiles(paths []string, opts []fontvalid.Option) []report {
	reports := make([]report, 0, len(paths))
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			dir := os.DirFS(path)
			names, err := fontload.Glob(dir, "*")
			if err != nil {
				reports = append(reports, report{path: path, err: err})
				continue
			}
			for _, name := range names {
				r := checkFS(dir, name, opts)
				r.path = filepath.Join(path, name)
				reports = append(reports, r)
			}
			continue
		}
		reports = append(reports, checkFS(os.DirFS("."), path, opts))
	}
	return reports
}

func checkFS(fsys fs.FS, path string, opts []fontvalid.Option) report {
	r := report{path: path}
	var ff *fontload.FontFile
	if fs.ValidPath(path) {
		ff, r.err = fontload.LoadFS(fsys, path)
	} else { // absolute or ../ paths
		ff, r.err = fontload.Load(path)
	}
	if r.err != nil {
		tracer().Errorf("cannot load font %s: %v", path, r.err)
		return r
	}
	r.font = fontvalid.Validate(ff.Binary, opts...)
	tracer().Infof("%s: %s", path, r.font)
	return r
}

func failed(reports []report) int {
	n := 0
	for _, r := range reports {
		if !r.ok() {
			n++
		}
	}
	return n
}

func renderReports(reports []report) {
	data := [][]string{
		{"File", "Status", "PostScript name", "Embedding", "fsType", "Reason"},
	}
	for _, r := range reports {
		data = append(data, r.row())
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if n := failed(reports); n > 0 {
		pterm.Error.Printf("%d of %d font(s) failed\n", n, len(reports))
	} else {
		pterm.Info.Printf("%d font(s) valid\n", len(reports))
	}
}
