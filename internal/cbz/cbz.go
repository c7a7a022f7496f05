// Package cbz reads comic book archives, zip files whose entries are
// page images.
//
// Entries are filtered to the image formats the PDF importer accepts
// and indexed in natural order, which is the page order readers expect
// from sequentially numbered scans regardless of zero-padding.
package cbz

import (
	"archive/zip"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	// Decoders registered for probing entry dimensions.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go-pdfbind/internal/natsort"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// Page is a single image entry of an archive.
type Page struct {
	Name   string
	Width  int // pixels; 0 when the entry could not be decoded
	Height int
}

// Archive is an open CBZ file with its image entries in natural order.
type Archive struct {
	rc    *zip.ReadCloser
	pages []*zip.File
}

// Open opens the archive at path and indexes its image entries. It
// fails when the file is not a readable zip or contains no images.
func Open(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open cbz %s: %w", path, err)
	}

	byName := make(map[string]*zip.File, len(rc.File))
	var names []string
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !imageExts[strings.ToLower(filepath.Ext(f.Name))] {
			continue
		}
		byName[f.Name] = f
		names = append(names, f.Name)
	}
	if len(names) == 0 {
		rc.Close()
		return nil, fmt.Errorf("no images found in %s", path)
	}

	natsort.Sort(names)
	pages := make([]*zip.File, len(names))
	for i, n := range names {
		pages[i] = byName[n]
	}
	return &Archive{rc: rc, pages: pages}, nil
}

func (a *Archive) Close() error { return a.rc.Close() }

// PageCount returns the number of image entries.
func (a *Archive) PageCount() int { return len(a.pages) }

// Pages probes every entry and returns its name and pixel dimensions in
// page order. An entry that fails to decode keeps zero dimensions; the
// importer decides whether that is fatal.
func (a *Archive) Pages() ([]Page, error) {
	out := make([]Page, 0, len(a.pages))
	for _, f := range a.pages {
		p := Page{Name: f.Name}
		r, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		cfg, _, err := image.DecodeConfig(r)
		r.Close()
		if err == nil {
			p.Width, p.Height = cfg.Width, cfg.Height
		}
		out = append(out, p)
	}
	return out, nil
}

// Readers opens every image entry in page order. The caller consumes
// the readers sequentially and releases them with the returned closer.
func (a *Archive) Readers() ([]io.Reader, func(), error) {
	readers := make([]io.Reader, 0, len(a.pages))
	var closers []io.Closer
	release := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	for _, f := range a.pages {
		r, err := f.Open()
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		readers = append(readers, r)
		closers = append(closers, r)
	}
	return readers, release, nil
}
