// Package source discovers mergeable documents and adapts each format
// to a merge-ready PDF.
//
// Two reader variants exist: PDF files pass through after validation,
// CBZ archives are converted one page per image. The assembler only
// sees the Source interface, so format dispatch stays out of the merge
// loop.
package source

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go-pdfbind/internal/cbz"
	"go-pdfbind/internal/natsort"
	"go-pdfbind/internal/pdf"
	"go-pdfbind/internal/utils"
)

// Prepared is the merge-ready rendition of a source.
type Prepared struct {
	// PDFPath holds this source's pages in order.
	PDFPath string
	// Pages describes the archive images behind PDFPath, in page
	// order; nil for plain PDF sources whose pages pass through
	// untouched.
	Pages []cbz.Page
}

// Source is a discovered document that can yield a merge-ready PDF.
type Source interface {
	// Path is the original file path.
	Path() string
	// Prepare returns a PDF holding this source's pages in order.
	// Intermediate artefacts go into workDir and live only for the
	// duration of the job.
	Prepare(workDir string) (*Prepared, error)
}

// Discover walks root recursively and returns a Source per .pdf/.cbz
// file (case-insensitive), ordered by natural sort of the full path.
func Discover(root string) ([]Source, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf", ".cbz":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	natsort.Sort(paths)
	sources := make([]Source, len(paths))
	for i, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".cbz") {
			sources[i] = &CBZSource{path: p}
		} else {
			sources[i] = &PDFSource{path: p}
		}
	}
	return sources, nil
}

// PDFSource passes an existing PDF through unchanged, so its pages and
// embedded streams are copied verbatim by the merge.
type PDFSource struct {
	path string
}

func (s *PDFSource) Path() string { return s.path }

// Prepare sniffs the header and validates the document, then returns
// the original path untouched.
func (s *PDFSource) Prepare(string) (*Prepared, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	header := make([]byte, 5)
	_, err = io.ReadFull(f, header)
	f.Close()
	if err != nil || string(header) != "%PDF-" {
		return nil, fmt.Errorf("%s is not a valid PDF", s.path)
	}
	if err := pdf.Validate(s.path); err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.path, err)
	}
	return &Prepared{PDFPath: s.path}, nil
}

// CBZSource converts a comic archive into a transient PDF.
type CBZSource struct {
	path string
}

func (s *CBZSource) Path() string { return s.path }

// Prepare extracts the archive's images in natural order and writes a
// PDF into workDir with one page per image, each sized to the image's
// native dimensions. The entries are probed up front so an archive of
// broken images fails here, with the entry count in hand, instead of
// deep inside the importer.
func (s *CBZSource) Prepare(workDir string) (*Prepared, error) {
	archive, err := cbz.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	pages, err := archive.Pages()
	if err != nil {
		return nil, err
	}
	decodable := 0
	for _, p := range pages {
		if p.Width > 0 && p.Height > 0 {
			decodable++
		}
	}
	if decodable == 0 {
		return nil, fmt.Errorf("no decodable images in %s (%d entries)", s.path, archive.PageCount())
	}

	readers, release, err := archive.Readers()
	if err != nil {
		return nil, err
	}
	defer release()

	base := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	name := fmt.Sprintf("%s-%s.pdf", utils.GenerateUUID(), utils.SanitizeFilename(base))
	outPath := filepath.Join(workDir, name)
	if err := pdf.ImagesToPDF(readers, outPath); err != nil {
		return nil, fmt.Errorf("convert %s: %w", s.path, err)
	}
	return &Prepared{PDFPath: outPath, Pages: pages}, nil
}
