// Package merge assembles every PDF and CBZ document under a root
// directory into a single output PDF.
//
// Documents merge in natural path order and pages within each document
// keep their original order. Unreadable sources are reported and
// skipped; the job fails only when nothing could be read.
package merge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"go-pdfbind/internal/pdf"
	"go-pdfbind/internal/source"
	"go-pdfbind/internal/utils"
)

// ErrNoDocuments means no readable PDF or CBZ document was found.
var ErrNoDocuments = errors.New("no readable PDF or CBZ documents found")

// Progress is invoked once per source before it is processed.
type Progress func(index, total int, path string)

// Skipped records a source that could not be read.
type Skipped struct {
	Path   string
	Reason error
}

// ArchiveInfo records a CBZ source converted during the job.
type ArchiveInfo struct {
	Path   string
	Images int
}

// Result summarizes a finished merge job.
type Result struct {
	OutputPath string
	Merged     []string
	Skipped    []Skipped
	Archives   []ArchiveInfo
	PageCount  int
}

// Assembler runs merge jobs. It owns no state across jobs; the logger
// and progress callback are the only collaborators.
type Assembler struct {
	Logger   *logrus.Logger
	Progress Progress
}

// Run discovers documents under root and merges them into outputPath.
func (a *Assembler) Run(root, outputPath string) (*Result, error) {
	sources, err := source.Discover(root)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrNoDocuments
	}
	return a.Assemble(sources, outputPath)
}

// Assemble merges the given sources, in order, into outputPath. The
// output is staged under a temporary name in the destination directory
// and renamed into place once the merge succeeds.
func (a *Assembler) Assemble(sources []source.Source, outputPath string) (*Result, error) {
	workDir, err := os.MkdirTemp("", "pdfbind-merge-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	res := &Result{OutputPath: outputPath}
	var prepared []string
	for i, src := range sources {
		if a.Progress != nil {
			a.Progress(i+1, len(sources), src.Path())
		}
		p, err := src.Prepare(workDir)
		if err != nil {
			a.Logger.WithFields(logrus.Fields{
				"file":   src.Path(),
				"reason": err.Error(),
			}).Warn("Skipping unreadable document")
			res.Skipped = append(res.Skipped, Skipped{Path: src.Path(), Reason: err})
			continue
		}
		if len(p.Pages) > 0 {
			res.Archives = append(res.Archives, ArchiveInfo{Path: src.Path(), Images: len(p.Pages)})
			a.Logger.WithFields(logrus.Fields{
				"file":   src.Path(),
				"images": len(p.Pages),
			}).Info("Converted archive")
			for _, pg := range p.Pages {
				a.Logger.WithFields(logrus.Fields{
					"entry":  pg.Name,
					"width":  pg.Width,
					"height": pg.Height,
				}).Debug("Archive page")
			}
		}
		prepared = append(prepared, p.PDFPath)
		res.Merged = append(res.Merged, src.Path())
	}
	if len(prepared) == 0 {
		return nil, ErrNoDocuments
	}

	staging := utils.StagingName(filepath.Dir(outputPath))
	if err := pdf.Merge(prepared, staging); err != nil {
		os.Remove(staging)
		return nil, fmt.Errorf("merge into %s: %w", outputPath, err)
	}
	// The merged page tree carries a bookmark per source file; the
	// assembled volume should read as one document.
	if err := pdf.StripBookmarks(staging); err != nil {
		os.Remove(staging)
		return nil, fmt.Errorf("strip bookmarks: %w", err)
	}
	if err := os.Rename(staging, outputPath); err != nil {
		os.Remove(staging)
		return nil, fmt.Errorf("finalize %s: %w", outputPath, err)
	}

	if n, err := pdf.PageCount(outputPath); err == nil {
		res.PageCount = n
	}
	a.Logger.WithFields(logrus.Fields{
		"output":  outputPath,
		"merged":  len(res.Merged),
		"skipped": len(res.Skipped),
		"pages":   res.PageCount,
	}).Info("Merge complete")
	return res, nil
}
