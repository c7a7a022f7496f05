// Package resize rescales every page of a PDF to exact target
// dimensions, scaling content uniformly and centering it so nothing is
// cropped or distorted.
package resize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/sirupsen/logrus"

	"go-pdfbind/internal/fit"
	"go-pdfbind/internal/pdf"
	"go-pdfbind/internal/utils"
)

// ErrNoPages means no page of the input had usable dimensions.
var ErrNoPages = errors.New("no resizable pages found")

// Progress is invoked once per page with the transform about to be
// applied.
type Progress func(page, total int, t fit.Transform)

// Resizer runs resize jobs.
type Resizer struct {
	Logger   *logrus.Logger
	Progress Progress
}

// Result summarizes a finished resize job.
type Result struct {
	OutputPath   string
	Target       fit.Dim
	Resized      int
	SkippedPages []int
}

// Run resizes every page of inputPath to target and writes the result
// to outputPath via a staged temporary file. Pages with degenerate
// dimensions are reported and left untouched; target dimensions are
// validated before any I/O happens.
func (r *Resizer) Run(inputPath, outputPath string, target fit.Dim) (*Result, error) {
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("%w: %.2fx%.2f", fit.ErrInvalidTarget, target.Width, target.Height)
	}

	dims, err := pdf.PageDims(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", inputPath, err)
	}
	if len(dims) == 0 {
		return nil, ErrNoPages
	}

	res := &Result{OutputPath: outputPath, Target: target}
	selected, skipped := r.plan(dims, target)
	if len(selected) == 0 {
		return nil, ErrNoPages
	}
	res.Resized = len(selected)
	res.SkippedPages = skipped
	if len(skipped) == 0 {
		selected = nil // nil selection resizes all pages
	}

	staging := utils.StagingName(filepath.Dir(outputPath))
	if err := pdf.ResizePages(inputPath, staging, selected, target.Width, target.Height); err != nil {
		os.Remove(staging)
		return nil, fmt.Errorf("resize into %s: %w", outputPath, err)
	}
	if err := os.Rename(staging, outputPath); err != nil {
		os.Remove(staging)
		return nil, fmt.Errorf("finalize %s: %w", outputPath, err)
	}

	r.Logger.WithFields(logrus.Fields{
		"output":  outputPath,
		"resized": res.Resized,
		"skipped": len(res.SkippedPages),
		"width":   target.Width,
		"height":  target.Height,
	}).Info("Resize complete")
	return res, nil
}

// plan computes the fit transform for every page, reporting each one
// through Progress and the debug log. It returns the 1-based page
// numbers to resize, as the selection strings the resizer consumes,
// plus the pages skipped for degenerate dimensions.
func (r *Resizer) plan(dims []types.Dim, target fit.Dim) (selected []string, skipped []int) {
	for i, d := range dims {
		t, err := fit.Fit(fit.Dim{Width: d.Width, Height: d.Height}, target)
		if err != nil {
			r.Logger.WithFields(logrus.Fields{
				"page":   i + 1,
				"reason": err.Error(),
			}).Warn("Skipping page with unusable dimensions")
			skipped = append(skipped, i+1)
			continue
		}
		if r.Progress != nil {
			r.Progress(i+1, len(dims), t)
		}
		r.Logger.WithFields(logrus.Fields{
			"page":  i + 1,
			"scale": t.Scale,
			"dx":    t.Dx,
			"dy":    t.Dy,
		}).Debug("Fitted page")
		selected = append(selected, strconv.Itoa(i+1))
	}
	return selected, skipped
}
