// Package pdf wraps the pdfcpu operations used by the merge and resize
// pipelines.
//
// Functions:
//   - Merge: Merges multiple PDF files into a single output file.
//     Inputs: slice of PDF file paths, output file path.
//     Output: error if merge fails.
//   - StripBookmarks: Removes per-source bookmarks from a merged file.
//   - Validate: Checks that a file parses as a PDF.
//   - PageCount / PageDims: Page metrics for reporting and fitting.
//   - ImagesToPDF: Writes one full-size page per image reader.
//   - ResizePages: Resizes selected pages to exact target dimensions.
//
// Page content is copied, not re-encoded: merging preserves embedded
// raster streams bit-for-bit and resizing applies a lossless transform.
package pdf

import (
	"fmt"
	"io"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func Merge(files []string, outputPath string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.MergeCreateFile(files, outputPath, false, config)
}

func StripBookmarks(pdfPath string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.RemoveBookmarksFile(pdfPath, pdfPath, config)
}

func Validate(pdfPath string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.ValidateFile(pdfPath, config)
}

func PageCount(pdfPath string) (int, error) {
	return pdfapi.PageCountFile(pdfPath)
}

// PageDims returns the media box of every page in points.
func PageDims(pdfPath string) ([]types.Dim, error) {
	return pdfapi.PageDimsFile(pdfPath)
}

// ImagesToPDF writes a new PDF to outputPath with one page per image
// reader, each page sized to the image's native pixel dimensions.
func ImagesToPDF(images []io.Reader, outputPath string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}

	// A nil import descriptor places each image on its own page using
	// the image dimensions as page dimensions.
	config := model.NewDefaultConfiguration()
	if err := pdfapi.ImportImages(nil, out, images, nil, config); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("import images into %s: %w", outputPath, err)
	}
	return out.Close()
}

// ResizePages resizes the selected pages (nil selects all) of inPath to
// exactly width x height points and writes the result to outPath.
// Content is scaled uniformly to fit the new box and centered; the gap
// on the shorter axis stays blank.
func ResizePages(inPath, outPath string, selectedPages []string, width, height float64) error {
	res, err := pdfcpu.ParseResizeConfig(fmt.Sprintf("dim:%.2f %.2f", width, height), types.POINTS)
	if err != nil {
		return fmt.Errorf("resize config: %w", err)
	}
	config := model.NewDefaultConfiguration()
	return pdfapi.ResizeFile(inPath, outPath, selectedPages, res, config)
}
