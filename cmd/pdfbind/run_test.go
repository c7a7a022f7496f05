package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pdfbind/internal/pdf"
	"go-pdfbind/internal/prompt"
)

func writePDF(t *testing.T, path string, pages int) {
	t.Helper()
	readers := make([]io.Reader, pages)
	for i := range readers {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 600, 800))))
		readers[i] = bytes.NewReader(buf.Bytes())
	}
	require.NoError(t, pdf.ImagesToPDF(readers, path))
}

func writeCBZ(t *testing.T, path string, images int) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i := 0; i < images; i++ {
		w, err := zw.Create(fmt.Sprintf("page%d.png", i+1))
		require.NoError(t, err)
		var img bytes.Buffer
		require.NoError(t, png.Encode(&img, image.NewNRGBA(image.Rect(0, 0, 90, 120))))
		_, err = w.Write(img.Bytes())
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func scripted(lines ...string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return prompt.New(in, &out), &out
}

func TestRunMergeInteractive(t *testing.T) {
	root := t.TempDir()
	writePDF(t, filepath.Join(root, "ch1.pdf"), 1)
	writePDF(t, filepath.Join(root, "ch2.pdf"), 2)
	writeCBZ(t, filepath.Join(root, "ch3.cbz"), 2)

	// folder, default name, default dir, confirm
	p, out := scripted(root, "", "", "")
	require.NoError(t, runMerge(p, out))

	merged := filepath.Join(root, "merged_output.pdf")
	require.FileExists(t, merged)
	n, err := pdf.PageCount(merged)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Contains(t, out.String(), "Found 2 PDF file(s)")
	assert.Contains(t, out.String(), "Found 1 CBZ file(s)")
	assert.Contains(t, out.String(), "Converted ch3.cbz: found 2 image(s)")
	assert.Contains(t, out.String(), "Process completed successfully!")
}

func TestRunMergeCancelled(t *testing.T) {
	root := t.TempDir()
	writePDF(t, filepath.Join(root, "ch1.pdf"), 1)

	p, out := scripted(root, "", "", "no")
	require.NoError(t, runMerge(p, out))

	assert.NoFileExists(t, filepath.Join(root, "merged_output.pdf"))
	assert.Contains(t, out.String(), "Operation cancelled by user.")
}

func TestRunMergeEmptyFolder(t *testing.T) {
	p, _ := scripted(t.TempDir())
	err := runMerge(p, &bytes.Buffer{})
	assert.ErrorContains(t, err, "no PDF or CBZ files found")
}

func TestRunResizeInteractive(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writePDF(t, input, 2)

	// file, width, height, default name, default dir, confirm
	p, out := scripted(input, "300", "300", "", "", "")
	require.NoError(t, runResize(p, out))

	resized := filepath.Join(dir, "resized_output.pdf")
	require.FileExists(t, resized)
	dims, err := pdf.PageDims(resized)
	require.NoError(t, err)
	require.Len(t, dims, 2)
	for _, d := range dims {
		assert.InDelta(t, 300, d.Width, 0.5)
		assert.InDelta(t, 300, d.Height, 0.5)
	}
	assert.Contains(t, out.String(), "Process completed successfully!")
}

func TestRunResizeCancelled(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writePDF(t, input, 1)

	p, out := scripted(input, "300", "300", "", "", "no")
	require.NoError(t, runResize(p, out))

	assert.NoFileExists(t, filepath.Join(dir, "resized_output.pdf"))
	assert.Contains(t, out.String(), "Operation cancelled by user.")
}
