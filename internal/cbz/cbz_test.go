package cbz

import (
	"archive/zip"
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func writeCBZ(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestOpenOrdersEntriesNaturally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vol1.cbz")
	writeCBZ(t, path, map[string][]byte{
		"page10.png": pngBytes(t, 90, 120),
		"page2.png":  pngBytes(t, 91, 121),
		"cover.jpg":  jpegBytes(t, 92, 122),
		"info.txt":   []byte("not an image"),
	})

	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()

	require.Equal(t, 3, a.PageCount())

	pages, err := a.Pages()
	require.NoError(t, err)
	assert.Equal(t, "cover.jpg", pages[0].Name)
	assert.Equal(t, "page2.png", pages[1].Name)
	assert.Equal(t, "page10.png", pages[2].Name)
}

func TestPagesProbeNativeDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.cbz")
	writeCBZ(t, path, map[string][]byte{
		"p1.png": pngBytes(t, 800, 1200),
		"p2.jpg": jpegBytes(t, 640, 480),
	})

	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()

	pages, err := a.Pages()
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 800, pages[0].Width)
	assert.Equal(t, 1200, pages[0].Height)
	assert.Equal(t, 640, pages[1].Width)
	assert.Equal(t, 480, pages[1].Height)
}

func TestReadersYieldEntryData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.cbz")
	img := pngBytes(t, 10, 10)
	writeCBZ(t, path, map[string][]byte{"p1.png": img})

	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()

	readers, release, err := a.Readers()
	require.NoError(t, err)
	defer release()

	require.Len(t, readers, 1)
	var got bytes.Buffer
	_, err = got.ReadFrom(readers[0])
	require.NoError(t, err)
	assert.Equal(t, img, got.Bytes())
}

func TestOpenRejectsImagelessArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.cbz")
	writeCBZ(t, path, map[string][]byte{"readme.txt": []byte("hi")})

	_, err := Open(path)
	assert.ErrorContains(t, err, "no images found")
}

func TestOpenRejectsCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.cbz")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a zip"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}
