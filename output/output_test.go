package output

import (
	"image"
	"image/color"
	"os"
	"path"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	return img
}

func TestSaveImage(t *testing.T) {
	dir := path.Join(t.TempDir(), "nested", "out")
	p, err := SaveImage(testImage(40, 20), dir, MapFilename)
	require.NoError(t, err)
	assert.Equal(t, path.Join(dir, MapFilename), p)
	img, err := imaging.Open(p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
}

func TestSaveThumbnail(t *testing.T) {
	dir := t.TempDir()
	p, err := SaveThumbnail(testImage(100, 50), dir, 0)
	require.NoError(t, err)
	assert.Empty(t, p)
	_, err = os.Stat(path.Join(dir, ThumbnailFilename))
	assert.True(t, os.IsNotExist(err))

	p, err = SaveThumbnail(testImage(100, 50), dir, 20)
	require.NoError(t, err)
	img, err := imaging.Open(p)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestSaveUnknownReport(t *testing.T) {
	dir := t.TempDir()
	p, err := SaveUnknownReport(nil, dir)
	require.NoError(t, err)
	assert.Empty(t, p)
	_, err = os.Stat(path.Join(dir, UnknownFilename))
	assert.True(t, os.IsNotExist(err))

	lines := []string{`{"base_name":"a","properties":{}}`, `{"base_name":"b","properties":{"color":"red"}}`}
	p, err = SaveUnknownReport(lines, dir)
	require.NoError(t, err)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(b))
}
