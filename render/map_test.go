package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topmap/TopMap/blocks"
	"go.uber.org/atomic"
)

var (
	stoneRGBA = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	sandRGBA  = color.RGBA{R: 219, G: 207, B: 163, A: 255}
	blackRGBA = color.RGBA{A: 255}
)

func TestNormalizeArea(t *testing.T) {
	a := NormalizeArea(Area{X1: 10, Z1: 5, X2: -2, Z2: -7})
	assert.Equal(t, Area{X1: -2, Z1: -7, X2: 10, Z2: 5}, a)
	assert.Equal(t, 12, a.Width())
	assert.Equal(t, 12, a.Height())
}

func TestImageSize(t *testing.T) {
	w, h := ImageSize(Area{X1: 0, Z1: 0, X2: 10, Z2: 5}, 100)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
	w, h = ImageSize(Area{X1: 0, Z1: 0, X2: 3, Z2: 2}, 1920)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1280, h)
}

func TestPixelSpan(t *testing.T) {
	for _, tc := range []struct {
		i      int
		ppb    float64
		p0, p1 int
	}{
		{0, 2, 0, 2},
		{3, 2, 6, 8},
		{0, 0.5, 0, 1},
		{1, 0.5, 0, 1},
		{3, 0.5, 1, 2},
		{2, 1.5, 3, 4},
	} {
		p0, p1 := pixelSpan(tc.i, tc.ppb)
		assert.Equal(t, tc.p0, p0, "%d at %v", tc.i, tc.ppb)
		assert.Equal(t, tc.p1, p1, "%d at %v", tc.i, tc.ppb)
	}
}

func TestRenderMapPaintsColumns(t *testing.T) {
	w := testWorld()
	w.SetStack(0, 20, 0, dim, "stone")
	w.SetStack(1, 20, 0, dim, "sand")
	w.SetStack(0, 20, 1, dim, "sand")
	w.SetStack(1, 20, 1, dim, "stone")
	res, err := RenderMap(testScanner(w), Area{X1: 0, Z1: 0, X2: 2, Z2: 2}, Options{OutputWidth: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Image.Bounds().Dx())
	assert.Equal(t, 4, res.Image.Bounds().Dy())
	assert.Equal(t, 2.0, res.Scale)
	assert.Equal(t, 4, res.Columns)
	assert.False(t, res.Interrupted)
	assert.Equal(t, stoneRGBA, res.Image.RGBAAt(0, 0))
	assert.Equal(t, stoneRGBA, res.Image.RGBAAt(1, 1))
	assert.Equal(t, sandRGBA, res.Image.RGBAAt(2, 0))
	assert.Equal(t, sandRGBA, res.Image.RGBAAt(1, 3))
	assert.Equal(t, stoneRGBA, res.Image.RGBAAt(3, 3))
}

func TestRenderMapReversedCorners(t *testing.T) {
	w := testWorld()
	w.SetStack(-1, 20, 3, dim, "stone")
	w.SetStack(0, 20, 4, dim, "water", "sand")
	a, err := RenderMap(testScanner(w), Area{X1: -2, Z1: 2, X2: 2, Z2: 6}, Options{OutputWidth: 8})
	require.NoError(t, err)
	b, err := RenderMap(testScanner(w), Area{X1: 2, Z1: 6, X2: -2, Z2: 2}, Options{OutputWidth: 8})
	require.NoError(t, err)
	assert.Equal(t, a.Image.Pix, b.Image.Pix)
	assert.Equal(t, a.Area, b.Area)
}

func TestRenderMapInvalidArea(t *testing.T) {
	_, err := RenderMap(testScanner(testWorld()), Area{X1: 3, Z1: 0, X2: 3, Z2: 10}, Options{OutputWidth: 10})
	assert.ErrorIs(t, err, ErrInvalidArea)
	_, err = RenderMap(testScanner(testWorld()), Area{X1: 0, Z1: 4, X2: 10, Z2: 4}, Options{OutputWidth: 10})
	assert.ErrorIs(t, err, ErrInvalidArea)
	_, err = RenderMap(testScanner(testWorld()), Area{X1: 0, Z1: 0, X2: 10, Z2: 4}, Options{})
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestRenderMapInterruptedBeforeStart(t *testing.T) {
	w := testWorld()
	w.SetStack(0, 20, 0, dim, "stone")
	res, err := RenderMap(testScanner(w), Area{X1: 0, Z1: 0, X2: 2, Z2: 2}, Options{
		OutputWidth: 2,
		Interrupt:   atomic.NewBool(true),
	})
	require.NoError(t, err)
	assert.True(t, res.Interrupted)
	assert.Zero(t, res.Columns)
	assert.Equal(t, blackRGBA, res.Image.RGBAAt(0, 0))
}

func TestRenderMapInterruptedMidway(t *testing.T) {
	w := testWorld()
	for x := 0; x < 3; x++ {
		for z := 0; z < 3; z++ {
			w.SetStack(x, 20, z, dim, "stone")
		}
	}
	stop := atomic.NewBool(false)
	progress := [][2]int{}
	res, err := RenderMap(testScanner(w), Area{X1: 0, Z1: 0, X2: 3, Z2: 3}, Options{
		OutputWidth: 3,
		Interrupt:   stop,
		Progress: func(done, total int) {
			progress = append(progress, [2]int{done, total})
			if done == 4 {
				stop.Store(true)
			}
		},
	})
	require.NoError(t, err)
	assert.True(t, res.Interrupted)
	assert.Equal(t, 4, res.Columns)
	assert.Equal(t, [][2]int{{1, 9}, {2, 9}, {3, 9}, {4, 9}}, progress)
	// x outer, z inner: the first column of x=1 is painted, the second is not
	assert.Equal(t, stoneRGBA, res.Image.RGBAAt(1, 0))
	assert.Equal(t, blackRGBA, res.Image.RGBAAt(1, 1))
}

func TestRenderMapInvalidBlockAborts(t *testing.T) {
	w := testWorld()
	w.SetBlock(1, 20, 1, dim, blocks.Ref{BaseName: "stone"})
	res, err := RenderMap(testScanner(w), Area{X1: 0, Z1: 0, X2: 2, Z2: 2}, Options{OutputWidth: 2})
	assert.ErrorIs(t, err, blocks.ErrInvalidBlock)
	assert.Nil(t, res)
}

func TestRenderMapCollectsUnknown(t *testing.T) {
	w := testWorld()
	w.SetStack(0, 20, 0, dim, "moss_carpet", "stone")
	res, err := RenderMap(testScanner(w), Area{X1: 0, Z1: 0, X2: 1, Z2: 1}, Options{OutputWidth: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Unknown.Len())
	assert.Equal(t, stoneRGBA, res.Image.RGBAAt(0, 0))
}
