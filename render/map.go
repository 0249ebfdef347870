/*
	TopMap, top-down renderer for block game maps
	Copyright (C) 2022 Maxim Zhuchkov

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.

	Contact me via mail: q3.max.2011@yandex.ru or Discord: MaX#6717
*/

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"go.uber.org/atomic"
)

var (
	ErrInvalidArea  = errors.New("area has no width or height")
	ErrInvalidWidth = errors.New("output width must be positive")
)

// Area is a rectangle of block columns given by two corners. X2 and Z2 are
// exclusive once normalized.
type Area struct {
	X1, Z1, X2, Z2 int
}

// NormalizeArea orders the corners so that X1 <= X2 and Z1 <= Z2.
func NormalizeArea(a Area) Area {
	if a.X1 > a.X2 {
		a.X1, a.X2 = a.X2, a.X1
	}
	if a.Z1 > a.Z2 {
		a.Z1, a.Z2 = a.Z2, a.Z1
	}
	return a
}

func (a Area) Width() int {
	return a.X2 - a.X1
}

func (a Area) Height() int {
	return a.Z2 - a.Z1
}

func (a Area) String() string {
	return fmt.Sprintf("x %d..%d z %d..%d", a.X1, a.X2, a.Z1, a.Z2)
}

// ImageSize returns the canvas size for an area rendered outputWidth pixels wide.
func ImageSize(a Area, outputWidth int) (int, int) {
	a = NormalizeArea(a)
	if a.Width() <= 0 {
		return outputWidth, 0
	}
	h := int(float64(outputWidth) * float64(a.Height()) / float64(a.Width()))
	if h < 1 {
		h = 1
	}
	return outputWidth, h
}

type Options struct {
	OutputWidth int
	// Interrupt is checked before every column, the render stops once it is set.
	Interrupt *atomic.Bool
	// Progress is called after every column with the number of finished columns.
	Progress func(done, total int)
}

type Result struct {
	Image       *image.RGBA
	Unknown     *UnknownBlocks
	Area        Area
	Scale       float64
	Columns     int
	Total       int
	Interrupted bool
}

// RenderMap paints every column of area onto a black canvas, x outer and
// z inner. Each column covers at least one pixel.
func RenderMap(s *Scanner, area Area, opts Options) (*Result, error) {
	area = NormalizeArea(area)
	if area.Width() <= 0 || area.Height() <= 0 {
		return nil, fmt.Errorf("%s: %w", area, ErrInvalidArea)
	}
	if opts.OutputWidth <= 0 {
		return nil, fmt.Errorf("%d: %w", opts.OutputWidth, ErrInvalidWidth)
	}
	imgW, imgH := ImageSize(area, opts.OutputWidth)
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)
	ppb := float64(imgW) / float64(area.Width())
	ret := &Result{
		Image:   img,
		Unknown: s.Unknown,
		Area:    area,
		Scale:   ppb,
		Total:   area.Width() * area.Height(),
	}
	for x := area.X1; x < area.X2; x++ {
		px0, px1 := pixelSpan(x-area.X1, ppb)
		for z := area.Z1; z < area.Z2; z++ {
			if opts.Interrupt != nil && opts.Interrupt.Load() {
				ret.Interrupted = true
				return ret, nil
			}
			c, err := s.Column(x, z)
			if err != nil {
				return nil, err
			}
			pz0, pz1 := pixelSpan(z-area.Z1, ppb)
			draw.Draw(img, image.Rect(px0, pz0, px1, pz1), &image.Uniform{c}, image.Point{}, draw.Src)
			ret.Columns++
			if opts.Progress != nil {
				opts.Progress(ret.Columns, ret.Total)
			}
		}
	}
	return ret, nil
}

func pixelSpan(i int, ppb float64) (int, int) {
	p0 := int(math.Floor(float64(i) * ppb))
	p1 := int(math.Floor(float64(i+1) * ppb))
	if p1 <= p0 {
		p1 = p0 + 1
	}
	return p0, p1
}
