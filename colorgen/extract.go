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

package colorgen

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/topmap/TopMap/colors"
)

// AlphaThreshold is the highest alpha still treated as a hole in a texture.
const AlphaThreshold = 10

// AverageColor decodes a texture and returns its average color with the
// tint for filename applied. ok is false when every pixel is transparent.
func AverageColor(data []byte, filename string) (c colors.RGB, ok bool, err error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return colors.RGB{}, false, fmt.Errorf("decoding %s: %w", filename, err)
	}
	c, ok = Average(img)
	if !ok {
		return colors.RGB{}, false, nil
	}
	if t, tinted := TintFor(Stem(filename)); tinted {
		c = ApplyTint(c, t)
	}
	return c, true, nil
}

// Average is the truncated mean of all pixels with alpha above
// AlphaThreshold, taken on straight (not premultiplied) channels.
func Average(img image.Image) (colors.RGB, bool) {
	n := imaging.Clone(img)
	var r, g, b, count int64
	for i := 0; i+3 < len(n.Pix); i += 4 {
		if n.Pix[i+3] <= AlphaThreshold {
			continue
		}
		r += int64(n.Pix[i])
		g += int64(n.Pix[i+1])
		b += int64(n.Pix[i+2])
		count++
	}
	if count == 0 {
		return colors.RGB{}, false
	}
	return colors.RGB{R: uint8(r / count), G: uint8(g / count), B: uint8(b / count)}, true
}
