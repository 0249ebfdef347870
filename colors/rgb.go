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

package colors

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrBadColor = errors.New("bad color value")

type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.R), int(c.G), int(c.B)})
}

func (c *RGB) UnmarshalJSON(b []byte) error {
	var v []int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("%w: expected 3 channels, got %d", ErrBadColor, len(v))
	}
	for _, ch := range v {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("%w: channel %d out of range", ErrBadColor, ch)
		}
	}
	c.R, c.G, c.B = uint8(v[0]), uint8(v[1]), uint8(v[2])
	return nil
}

// ParseRGB reads "r,g,b" as used by the DEFAULT_COLOR setting.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q is not r,g,b", ErrBadColor, s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %s", ErrBadColor, s, err.Error())
		}
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: %q channel out of range", ErrBadColor, s)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// Clamp builds a color from wide channel values, saturating at 0 and 255.
func Clamp(r, g, b int) RGB {
	return RGB{clampChannel(r), clampChannel(g), clampChannel(b)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
