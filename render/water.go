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

import "github.com/topmap/TopMap/colors"

const waterStep = 10

// waterBlend accumulates the darkening of one water column. Red and green
// take the deeper of one more step or half their base value, blue only ever
// steps down to half of its base.
type waterBlend struct {
	base       colors.RGB
	dr, dg, db int
}

func newWaterBlend(base colors.RGB) waterBlend {
	return waterBlend{base: base}
}

func (w *waterBlend) deepen() {
	w.dr = minInt(w.dr-waterStep, -(int(w.base.R) / 2))
	w.dg = minInt(w.dg-waterStep, -(int(w.base.G) / 2))
	w.db = maxInt(w.db-waterStep, -(int(w.base.B) / 2))
}

func (w waterBlend) color() colors.RGB {
	return colors.Clamp(int(w.base.R)+w.dr, int(w.base.G)+w.dg, int(w.base.B)+w.db)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
