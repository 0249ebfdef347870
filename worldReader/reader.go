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

package worldReader

import (
	"errors"
	"strings"

	"github.com/topmap/TopMap/blocks"
)

var (
	ErrChunkNotFound = errors.New("chunk not found")
	ErrNotWorld      = errors.New("not a world directory")
	ErrBrokenSection = errors.New("broken block states")
)

// Reader answers block queries at absolute coordinates. Coordinates outside
// stored sections read as air, coordinates in chunks that were never saved
// return ErrChunkNotFound.
type Reader interface {
	GetBlock(x, y, z int, dim string) (blocks.Ref, error)
	Bounds(dim string) (minY, maxY int)
	Close() error
}

const namespace = "minecraft:"

// TrimNamespace strips the default namespace from block and dimension names.
func TrimNamespace(name string) string {
	return strings.TrimPrefix(name, namespace)
}

// DimensionBounds returns the inclusive vertical range scanned in dim.
func DimensionBounds(dim string) (minY, maxY int) {
	switch TrimNamespace(dim) {
	case "the_nether", "the_end":
		return 0, 255
	default:
		return -64, 319
	}
}

func airRef() blocks.Ref {
	return blocks.Ref{BaseName: "air", Properties: map[string]any{}}
}
