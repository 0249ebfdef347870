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

package output

import (
	"fmt"
	"image"
	"os"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	MapFilename       = "map.jpg"
	ThumbnailFilename = "map_thumb.png"
	UnknownFilename   = "unknown_blocks.txt"
	JPEGQuality       = 95
)

const defaultPermissions = 0764

// SaveImage writes img into dir as a JPEG and returns the written path.
func SaveImage(img image.Image, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, defaultPermissions); err != nil {
		return "", err
	}
	p := path.Join(dir, name)
	if err := imaging.Save(img, p, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", fmt.Errorf("saving %s: %w", p, err)
	}
	return p, nil
}

// SaveThumbnail writes a PNG no wider than maxWidth. Nothing is written
// when maxWidth is not positive.
func SaveThumbnail(img image.Image, dir string, maxWidth int) (string, error) {
	if maxWidth <= 0 {
		return "", nil
	}
	b := img.Bounds()
	maxHeight := b.Dy()
	if b.Dx() > 0 {
		maxHeight = b.Dy() * maxWidth / b.Dx()
	}
	if maxHeight < 1 {
		maxHeight = 1
	}
	thumb := resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.NearestNeighbor)
	if err := os.MkdirAll(dir, defaultPermissions); err != nil {
		return "", err
	}
	p := path.Join(dir, ThumbnailFilename)
	if err := imaging.Save(thumb, p); err != nil {
		return "", fmt.Errorf("saving %s: %w", p, err)
	}
	return p, nil
}

// SaveUnknownReport writes one JSON object per line. An empty report writes
// nothing.
func SaveUnknownReport(lines []string, dir string) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}
	if err := os.MkdirAll(dir, defaultPermissions); err != nil {
		return "", err
	}
	p := path.Join(dir, UnknownFilename)
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0664); err != nil {
		return "", err
	}
	return p, nil
}
