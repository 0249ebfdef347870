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

	"github.com/topmap/TopMap/blacklist"
	"github.com/topmap/TopMap/blocks"
	"github.com/topmap/TopMap/colors"
	"github.com/topmap/TopMap/lib/clog"
	"github.com/topmap/TopMap/worldReader"
)

const (
	blockAir   = "air"
	blockWater = "water"
)

// Scanner finds the color of the topmost visible block of a column.
type Scanner struct {
	Reader    worldReader.Reader
	Palette   colors.Palette
	Blacklist *blacklist.Blacklist
	Default   colors.RGB
	Dimension string
	Unknown   *UnknownBlocks
	logger    *clog.Logger
	missing   map[[2]int]bool
}

func NewScanner(r worldReader.Reader, p colors.Palette, bl *blacklist.Blacklist, def colors.RGB, dim string, logger *clog.Logger) *Scanner {
	if logger == nil {
		logger = clog.Discard()
	}
	return &Scanner{
		Reader:    r,
		Palette:   p,
		Blacklist: bl,
		Default:   def,
		Dimension: dim,
		Unknown:   NewUnknownBlocks(),
		logger:    logger,
		missing:   map[[2]int]bool{},
	}
}

// Column descends from the top of the dimension. Unreadable positions,
// air, blacklisted and unknown blocks are looked through, water is blended
// with what lies below it. An empty column gets the default color. The only
// error returned is a block the reader handed back without identity.
func (s *Scanner) Column(x, z int) (colors.RGB, error) {
	minY, maxY := s.Reader.Bounds(s.Dimension)
	for y := maxY; y >= minY; y-- {
		b, ok, err := s.blockAt(x, y, z)
		if err != nil {
			return colors.RGB{}, err
		}
		if !ok {
			continue
		}
		switch {
		case b.BaseName == blockAir:
			continue
		case b.BaseName == blockWater:
			return s.waterColumn(x, y, z, b, minY)
		case s.Blacklist.MatchesBlock(b.BaseName):
			continue
		}
		if c, ok := colors.Resolve(b, s.Palette); ok {
			return c, nil
		}
		s.logger.Warnf("No color for block %s at %d %d %d", b.BaseName, x, y, z)
		s.Unknown.Add(b)
	}
	s.logger.Warnf("No visible block in column %d %d, using default color", x, z)
	return s.Default, nil
}

// waterColumn darkens the water color for every further water block below
// the surface at y.
func (s *Scanner) waterColumn(x, y, z int, water blocks.Block, minY int) (colors.RGB, error) {
	base, ok := colors.Resolve(water, s.Palette)
	if !ok {
		base = s.Default
	}
	w := newWaterBlend(base)
	for dy := y - 1; dy >= minY; dy-- {
		b, ok, err := s.blockAt(x, dy, z)
		if err != nil {
			return colors.RGB{}, err
		}
		if !ok || b.BaseName != blockWater {
			break
		}
		w.deepen()
	}
	return w.color(), nil
}

// blockAt reports ok=false for positions that could not be read.
func (s *Scanner) blockAt(x, y, z int) (blocks.Block, bool, error) {
	ref, err := s.Reader.GetBlock(x, y, z, s.Dimension)
	if err != nil {
		s.warnRead(x, y, z, err)
		return blocks.Block{}, false, nil
	}
	b, err := blocks.New(ref)
	if err != nil {
		return blocks.Block{}, false, fmt.Errorf("block at %d %d %d: %w", x, y, z, err)
	}
	return b, true, nil
}

// warnRead reports a chunk that was never saved once instead of once per y.
func (s *Scanner) warnRead(x, y, z int, err error) {
	if errors.Is(err, worldReader.ErrChunkNotFound) {
		k := [2]int{x >> 4, z >> 4}
		if s.missing[k] {
			return
		}
		s.missing[k] = true
	}
	s.logger.Warnf("Failed to read block at %d %d %d: %v", x, y, z, err)
}
