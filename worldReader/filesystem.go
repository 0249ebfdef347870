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
	"fmt"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/Tnze/go-mc/save/region"
	"github.com/hashicorp/go-multierror"
	"github.com/topmap/TopMap/blocks"
	"github.com/topmap/TopMap/lib/clog"
)

type regionLocator struct {
	dim    string
	rx, rz int
}

// FilesystemReader reads Anvil region files of a world directory. Region
// files are opened on first use and stay open until Close.
type FilesystemReader struct {
	Root    string
	logger  *clog.Logger
	lock    sync.Mutex
	regions map[regionLocator]*region.Region
	chunks  *chunkCache
}

func NewFilesystemReader(root string, logger *clog.Logger) (*FilesystemReader, error) {
	if logger == nil {
		logger = clog.Discard()
	}
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotWorld)
	}
	r := &FilesystemReader{
		Root:    root,
		logger:  logger,
		regions: map[regionLocator]*region.Region{},
	}
	r.chunks = newChunkCache(DefaultChunkCacheSize, r.loadChunk)
	return r, nil
}

func (r *FilesystemReader) GetBlock(x, y, z int, dim string) (blocks.Ref, error) {
	c, err := r.chunks.get(locateChunk(x, z, dim))
	if err != nil {
		return blocks.Ref{}, err
	}
	return c.blockAt(x&15, y, z&15)
}

func (r *FilesystemReader) Bounds(dim string) (int, int) {
	return DimensionBounds(dim)
}

func (r *FilesystemReader) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	var errs error
	for l, reg := range r.regions {
		if reg == nil {
			continue
		}
		if err := reg.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("closing region %d %d of %s: %w", l.rx, l.rz, l.dim, err))
		}
	}
	r.regions = map[regionLocator]*region.Region{}
	return errs
}

func (r *FilesystemReader) loadChunk(loc chunkLocator) (*decodedChunk, error) {
	rx, rz := region.At(loc.cx, loc.cz)
	reg, err := r.openRegion(regionLocator{dim: loc.dim, rx: rx, rz: rz})
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("chunk %d %d: %w", loc.cx, loc.cz, ErrChunkNotFound)
	}
	x, z := region.In(loc.cx, loc.cz)
	if !reg.ExistSector(x, z) {
		return nil, fmt.Errorf("chunk %d %d: %w", loc.cx, loc.cz, ErrChunkNotFound)
	}
	data, err := reg.ReadSector(x, z)
	if err != nil {
		return nil, fmt.Errorf("reading chunk %d %d: %w", loc.cx, loc.cz, err)
	}
	c, err := decodeRawChunk(data)
	if err != nil {
		return nil, fmt.Errorf("chunk %d %d: %w", loc.cx, loc.cz, err)
	}
	return c, nil
}

// openRegion returns nil without error when the region file does not exist.
func (r *FilesystemReader) openRegion(l regionLocator) (*region.Region, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if reg, ok := r.regions[l]; ok {
		return reg, nil
	}
	p := r.regionPath(l)
	reg, err := region.Open(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening region %s: %w", p, err)
		}
		r.logger.Warnf("Region file %s does not exist", p)
		reg = nil
	}
	r.regions[l] = reg
	return reg, nil
}

var (
	regionFnameRegexp = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.mca$`)
)

func (r *FilesystemReader) regionPath(l regionLocator) string {
	return path.Join(RegionFolder(r.Root, l.dim), fmt.Sprintf("r.%d.%d.mca", l.rx, l.rz))
}

// RegionFolder returns where region files of dim are stored inside a world.
func RegionFolder(root, dim string) string {
	switch TrimNamespace(dim) {
	case "overworld":
		return path.Join(root, "region")
	case "the_end":
		return path.Join(root, "DIM1", "region")
	case "the_nether":
		return path.Join(root, "DIM-1", "region")
	}
	ns, name, ok := strings.Cut(dim, ":")
	if !ok {
		ns, name = "minecraft", dim
	}
	return path.Join(root, "dimensions", ns, name, "region")
}

// ListRegions returns coordinates of every region file stored for dim.
func (r *FilesystemReader) ListRegions(dim string) ([][2]int, error) {
	entries, err := os.ReadDir(RegionFolder(r.Root, dim))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return [][2]int{}, nil
		}
		return nil, err
	}
	ret := [][2]int{}
	for _, e := range entries {
		var x, z int
		if !e.IsDir() && ExtractRegionPath(e.Name(), &x, &z) {
			ret = append(ret, [2]int{x, z})
		}
	}
	return ret, nil
}

func ExtractRegionPath(fname string, xx, zz *int) bool {
	m := regionFnameRegexp.FindStringSubmatch(fname)
	if len(m) != 3 {
		return false
	}
	x, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	z, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	if xx != nil {
		*xx = x
	}
	if zz != nil {
		*zz = z
	}
	return true
}
